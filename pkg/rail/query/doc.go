// Package query provides a declarative composition surface over the
// result and maybe types, patterned after query-comprehension chains:
// Select projects, SelectMany binds a nested outcome and combines it
// with its source, Let binds a computed value alongside the source, and
// Where (maybe only) filters. Once a stage yields Fail or None every
// later delegate is skipped.
//
// Key operations:
// - From/FromValue: begin a Query from a result.Result[T] or value
// - FromMaybe/FromSome: begin a MaybeQuery from a maybe.Maybe[T] or value
// - Select/MaybeSelect: transform the bound value (T -> U)
// - SelectMany/MaybeSelectMany: bind a nested outcome and project both values
// - Let/MaybeLet: bind a computed value as a Pair alongside the source
// - Where: demote a non-matching Some to None (MaybeQuery only)
// - Result/Maybe: unwrap the composed outcome
//
// The value-less outcome type has no query surface; AndAlso and Join
// already sequence payload-free checks.
package query
