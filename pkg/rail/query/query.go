package query

import (
	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/result"
)

// Query wraps a result.Result to enable declarative chained composition.
type Query[T any] struct {
	result result.Result[T]
}

// From begins a query from an existing result.
func From[T any](r result.Result[T]) Query[T] {
	return Query[T]{result: r}
}

// FromValue begins a query from a successful value.
func FromValue[T any](v T) Query[T] {
	return Query[T]{result: result.Success(v)}
}

// Result unwraps the composed result.
func (q Query[T]) Result() result.Result[T] {
	return q.result
}

// Pair carries a query source value alongside a bound companion value.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Select projects the bound value.
func Select[In, Out any](q Query[In], project func(v In) Out) Query[Out] {
	return Query[Out]{result: result.Map(q.result, project)}
}

// SelectMany binds a nested result and projects the source and bound
// values together. After a failed stage neither delegate runs.
func SelectMany[In, Mid, Out any](q Query[In],
	bind func(v In) result.Result[Mid],
	project func(v In, bound Mid) Out) Query[Out] {

	rail.GuardFunc("bind", bind)
	rail.GuardFunc("project", project)

	return Query[Out]{result: result.Switch(q.result, func(v In) result.Result[Out] {
		return result.Map(bind(v), func(bound Mid) Out {
			return project(v, bound)
		})
	})}
}

// Let binds a computed value alongside the source as a Pair.
func Let[In, Out any](q Query[In], compute func(v In) Out) Query[Pair[In, Out]] {
	rail.GuardFunc("compute", compute)

	return Query[Pair[In, Out]]{result: result.Map(q.result, func(v In) Pair[In, Out] {
		return Pair[In, Out]{First: v, Second: compute(v)}
	})}
}
