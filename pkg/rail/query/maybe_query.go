package query

import (
	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/maybe"
)

// MaybeQuery wraps a maybe.Maybe to enable declarative chained
// composition over the optional type, Where included.
type MaybeQuery[T any] struct {
	maybe maybe.Maybe[T]
}

// FromMaybe begins a query from an existing maybe.
func FromMaybe[T any](m maybe.Maybe[T]) MaybeQuery[T] {
	return MaybeQuery[T]{maybe: m}
}

// FromSome begins a query from a present value.
func FromSome[T any](v T) MaybeQuery[T] {
	return MaybeQuery[T]{maybe: maybe.Some(v)}
}

// Maybe unwraps the composed maybe.
func (q MaybeQuery[T]) Maybe() maybe.Maybe[T] {
	return q.maybe
}

// Where demotes a non-matching Some to None; None and Fail pass
// through without invoking pred. Only the optional type filters, since
// failure on the other types is not absence.
func (q MaybeQuery[T]) Where(pred func(v T) bool) MaybeQuery[T] {
	return MaybeQuery[T]{maybe: q.maybe.Filter(pred)}
}

// MaybeSelect projects the bound value.
func MaybeSelect[In, Out any](q MaybeQuery[In], project func(v In) Out) MaybeQuery[Out] {
	return MaybeQuery[Out]{maybe: maybe.Map(q.maybe, project)}
}

// MaybeSelectMany binds a nested maybe and projects the source and
// bound values together. After a None or Fail stage neither delegate
// runs.
func MaybeSelectMany[In, Mid, Out any](q MaybeQuery[In],
	bind func(v In) maybe.Maybe[Mid],
	project func(v In, bound Mid) Out) MaybeQuery[Out] {

	rail.GuardFunc("bind", bind)
	rail.GuardFunc("project", project)

	return MaybeQuery[Out]{maybe: maybe.Switch(q.maybe, func(v In) maybe.Maybe[Out] {
		return maybe.Map(bind(v), func(bound Mid) Out {
			return project(v, bound)
		})
	})}
}

// MaybeLet binds a computed value alongside the source as a Pair.
func MaybeLet[In, Out any](q MaybeQuery[In], compute func(v In) Out) MaybeQuery[Pair[In, Out]] {
	rail.GuardFunc("compute", compute)

	return MaybeQuery[Pair[In, Out]]{maybe: maybe.Map(q.maybe, func(v In) Pair[In, Out] {
		return Pair[In, Out]{First: v, Second: compute(v)}
	})}
}
