package result

import (
	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/outcome"
)

// TryForEach visits items strictly left to right and stops at the first
// failing element, returning its failure; later elements are never
// visited. When every element succeeds the original slice comes back
// unchanged, same backing array and all.
func TryForEach[T any](items []T, visit func(item T) outcome.Outcome) Result[[]T] {
	rail.GuardFunc("visit", visit)

	for _, item := range items {
		if o := visit(item); o.IsFail() {
			return Fail[[]T](o.Err())
		}
	}
	return Result[[]T]{value: items, isSuccess: true}
}

// TryForEachIdx is TryForEach with the zero-based element index handed
// to the visitor.
func TryForEachIdx[T any](items []T, visit func(i int, item T) outcome.Outcome) Result[[]T] {
	rail.GuardFunc("visit", visit)

	for i, item := range items {
		if o := visit(i, item); o.IsFail() {
			return Fail[[]T](o.Err())
		}
	}
	return Result[[]T]{value: items, isSuccess: true}
}
