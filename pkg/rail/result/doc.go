// Package result implements the value-carrying outcome type: Success
// holding a non-nil value of type T or Fail holding a rail.Error. The
// zero value reads as a failure with the shared default error. The
// package also hosts the conversions that cross container categories,
// since it sits above both outcome and maybe in the dependency order.
//
// Key operations:
// - Success/Fail: construct a Result
// - Wrap/FromPtr: bridge possibly-nil values, nil becoming Fail(no value)
// - Map/Switch/Try: transform the success value, failures pass through
// - Or/OrElse: substitute a fallback value for a failure
// - Tee/TeeFail/Ensure: side effects on the matching state only
// - AndAlso/AndAlsoWith: sequence a value-less check after a success
// - Match: reduce to a concrete value via success/fail handlers
// - Truncate/ToMaybe/FromMaybe: in-algebra conversions
// - Turnout/Branch: cross-category chaining (maybe to result and back)
// - TryForEach/TryForEachIdx: short-circuiting traversal of a slice
// - Mapping/Switching/Trying/Recovering/Teeing/Matching/Joining/
//   Turnouting/Branching/TryForEaching: channel-lifted forms
package result
