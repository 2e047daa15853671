// Package maybe implements the optional-valued outcome type with three
// states: Some carrying a non-nil value, None for legitimate absence,
// and Fail carrying a rail.Error. The zero value reads as a failure
// with the shared default error; absence of initialization is a defect,
// not a None.
//
// Key operations:
// - Some/None/Fail: construct a Maybe
// - Wrap/FromPtr: bridge possibly-nil values, nil becoming None
// - Map/Switch: transform the present value, absence and failure pass through
// - Filter/ToNoneIf: demote Some to None by predicate
// - ToFailIfNone/ToFailIfNoneBy: force absence onto the failure track
// - Or/OrElse: substitute a fallback value for None and Fail
// - Tee/TeeFail/TeeNone/Ensure: side effects on the matching state only
// - Match: reduce to a concrete value via some/fail/none handlers
// - Mapping/Switching/Filtering/Recovering/Teeing/Ensuring/Matching: channel-lifted forms
package maybe
