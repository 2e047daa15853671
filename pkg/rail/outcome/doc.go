// Package outcome implements the value-less outcome type: an operation
// either succeeded or failed with a rail.Error. Its zero value reads as
// a failure carrying the shared default error, so an uninitialized
// Outcome can never pose as a success.
//
// Key operations:
// - Success/Fail/Of: construct an Outcome, Of bridging a plain Go error
// - Tee/TeeFail/Ensure: side effects on the matching state only
// - AndAlso/AndAlsoWith/Join: boolean chaining, first failure wins
// - Match: reduce to a concrete value via success/fail handlers
// - Teeing/TeeingFail/Ensuring/Joining/Matching: channel-lifted forms
package outcome
