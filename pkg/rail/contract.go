package rail

// Completable is the two-way split shared by the outcome and result
// types; the three-state maybe type is not Completable because absence
// is neither success nor failure.
type Completable interface {
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// IsFail returns true if the operation failed
	IsFail() bool
}

// ErrCarrier is satisfied by every outcome variant and gives generic
// code safe access to the carried failure.
type ErrCarrier interface {
	// IsFail returns true if the operation failed
	IsFail() bool
	// TryGetErr returns the carried error only on failure
	TryGetErr() (*Error, bool)
}
