package errs

// Error kinds shared by the command, query and handover usecases.
// Lower-level causes are attached with Mark so callers can test with Is.
var (
	// Store errors
	ErrStoreUnavailable     = New("reservation store is not configured")
	ErrStoreOperationFailed = New("reservation store operation failed")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")

	// Summary errors
	ErrSummaryGenerationFailed = New("summary generation failed")
)
