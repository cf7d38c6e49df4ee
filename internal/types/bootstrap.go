package types

// BootstrapResult records the outcome of one first-run index refresh
// attempt. A failed attempt is not an error for the caller; the suppressed
// cause is kept so diagnostics and tests can see that it was attempted.
type BootstrapResult struct {
	Index  IndexKind
	Status BootstrapStatus
	Cause  error
}
