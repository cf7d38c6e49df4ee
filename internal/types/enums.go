package types

type IndexKind string

const (
	IndexKindPackage IndexKind = "package"
	IndexKindLibrary IndexKind = "library"
)

type BootstrapStatus string

const (
	// BootstrapCompleted means the index refresh invocation ran to a zero
	// exit.
	BootstrapCompleted BootstrapStatus = "completed"
	// BootstrapIgnored means the invocation failed and the failure was
	// absorbed; the suppressed cause is carried on the result.
	BootstrapIgnored BootstrapStatus = "ignored"
	// BootstrapSkipped means the index already existed and no invocation
	// was attempted.
	BootstrapSkipped BootstrapStatus = "skipped"
)
