package ports

import "io"

// OutputSinkPort is the user-visible progress channel. Operations emit
// canonical started/completed/failed lines around every invocation; the
// sink is the only progress signal the user sees.
type OutputSinkPort interface {
	// Show brings the sink to the foreground.
	Show()
	Info(line string)
	Error(line string)
	// Stream is where toolchain stdout/stderr is piped while a process
	// runs.
	Stream() io.Writer
}
