package types

import (
	"errors"
	"fmt"
)

// ProcessFailure reports a toolchain process that exited non-zero or could
// not be launched. ExitCode is -1 when the process never started.
type ProcessFailure struct {
	ExitCode int
	Err      error
}

func (f *ProcessFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("failed with code=%d: %v", f.ExitCode, f.Err)
	}
	return fmt.Sprintf("failed with code=%d", f.ExitCode)
}

func (f *ProcessFailure) Unwrap() error {
	return f.Err
}

// ExitCodeOf extracts the toolchain exit code from an error chain. The
// second return is false when the chain carries no process failure.
func ExitCodeOf(err error) (int, bool) {
	var failure *ProcessFailure
	if errors.As(err, &failure) {
		return failure.ExitCode, true
	}
	return 0, false
}
