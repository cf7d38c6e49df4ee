package ports

import "context"

// ToolchainPort drives the external toolchain binary to completion.
// Run blocks until the process exits; there is deliberately no timeout,
// cancellation policy belongs to the caller via ctx. A non-zero exit or
// launch failure is returned as an error whose chain carries
// types.ProcessFailure with the exit code (-1 when never launched).
type ToolchainPort interface {
	Run(ctx context.Context, args []string) error
}
