package adapters

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"boardbridge/internal/ports"
	"boardbridge/internal/types"
)

// ToolchainExecAdapter runs the external toolchain binary, streaming its
// stdout and stderr to the output sink while the process is alive.
type ToolchainExecAdapter struct {
	Binary string
	Stream io.Writer
}

func NewToolchainExecAdapter(binary string, stream io.Writer) ToolchainExecAdapter {
	return ToolchainExecAdapter{Binary: binary, Stream: stream}
}

func (a ToolchainExecAdapter) Run(ctx context.Context, args []string) error {
	if strings.TrimSpace(a.Binary) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("toolchain binary path is empty")
	}
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	if a.Stream != nil {
		cmd.Stdout = a.Stream
		cmd.Stderr = a.Stream
	}
	log.Ctx(ctx).Debug().Str("binary", a.Binary).Strs("args", args).Msg("toolchain invocation")
	err := cmd.Run()
	if err == nil {
		return nil
	}
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("toolchain invocation failed").
		WithCause(&types.ProcessFailure{ExitCode: exitCode, Err: err})
}

var _ ports.ToolchainPort = ToolchainExecAdapter{}
