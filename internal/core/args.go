package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"boardbridge/internal/shared"
)

// Argument vectors for the external toolchain binary. These are pure
// constructors; process execution lives in the adapters layer.

func PrefArgs(key string, value string) ([]string, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("preference key is empty")
	}
	return []string{"--pref", fmt.Sprintf("%s=%s", key, value)}, nil
}

// InstallBoardArgs builds the install-boards invocation. The version
// segment is omitted when empty; the toolchain then installs the latest
// available release.
func InstallBoardArgs(pkg string, arch string, version string) ([]string, error) {
	if strings.TrimSpace(pkg) == "" || strings.TrimSpace(arch) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("board package and architecture are required")
	}
	return []string{"--install-boards", shared.JoinTarget(pkg, arch, version)}, nil
}

func InstallLibraryArgs(name string, version string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("library name is required")
	}
	return []string{"--install-library", shared.JoinTarget(name, version)}, nil
}

// VerifyArgs builds the compile-only invocation. The target must already
// be resolved; selection failures are handled before argument construction.
func VerifyArgs(ctx context.Context, target string, port string, sketch string, verbose bool) ([]string, error) {
	return sketchArgs(ctx, "--verify", target, port, sketch, verbose)
}

func UploadArgs(ctx context.Context, target string, port string, sketch string, verbose bool) ([]string, error) {
	return sketchArgs(ctx, "--upload", target, port, sketch, verbose)
}

func sketchArgs(ctx context.Context, action string, target string, port string, sketch string, verbose bool) ([]string, error) {
	assert.NotEmpty(ctx, target, "target must be resolved before building sketch args")
	if strings.TrimSpace(sketch) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sketch path is required")
	}
	args := []string{action, "--board", target, "--port", port, sketch}
	if verbose {
		args = append(args, "--verbose")
	}
	return args, nil
}

// BootstrapIndexArgs builds the placeholder install used only for its
// side effect of refreshing the toolchain's package or library index on
// first run. The install itself is expected to fail.
func BootstrapIndexArgs(kind string) []string {
	if kind == "library" {
		return []string{"--install-library", "dummy"}
	}
	return []string{"--install-boards", "dummy"}
}
