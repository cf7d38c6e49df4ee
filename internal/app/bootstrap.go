package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"boardbridge/internal/core"
	"boardbridge/internal/types"
)

// Index files the toolchain downloads as a side effect of any install
// attempt, even a failing one.
const (
	packageIndexFile = "package_index.json"
	libraryIndexFile = "library_index.json"
)

// Bootstrap populates the toolchain's package and library indexes on first
// run by attempting a placeholder install. The attempt may legitimately
// fail (offline, placeholder rejected) and must not block startup, so a
// failure is recorded as an ignored result carrying the suppressed cause
// instead of propagating.
func (s Service) Bootstrap(ctx context.Context) []types.BootstrapResult {
	return []types.BootstrapResult{
		s.bootstrapIndex(ctx, types.IndexKindPackage, packageIndexFile, core.BootstrapIndexArgs("board")),
		s.bootstrapIndex(ctx, types.IndexKindLibrary, libraryIndexFile, core.BootstrapIndexArgs("library")),
	}
}

func (s Service) bootstrapIndex(ctx context.Context, kind types.IndexKind, indexFile string, args []string) types.BootstrapResult {
	if s.DataDir != "" {
		if _, err := os.Stat(filepath.Join(s.DataDir, indexFile)); err == nil {
			return types.BootstrapResult{Index: kind, Status: types.BootstrapSkipped}
		}
	}
	if err := s.Toolchain.Run(ctx, args); err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("index", string(kind)).Msg("index bootstrap attempt failed")
		return types.BootstrapResult{Index: kind, Status: types.BootstrapIgnored, Cause: err}
	}
	return types.BootstrapResult{Index: kind, Status: types.BootstrapCompleted}
}
