package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"boardbridge/internal/adapters"
)

// SyncIncludePaths reconciles include path candidates into the
// language-analysis configuration. With no explicit paths the candidates
// come from the selected platform's cores directory; no selection or no
// cores directory yields an empty candidate set, which still normalizes
// the platform section but adds nothing.
func (s Service) SyncIncludePaths(ctx context.Context, paths []string) error {
	candidates := paths
	if len(candidates) == 0 {
		defaults, err := s.defaultLibPaths()
		if err != nil {
			return err
		}
		candidates = defaults
	}
	log.Ctx(ctx).Debug().Int("candidates", len(candidates)).Msg("reconciling include paths")
	if err := s.Config.Reconcile(candidates); err != nil {
		s.Sink.Show()
		s.Sink.Error("failed to update analysis configuration: " + err.Error())
		return err
	}
	return nil
}

func (s Service) defaultLibPaths() ([]string, error) {
	selection, err := s.Selection.Current()
	if err != nil {
		return nil, err
	}
	if selection == nil {
		return nil, nil
	}
	return adapters.DefaultCorePaths(selection.Platform.RootBoardPath)
}
