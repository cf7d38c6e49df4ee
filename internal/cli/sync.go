package cli

import (
	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [paths...]",
		Short: "Merge library include paths into the analysis configuration",
		Long: "Merges the given include paths into the language-analysis " +
			"configuration document. Without arguments the candidates are the " +
			"core directories of the selected board's platform.",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			return service.SyncIncludePaths(cmd.Context(), args)
		},
	}
}
