package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"boardbridge/internal/app"
)

func newLibCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lib",
		Short: "Manage libraries",
	}
	cmd.AddCommand(newLibInstallCommand())
	cmd.AddCommand(newLibUninstallCommand())
	return cmd
}

func newLibInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install <name[:version]>",
		Short: "Install a library through the toolchain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, version := splitLibItem(args[0])
			service := newAppService()
			return service.InstallLibrary(cmd.Context(), app.InstallLibraryRequest{
				Name:    name,
				Version: version,
			})
		},
	}
}

func newLibUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <name>",
		Short: "Remove an installed library directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			service := newAppService()
			return service.UninstallLibrary(args[0])
		},
	}
}

func splitLibItem(item string) (string, string) {
	if idx := strings.LastIndex(item, ":"); idx != -1 {
		return item[:idx], item[idx+1:]
	}
	return item, ""
}
