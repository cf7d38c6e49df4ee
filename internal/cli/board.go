package cli

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boardbridge/internal/app"
	"boardbridge/internal/core"
	"boardbridge/internal/types"
)

func newBoardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage board packages and the current selection",
	}
	cmd.AddCommand(newBoardInstallCommand())
	cmd.AddCommand(newBoardUninstallCommand())
	cmd.AddCommand(newBoardSelectCommand())
	cmd.AddCommand(newBoardCurrentCommand())
	return cmd
}

func newBoardInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install <package:architecture[:version]>",
		Short: "Install a board package through the toolchain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, arch, version, err := splitBoardItem(args[0])
			if err != nil {
				return err
			}
			service := newAppService()
			return service.InstallBoard(cmd.Context(), app.InstallBoardRequest{
				Package:      pkg,
				Architecture: arch,
				Version:      version,
			})
		},
	}
}

func newBoardUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <package>",
		Short: "Remove an installed board package directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			service := newAppService()
			return service.UninstallBoard(args[0])
		},
	}
}

func newBoardSelectCommand() *cobra.Command {
	opts := struct {
		RootBoardPath string
	}{}
	cmd := &cobra.Command{
		Use:   "select <package:architecture:board>",
		Short: "Record the current board selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := strings.Split(args[0], ":")
			if len(parts) != 3 {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("selection must be package:architecture:board")
			}
			service := newAppService()
			return service.Selection.Select(types.BoardDescriptor{
				Board: parts[2],
				Platform: types.Platform{
					Package:       types.PackageRef{Name: parts[0]},
					Architecture:  parts[1],
					RootBoardPath: resolveString(cmd, opts.RootBoardPath, "root_board_path", "root-board-path"),
				},
			})
		},
	}
	cmd.Flags().StringVar(&opts.RootBoardPath, "root-board-path", "", "Platform installation root")
	_ = viper.BindPFlag("root_board_path", cmd.Flags().Lookup("root-board-path"))
	return cmd
}

func newBoardCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the current board target string",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			service := newAppService()
			selection, err := service.Selection.Current()
			if err != nil {
				return err
			}
			target, err := core.ResolveTarget(selection)
			if err != nil {
				return err
			}
			fmt.Println(target)
			return nil
		},
	}
}

// splitBoardItem parses package:architecture[:version].
func splitBoardItem(item string) (string, string, string, error) {
	parts := strings.Split(item, ":")
	switch len(parts) {
	case 2:
		return parts[0], parts[1], "", nil
	case 3:
		return parts[0], parts[1], parts[2], nil
	default:
		return "", "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("board item must be package:architecture[:version]")
	}
}
