package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
)

func newPrefCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pref",
		Short: "Read and write toolchain preferences",
	}
	cmd.AddCommand(newPrefSetCommand())
	cmd.AddCommand(newPrefGetCommand())
	return cmd
}

func newPrefSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference through the toolchain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			return service.SetPreference(cmd.Context(), args[0], args[1])
		},
	}
}

func newPrefGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a value from the preference document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			service := newAppService()
			value, ok, err := service.GetPreference(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errbuilder.New().
					WithCode(errbuilder.CodeNotFound).
					WithMsg(fmt.Sprintf("preference %s is not set", args[0]))
			}
			fmt.Println(value)
			return nil
		},
	}
}
