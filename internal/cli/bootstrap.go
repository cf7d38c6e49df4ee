package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardbridge/internal/types"
)

func newBootstrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Populate the toolchain package and library indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService()
			for _, result := range service.Bootstrap(cmd.Context()) {
				switch result.Status {
				case types.BootstrapIgnored:
					fmt.Printf("%s index: attempt failed, ignored (%s)\n",
						result.Index, errorMessage(result.Cause))
				default:
					fmt.Printf("%s index: %s\n", result.Index, result.Status)
				}
			}
			return nil
		},
	}
}
