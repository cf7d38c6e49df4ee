package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boardbridge/internal/app"
)

type sketchOptions struct {
	Port string
}

func newVerifyCommand() *cobra.Command {
	opts := sketchOptions{}
	cmd := &cobra.Command{
		Use:   "verify <sketch>",
		Short: "Compile a sketch for the selected board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			return service.Verify(cmd.Context(), app.SketchRequest{
				Sketch: args[0],
				Port:   resolveString(cmd, opts.Port, "port", "port"),
			})
		},
	}
	addSketchFlags(cmd, &opts)
	return cmd
}

func newUploadCommand() *cobra.Command {
	opts := sketchOptions{}
	cmd := &cobra.Command{
		Use:   "upload <sketch>",
		Short: "Compile and upload a sketch to the selected board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService()
			return service.Upload(cmd.Context(), app.SketchRequest{
				Sketch: args[0],
				Port:   resolveString(cmd, opts.Port, "port", "port"),
			})
		},
	}
	addSketchFlags(cmd, &opts)
	return cmd
}

func addSketchFlags(cmd *cobra.Command, opts *sketchOptions) {
	cmd.Flags().StringVar(&opts.Port, "port", "", "Serial port of the target board")
	cmd.Flags().Bool("verbose", false, "Verbose toolchain output")
	_ = viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
}
