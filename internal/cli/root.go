package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boardbridge/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "BOARDBRIDGE"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "boardbridge",
		Short:   "Bridge between the editor and the embedded-development toolchain",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newBoardCommand())
	cmd.AddCommand(newLibCommand())
	cmd.AddCommand(newPrefCommand())
	cmd.AddCommand(newVerifyCommand())
	cmd.AddCommand(newUploadCommand())
	cmd.AddCommand(newSyncCommand())
	cmd.AddCommand(newBootstrapCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("boardbridge")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/boardbridge")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newAppService wires the default adapters from viper settings, falling
// back to XDG locations for the toolchain state files.
func newAppService() app.Service {
	dataDir := viper.GetString("data_dir")
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, "boardbridge")
	}
	prefPath := viper.GetString("preferences")
	if prefPath == "" {
		prefPath = filepath.Join(xdg.ConfigHome, "boardbridge", "preferences.txt")
	}
	selectionPath := viper.GetString("selection")
	if selectionPath == "" {
		selectionPath = filepath.Join(xdg.ConfigHome, "boardbridge", "selection.yaml")
	}
	analysisConfig := viper.GetString("analysis_config")
	if analysisConfig == "" {
		analysisConfig = filepath.Join(".vscode", "c_cpp_properties.json")
	}
	binary := viper.GetString("toolchain_path")
	if binary == "" {
		binary = "arduino"
	}
	return app.NewService(app.Config{
		ToolchainBinary: binary,
		PreferencePath:  prefPath,
		SelectionPath:   selectionPath,
		AnalysisConfig:  analysisConfig,
		PackagesRoot:    viper.GetString("packages_root"),
		LibrariesRoot:   viper.GetString("libraries_root"),
		DataDir:         dataDir,
		Verbose:         viper.GetBool("verbose"),
	})
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
