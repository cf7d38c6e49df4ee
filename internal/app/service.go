package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"boardbridge/internal/adapters"
	"boardbridge/internal/ports"
	"boardbridge/internal/shared"
	"boardbridge/internal/types"
)

type Service struct {
	Toolchain ports.ToolchainPort
	Prefs     ports.PreferencePort
	Selection ports.BoardSelectionPort
	Config    ports.ConfigStorePort
	Monitor   ports.MonitorPort
	Sink      ports.OutputSinkPort

	// PackagesRoot and LibrariesRoot are the install roots that uninstall
	// operations delete from. DataDir holds the toolchain's downloaded
	// index files.
	PackagesRoot  string
	LibrariesRoot string
	DataDir       string
	Verbose       bool
}

// Config carries the file locations and toolchain settings the default
// adapter wiring needs.
type Config struct {
	ToolchainBinary string
	PreferencePath  string
	SelectionPath   string
	AnalysisConfig  string
	PackagesRoot    string
	LibrariesRoot   string
	DataDir         string
	Verbose         bool
}

func NewService(cfg Config) Service {
	sink := adapters.NewConsoleSinkAdapter(os.Stdout)
	return Service{
		Toolchain:     adapters.NewToolchainExecAdapter(cfg.ToolchainBinary, sink.Stream()),
		Prefs:         adapters.NewPreferenceFileAdapter(cfg.PreferencePath),
		Selection:     adapters.NewSelectionFileAdapter(cfg.SelectionPath),
		Config:        adapters.NewConfigFileAdapter(cfg.AnalysisConfig, shared.PlatformSectionName(runtime.GOOS)),
		Monitor:       adapters.NewMonitorRegistryAdapter(),
		Sink:          sink,
		PackagesRoot:  cfg.PackagesRoot,
		LibrariesRoot: cfg.LibrariesRoot,
		DataDir:       cfg.DataDir,
		Verbose:       cfg.Verbose,
	}
}

// runLogged drives one toolchain invocation with the canonical progress
// lines around it. The operation does not retry; retry policy belongs to
// the caller.
func (s Service) runLogged(ctx context.Context, label string, args []string) error {
	s.Sink.Show()
	s.Sink.Info(fmt.Sprintf("%s started", label))
	if err := s.Toolchain.Run(ctx, args); err != nil {
		code, _ := types.ExitCodeOf(err)
		s.Sink.Error(fmt.Sprintf("%s failed with code=%d", label, code))
		return err
	}
	s.Sink.Info(fmt.Sprintf("%s completed", label))
	return nil
}
