package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardbridge/internal/core"
	"boardbridge/internal/types"
)

// fakeToolchain records invocations and replays a scripted error.
type fakeToolchain struct {
	calls  [][]string
	events *[]string
	err    error
}

func (f *fakeToolchain) Run(_ context.Context, args []string) error {
	f.calls = append(f.calls, args)
	if f.events != nil {
		*f.events = append(*f.events, "run")
	}
	return f.err
}

type fakeSelection struct {
	desc *types.BoardDescriptor
	err  error
}

func (f fakeSelection) Current() (*types.BoardDescriptor, error) { return f.desc, f.err }
func (f fakeSelection) Select(types.BoardDescriptor) error       { return nil }

type fakeSink struct {
	lines  []string
	errors []string
}

func (f *fakeSink) Show()             {}
func (f *fakeSink) Info(line string)  { f.lines = append(f.lines, line) }
func (f *fakeSink) Error(line string) { f.errors = append(f.errors, line) }
func (f *fakeSink) Stream() io.Writer { return &bytes.Buffer{} }

type fakeMonitor struct {
	open   map[string]bool
	events *[]string
}

func (f *fakeMonitor) IsOpen(port string) bool { return f.open[port] }
func (f *fakeMonitor) Close(port string) error {
	delete(f.open, port)
	if f.events != nil {
		*f.events = append(*f.events, "close")
	}
	return nil
}

type fakeConfig struct {
	candidates [][]string
}

func (f *fakeConfig) Reconcile(candidates []string) error {
	f.candidates = append(f.candidates, candidates)
	return nil
}

func selectedUno() *types.BoardDescriptor {
	return &types.BoardDescriptor{
		Board: "uno",
		Platform: types.Platform{
			Package:      types.PackageRef{Name: "arduino"},
			Architecture: "avr",
		},
	}
}

func TestVerifyWithoutSelectionPerformsNoInvocation(t *testing.T) {
	toolchain := &fakeToolchain{}
	sink := &fakeSink{}
	service := Service{
		Toolchain: toolchain,
		Selection: fakeSelection{},
		Sink:      sink,
	}

	err := service.Verify(t.Context(), SketchRequest{Sketch: "blink.ino", Port: "/dev/ttyACM0"})
	require.Error(t, err)
	assert.True(t, core.IsNoBoardSelected(err))
	assert.Empty(t, toolchain.calls, "no process may be launched without a target")
	assert.NotEmpty(t, sink.errors, "the condition is user-notified")
}

func TestVerifyBuildsExpectedInvocation(t *testing.T) {
	toolchain := &fakeToolchain{}
	sink := &fakeSink{}
	service := Service{
		Toolchain: toolchain,
		Selection: fakeSelection{desc: selectedUno()},
		Sink:      sink,
		Verbose:   true,
	}

	require.NoError(t, service.Verify(t.Context(), SketchRequest{Sketch: "blink.ino", Port: "/dev/ttyACM0"}))
	require.Len(t, toolchain.calls, 1)
	assert.Equal(t, []string{
		"--verify", "--board", "arduino:avr:uno",
		"--port", "/dev/ttyACM0", "blink.ino", "--verbose",
	}, toolchain.calls[0])
	assert.Contains(t, sink.lines, "verify blink.ino started")
	assert.Contains(t, sink.lines, "verify blink.ino completed")
}

func TestUploadClosesMonitorBeforeInvocation(t *testing.T) {
	var events []string
	toolchain := &fakeToolchain{events: &events}
	monitor := &fakeMonitor{open: map[string]bool{"/dev/ttyACM0": true}, events: &events}
	service := Service{
		Toolchain: toolchain,
		Selection: fakeSelection{desc: selectedUno()},
		Monitor:   monitor,
		Sink:      &fakeSink{},
	}

	require.NoError(t, service.Upload(t.Context(), SketchRequest{Sketch: "blink.ino", Port: "/dev/ttyACM0"}))
	assert.Equal(t, []string{"close", "run"}, events, "monitor must close before the process launches")
}

func TestFailedInvocationReportsExitCode(t *testing.T) {
	cause := &types.ProcessFailure{ExitCode: 2}
	toolchain := &fakeToolchain{err: errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("toolchain invocation failed").
		WithCause(cause)}
	sink := &fakeSink{}
	service := Service{Toolchain: toolchain, Sink: sink}

	err := service.InstallBoard(t.Context(), InstallBoardRequest{Package: "arduino", Architecture: "avr"})
	require.Error(t, err)
	code, ok := types.ExitCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, 2, code)
	assert.Contains(t, sink.errors, "install board arduino:avr failed with code=2")
}

func TestBootstrapAbsorbsFailures(t *testing.T) {
	launchErr := errors.New("offline")
	service := Service{
		Toolchain: &fakeToolchain{err: launchErr},
		Sink:      &fakeSink{},
		DataDir:   t.TempDir(),
	}

	results := service.Bootstrap(t.Context())
	require.Len(t, results, 2)
	for _, result := range results {
		assert.Equal(t, types.BootstrapIgnored, result.Status)
		assert.ErrorIs(t, result.Cause, launchErr)
	}
}

func TestBootstrapSkipsExistingIndexes(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "package_index.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "library_index.json"), []byte("{}"), 0o644))

	toolchain := &fakeToolchain{}
	service := Service{Toolchain: toolchain, Sink: &fakeSink{}, DataDir: dataDir}

	results := service.Bootstrap(t.Context())
	for _, result := range results {
		assert.Equal(t, types.BootstrapSkipped, result.Status)
	}
	assert.Empty(t, toolchain.calls)
}

func TestSyncUsesDefaultCorePaths(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "cores", "arduino"), 0o750))

	desc := selectedUno()
	desc.Platform.RootBoardPath = root
	config := &fakeConfig{}
	service := Service{
		Selection: fakeSelection{desc: desc},
		Config:    config,
		Sink:      &fakeSink{},
	}

	require.NoError(t, service.SyncIncludePaths(t.Context(), nil))
	require.Len(t, config.candidates, 1)
	assert.Equal(t, []string{filepath.Join(root, "cores", "arduino")}, config.candidates[0])
}

func TestSyncWithoutSelectionReconcilesEmptySet(t *testing.T) {
	config := &fakeConfig{}
	service := Service{
		Selection: fakeSelection{},
		Config:    config,
		Sink:      &fakeSink{},
	}

	require.NoError(t, service.SyncIncludePaths(t.Context(), nil))
	require.Len(t, config.candidates, 1)
	assert.Empty(t, config.candidates[0])
}

func TestUninstallLibraryRemovesDirectory(t *testing.T) {
	librariesRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(librariesRoot, "Servo", "src"), 0o750))

	service := Service{Sink: &fakeSink{}, LibrariesRoot: librariesRoot}
	require.NoError(t, service.UninstallLibrary("Servo"))

	_, err := os.Stat(filepath.Join(librariesRoot, "Servo"))
	assert.True(t, os.IsNotExist(err))
}

func TestUninstallMissingLibraryIsNotFound(t *testing.T) {
	service := Service{Sink: &fakeSink{}, LibrariesRoot: t.TempDir()}
	err := service.UninstallLibrary("Servo")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
