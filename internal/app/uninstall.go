package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Uninstalls are direct recursive deletions of the installation directory,
// not toolchain invocations. They can only fail with filesystem errors,
// never with a process exit code.

func (s Service) UninstallBoard(pkg string) error {
	return s.removeInstalled("board", s.PackagesRoot, pkg)
}

func (s Service) UninstallLibrary(name string) error {
	return s.removeInstalled("library", s.LibrariesRoot, name)
}

func (s Service) removeInstalled(kind string, root string, name string) error {
	if strings.TrimSpace(name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s name is empty", kind))
	}
	if strings.TrimSpace(root) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s install root is not configured", kind))
	}
	target := filepath.Join(root, name)
	if _, err := os.Stat(target); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("%s %s is not installed", kind, name)).
			WithCause(err)
	}
	s.Sink.Show()
	s.Sink.Info(fmt.Sprintf("uninstall %s %s started", kind, name))
	if err := os.RemoveAll(target); err != nil {
		s.Sink.Error(fmt.Sprintf("uninstall %s %s failed", kind, name))
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to remove %s directory", kind)).
			WithCause(err)
	}
	s.Sink.Info(fmt.Sprintf("uninstall %s %s completed", kind, name))
	return nil
}
