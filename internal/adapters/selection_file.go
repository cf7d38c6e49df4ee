package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"boardbridge/internal/ports"
	"boardbridge/internal/types"
)

// SelectionFileAdapter persists the current board selection written by the
// board manager. A missing file means no selection has been made yet; that
// is an expected state, not an error.
type SelectionFileAdapter struct {
	Path string
}

func NewSelectionFileAdapter(path string) SelectionFileAdapter {
	return SelectionFileAdapter{Path: path}
}

func (a SelectionFileAdapter) Current() (*types.BoardDescriptor, error) {
	data, err := os.ReadFile(a.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read board selection").
			WithCause(err)
	}
	var desc types.BoardDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid board selection format").
			WithCause(err)
	}
	if strings.TrimSpace(desc.Board) == "" {
		return nil, nil
	}
	return &desc, nil
}

func (a SelectionFileAdapter) Select(desc types.BoardDescriptor) error {
	if strings.TrimSpace(desc.Board) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("board identifier is empty")
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0o750); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create selection directory").
			WithCause(err)
	}
	data, err := yaml.Marshal(desc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode board selection").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write board selection").
			WithCause(err)
	}
	return nil
}

var _ ports.BoardSelectionPort = SelectionFileAdapter{}
