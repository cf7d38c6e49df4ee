package ports

import "boardbridge/internal/types"

// BoardSelectionPort exposes the currently selected board. Current
// returns (nil, nil) when no selection has been made; that is an expected
// state, not an error.
type BoardSelectionPort interface {
	Current() (*types.BoardDescriptor, error)
	Select(desc types.BoardDescriptor) error
}
