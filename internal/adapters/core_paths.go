package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// DefaultCorePaths enumerates the immediate subdirectories of the
// platform's cores directory, the default include path candidates when the
// caller supplies none. A missing root or cores directory yields an empty
// set; only a genuinely failing read is an error.
func DefaultCorePaths(rootBoardPath string) ([]string, error) {
	if rootBoardPath == "" {
		return nil, nil
	}
	coresDir := filepath.Join(rootBoardPath, "cores")
	entries, err := os.ReadDir(coresDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to enumerate cores directory").
			WithCause(err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(coresDir, entry.Name()))
	}
	return paths, nil
}
