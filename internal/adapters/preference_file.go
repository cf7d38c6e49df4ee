package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"boardbridge/internal/core"
	"boardbridge/internal/ports"
)

// PreferenceFileAdapter lazily loads the toolchain's line-oriented
// preference document. The first Get triggers the load; afterwards the map
// is immutable until Reload. An unreadable document is a hard error, never
// an empty store, since callers rely on specific keys being present.
type PreferenceFileAdapter struct {
	Path   string
	cached map[string]string
	loaded bool
}

func NewPreferenceFileAdapter(path string) *PreferenceFileAdapter {
	return &PreferenceFileAdapter{Path: path}
}

func (a *PreferenceFileAdapter) Get(key string) (string, bool, error) {
	values, err := a.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Reload discards the cached load so the next Get re-reads the document.
func (a *PreferenceFileAdapter) Reload() error {
	a.loaded = false
	a.cached = nil
	_, err := a.load()
	return err
}

func (a *PreferenceFileAdapter) load() (map[string]string, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("preference document is not readable").
			WithCause(err)
	}
	a.cached = core.ParsePreferences(string(data))
	a.loaded = true
	return a.cached, nil
}

var _ ports.PreferencePort = (*PreferenceFileAdapter)(nil)
