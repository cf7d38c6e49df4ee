package core

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// NormalizePath returns the cleaned absolute form of a path. The absolute
// form is the deduplication key for include paths; the raw string is not.
func NormalizePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to normalize include path").
			WithCause(err)
	}
	return filepath.Clean(abs), nil
}

// MergeIncludePaths returns the candidates missing from existing, in
// candidate order and normalized form. Entries already present under any
// spelling that normalizes to the same absolute path are skipped, so a
// repeat merge adds nothing.
func MergeIncludePaths(existing []string, candidates []string) ([]string, error) {
	seen := map[string]struct{}{}
	for _, entry := range existing {
		normalized, err := NormalizePath(entry)
		if err != nil {
			return nil, err
		}
		seen[normalized] = struct{}{}
	}
	var additions []string
	for _, candidate := range candidates {
		normalized, err := NormalizePath(candidate)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		additions = append(additions, normalized)
	}
	return additions, nil
}
