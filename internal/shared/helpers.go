// Package shared provides common utility functions used across multiple
// packages in the boardbridge codebase.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// PlatformSectionName maps a GOOS value to the section name the
// language-analysis configuration document uses for that platform.
func PlatformSectionName(goos string) string {
	switch goos {
	case "darwin":
		return "Mac"
	case "windows":
		return "Win32"
	default:
		return "Linux"
	}
}

// JoinTarget builds a colon-separated toolchain identifier, skipping empty
// segments so optional version suffixes drop out cleanly.
func JoinTarget(segments ...string) string {
	var kept []string
	for _, segment := range segments {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, ":")
}
