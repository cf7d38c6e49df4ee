package core

import (
	"regexp"
	"strings"
)

// preferenceLine matches exactly two whitespace-free tokens separated by
// an equals sign. Toolchain preference files routinely contain comments
// and malformed trailing lines; those are skipped, not errors.
var preferenceLine = regexp.MustCompile(`^(\S+)=(\S+)$`)

// ParsePreferences parses a line-oriented key=value preference document
// into a map. Later occurrences of a key win over earlier ones.
func ParsePreferences(content string) map[string]string {
	values := map[string]string{}
	for _, line := range strings.Split(content, "\n") {
		match := preferenceLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}
		values[match[1]] = match[2]
	}
	return values
}
