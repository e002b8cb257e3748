package config

import (
	"fmt"
	"strings"

	"github.com/CompassSecurity/ifacescan/pkg/format"
)

// ValidateInputPath checks that a path to scan was given.
// Existence and readability are checked when the file is loaded.
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input path cannot be empty")
	}
	return nil
}

// ParseMaxFileSize parses a human size like "500MB". Empty or "0" disables the limit.
func ParseMaxFileSize(size string) (int64, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return 0, nil
	}

	bytes, err := format.ParseHumanSize(size)
	if err != nil {
		return 0, fmt.Errorf("invalid max file size %q: %w", size, err)
	}
	return bytes, nil
}
