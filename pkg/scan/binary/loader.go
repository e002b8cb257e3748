// Package binary reads compiled libraries and turns them into searchable text.
package binary

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CompassSecurity/ifacescan/pkg/format"
	"github.com/rs/zerolog/log"
)

var (
	ErrIsDirectory  = errors.New("path is a directory")
	ErrFileTooLarge = errors.New("file exceeds maximum size")
)

// Decode interprets data as UTF-8 and drops every invalid byte sequence.
// It never fails; the result may be empty.
func Decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// Load reads the whole file at path and decodes it with Decode.
// A maxSize of zero or less disables the size check.
func Load(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrIsDirectory
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", fmt.Errorf("%w: %s > %s", ErrFileTooLarge, format.HumanSize(info.Size()), format.HumanSize(maxSize))
	}

	// #nosec G304 - path is the binary the user asked to scan
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	content := Decode(data)
	log.Debug().Str("file", path).Str("size", format.HumanSize(int64(len(data)))).Int("decodedBytes", len(content)).Msg("Loaded binary")
	return content, nil
}
