package result

import (
	"bufio"
	"errors"
	"os"

	"github.com/CompassSecurity/ifacescan/pkg/format"
)

var ErrNoResults = errors.New("no results to write")

// WriteResults writes one interface per line to path, replacing any existing file.
// Nothing is created when interfaces is empty.
func WriteResults(path string, interfaces []string) (err error) {
	if len(interfaces) == 0 {
		return ErrNoResults
	}

	// #nosec G304 - output path chosen by the user via --output
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, format.FilePublicRead)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(out)
	for _, iface := range interfaces {
		if _, err := w.WriteString(iface + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
