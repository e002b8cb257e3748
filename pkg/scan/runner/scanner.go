package runner

import (
	"fmt"

	"github.com/CompassSecurity/ifacescan/pkg/config"
	"github.com/CompassSecurity/ifacescan/pkg/scan/binary"
	"github.com/CompassSecurity/ifacescan/pkg/scan/result"
	pkgscanner "github.com/CompassSecurity/ifacescan/pkg/scanner"
	"github.com/CompassSecurity/ifacescan/pkg/scanner/types"
	"github.com/rs/zerolog/log"
)

type Scanner interface {
	pkgscanner.BaseScanner
	// Interfaces returns the sorted, unique interfaces of the last successful scan.
	Interfaces() []string
}

type interfaceScanner struct {
	options    config.ScanOptions
	patterns   []types.Pattern
	interfaces []string
}

var _ Scanner = (*interfaceScanner)(nil)

// NewScanner creates a scanner using the built-in pattern catalog.
func NewScanner(opts config.ScanOptions) Scanner {
	return NewScannerWithPatterns(opts, pkgscanner.DefaultPatterns())
}

func NewScannerWithPatterns(opts config.ScanOptions, patterns []types.Pattern) Scanner {
	return &interfaceScanner{
		options:  opts,
		patterns: patterns,
	}
}

// Scan loads the input, matches the catalog and writes the result file.
// On failure no output file is written.
func (s *interfaceScanner) Scan() error {
	s.interfaces = nil
	log.Info().Str("file", s.options.InputFile).Int("patterns", len(s.patterns)).Msg("Scanning binary")

	content, err := binary.Load(s.options.InputFile, s.options.MaxFileSize)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrInputIO, s.options.InputFile, err)
	}
	if content == "" {
		return ErrEmptyContent
	}

	matches, err := pkgscanner.FindMatches(content, s.patterns)
	if err != nil {
		return err
	}
	log.Debug().Int("matches", len(matches)).Msg("Matched patterns")

	interfaces := result.Aggregate(matches)
	if len(interfaces) == 0 {
		return ErrNoMatches
	}

	if err := result.WriteResults(s.options.OutputFile, interfaces); err != nil {
		return fmt.Errorf("%w %s: %w", ErrOutputIO, s.options.OutputFile, err)
	}

	s.interfaces = interfaces
	result.ReportInterfaces(interfaces, s.options.InputFile)
	log.Info().Int("count", len(interfaces)).Str("output", s.options.OutputFile).Msg("Scan finished")
	return nil
}

func (s *interfaceScanner) Interfaces() []string {
	return s.interfaces
}
