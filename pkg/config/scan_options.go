// Package config provides the scan configuration and its validation helpers.
package config

// DefaultOutputFile is the result file written to the working directory.
const DefaultOutputFile = "steam_interfaces.txt"

// DefaultMaxFileSize is the default for --max-file-size, no limit.
const DefaultMaxFileSize = "0"

// ScanOptions contains the configuration for a single scan.
type ScanOptions struct {
	// InputFile is the compiled library to scan
	InputFile string
	// OutputFile receives the sorted interface list
	OutputFile string
	// MaxFileSize rejects larger inputs (in bytes), 0 disables the check
	MaxFileSize int64
}

// DefaultScanOptions returns the defaults used by the CLI.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		OutputFile: DefaultOutputFile,
	}
}
