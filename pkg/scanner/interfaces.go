package scanner

// BaseScanner defines the minimal interface that all scanners must implement.
type BaseScanner interface {
	// Scan performs a scan based on the configured options and returns any error encountered.
	Scan() error
}
