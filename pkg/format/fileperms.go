package format

import "io/fs"

// Named file permissions used when the tool creates files.
const (
	// FilePublicRead is for result files that other tools and users read (rw-r--r--)
	FilePublicRead fs.FileMode = 0644

	// FileUserReadWrite is for log files that should only be readable by owner (rw-------)
	FileUserReadWrite fs.FileMode = 0600
)
