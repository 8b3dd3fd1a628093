// Package source provides random-access byte sources for analysis: local
// files (memory-mapped where the platform supports it) and S3 objects read
// through ranged requests. The footer lives at the file tail, so random
// access is required; streaming is not.
package source

import (
	"io"
	"strings"
)

// Source is a random-access view of one container file.
type Source interface {
	io.ReaderAt
	io.Closer

	// Size returns the total byte length.
	Size() int64
}

// IsS3URL reports whether path names an S3 object.
func IsS3URL(path string) bool {
	return strings.HasPrefix(path, "s3://")
}
