//go:build !unix

package source

import (
	"bytes"
	"fmt"
	"os"
)

// OpenFile reads the whole file into memory on platforms without mmap
// support.
func OpenFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return &bufferSource{r: bytes.NewReader(data), size: int64(len(data))}, nil
}

type bufferSource struct {
	r    *bytes.Reader
	size int64
}

func (s *bufferSource) ReadAt(p []byte, off int64) (int, error) {
	return s.r.ReadAt(p, off)
}

func (s *bufferSource) Size() int64 {
	return s.size
}

func (s *bufferSource) Close() error {
	return nil
}
