//go:build unix

package source

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// fileSource is a read-only memory mapping of a local file.
type fileSource struct {
	data []byte
	size int64
}

// OpenFile maps a local file into memory.
func OpenFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	size := info.Size()
	if size == 0 {
		return &fileSource{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}

	return &fileSource{data: data, size: size}, nil
}

func (s *fileSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= s.size {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (s *fileSource) Size() int64 {
	return s.size
}

func (s *fileSource) Close() error {
	if s.data == nil {
		return nil
	}
	if err := unix.Munmap(s.data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	s.data = nil
	return nil
}
