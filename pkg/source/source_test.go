package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenFileReadAt(t *testing.T) {
	content := []byte("PAR1 some bytes in the middle PAR1")
	path := filepath.Join(t.TempDir(), "sample.parquet")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer src.Close()

	if src.Size() != int64(len(content)) {
		t.Errorf("Size = %d, want %d", src.Size(), len(content))
	}

	buf := make([]byte, 4)
	if _, err := src.ReadAt(buf, 0); err != nil {
		t.Fatalf("ReadAt(0): %v", err)
	}
	if !bytes.Equal(buf, []byte("PAR1")) {
		t.Errorf("head = %q", buf)
	}

	if _, err := src.ReadAt(buf, src.Size()-4); err != nil && err != io.EOF {
		t.Fatalf("ReadAt(tail): %v", err)
	}
	if !bytes.Equal(buf, []byte("PAR1")) {
		t.Errorf("tail = %q", buf)
	}
}

func TestOpenFileShortRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(path, []byte("abcdef"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer src.Close()

	// Reading past the end returns the available bytes and EOF.
	buf := make([]byte, 10)
	n, err := src.ReadAt(buf, 4)
	if err != io.EOF {
		t.Errorf("err = %v, want EOF", err)
	}
	if n != 2 || !bytes.Equal(buf[:n], []byte("ef")) {
		t.Errorf("read %d bytes %q", n, buf[:n])
	}

	if _, err := src.ReadAt(buf, 100); err != io.EOF {
		t.Errorf("far offset err = %v, want EOF", err)
	}
}

func TestOpenFileMissing(t *testing.T) {
	if _, err := OpenFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer src.Close()

	if src.Size() != 0 {
		t.Errorf("Size = %d, want 0", src.Size())
	}
}

func TestIsS3URL(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"s3://bucket/key.parquet", true},
		{"s3://bucket/deep/key", true},
		{"/tmp/file.parquet", false},
		{"https://example.com/file.parquet", false},
		{"s3:/bucket/key", false},
	}
	for _, tt := range tests {
		if got := IsS3URL(tt.path); got != tt.want {
			t.Errorf("IsS3URL(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://my-bucket/path/to/file.parquet")
	if err != nil {
		t.Fatalf("ParseS3URL: %v", err)
	}
	if bucket != "my-bucket" || key != "path/to/file.parquet" {
		t.Errorf("parsed %q %q", bucket, key)
	}

	for _, bad := range []string{
		"http://bucket/key",
		"s3://bucket",
		"s3://",
		"s3:///key",
	} {
		if _, _, err := ParseS3URL(bad); err == nil {
			t.Errorf("ParseS3URL(%q) should fail", bad)
		}
	}
}
