package gen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// OpenFunc resolves a document identifier to its readable content.
type OpenFunc func(id string) (io.ReadCloser, error)

// OpenFile opens a reference page from disk, transparently decompressing
// gzip (.gz) and zstd (.zst) pages.
func OpenFile(id string) (io.ReadCloser, error) {
	f, err := os.Open(id)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(id, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open %s: %w", id, err)
		}
		return &docReader{r: zr, file: f}, nil
	case strings.HasSuffix(id, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open %s: %w", id, err)
		}
		return &docReader{r: dec.IOReadCloser(), file: f}, nil
	}
	return f, nil
}

// docReader closes both the decompressor and the underlying file.
type docReader struct {
	r    io.ReadCloser
	file *os.File
}

func (d *docReader) Read(p []byte) (int, error) { return d.r.Read(p) }

func (d *docReader) Close() error {
	err := d.r.Close()
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}
