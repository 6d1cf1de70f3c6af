// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"compress/gzip"
	"fmt"
	"io"
)

// Compressor is the byte-stream codec wrapped around the archive text.
type Compressor interface {
	// NewWriter returns a writer compressing into w. Closing it flushes the
	// compressed stream but does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader returns a reader decompressing r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// GzipCompressor is the default [Compressor].
type GzipCompressor struct {
	// Level is a compress/gzip level. gzip.NoCompression (0) stores the
	// text uncompressed inside the gzip framing.
	Level int
}

// NewGzipCompressor returns a gzip [Compressor] with the given level. Pass
// gzip.DefaultCompression for the library default.
func NewGzipCompressor(level int) *GzipCompressor {
	return &GzipCompressor{Level: level}
}

func (c *GzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, c.Level)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}
	return zw, nil
}

func (c *GzipCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}
	return zr, nil
}
