// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive reads and writes the export format of a vault.
//
// The archive text is a sequence of line pairs, one per entry:
//
//	<entry name>\n
//	<hex ciphertext>\n
//
// and the whole text is passed through a [Compressor]. Ciphertexts are
// copied as stored; nothing is decrypted.
package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/models"
)

// ErrMalformedArchive is returned for archives that do not decompress, have
// an odd number of lines, or hold a line pair that is not a name followed by
// hex ciphertext.
var ErrMalformedArchive = errors.New("malformed archive")

// Writer streams pairs into a compressed archive.
type Writer struct {
	zw    io.WriteCloser
	bw    *bufio.Writer
	count int
}

// NewWriter starts an archive on w.
func NewWriter(w io.Writer, c Compressor) (*Writer, error) {
	zw, err := c.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &Writer{zw: zw, bw: bufio.NewWriter(zw)}, nil
}

// WritePair appends one entry. Names and ciphertexts must be single lines.
func (w *Writer) WritePair(pair models.ArchivePair) error {
	if strings.ContainsAny(pair.Name, "\r\n") || strings.ContainsAny(pair.Ciphertext, "\r\n") {
		return fmt.Errorf("pair %q spans several lines", pair.Name)
	}

	if _, err := w.bw.WriteString(pair.Name + "\n" + pair.Ciphertext + "\n"); err != nil {
		return fmt.Errorf("write pair %q: %w", pair.Name, err)
	}
	w.count++
	return nil
}

// Count returns the number of pairs written so far.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes the text and finishes the compressed stream.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		w.zw.Close()
		return fmt.Errorf("flush archive: %w", err)
	}
	if err := w.zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

// Read decompresses r and returns every pair in archive order. The whole
// archive is validated before anything is returned: an odd line count, an
// empty name or a ciphertext line that is not hex fails with
// [ErrMalformedArchive] and the 1-based line number.
func Read(r io.Reader, c Compressor) ([]models.ArchivePair, error) {
	zr, err := c.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	lines, err := readLines(zr)
	if err != nil {
		return nil, err
	}

	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of lines (%d)", ErrMalformedArchive, len(lines))
	}

	pairs := make([]models.ArchivePair, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		name, text := lines[i], lines[i+1]
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty entry name", ErrMalformedArchive, i+1)
		}
		if _, err := codec.FromStorageText(text); err != nil {
			return nil, fmt.Errorf("%w: line %d (entry %q): %w", ErrMalformedArchive, i+2, name, err)
		}
		pairs = append(pairs, models.ArchivePair{Name: name, Ciphertext: text})
	}

	return pairs, nil
}

// readLines splits on '\n', dropping a trailing '\r' from each line and the
// empty remainder after a final newline.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
		}
	}
}
