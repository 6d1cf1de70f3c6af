// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/internal/logger"
)

const (
	saltFileName = ".salt"

	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600

	// readDirBatch bounds how many directory entries Names holds at once.
	readDirBatch = 64
)

// entryFileStorage is the [EntryStorage] backed by one file per entry:
// <dir>/<name>.<ext>, holding the hex ciphertext and nothing else.
type entryFileStorage struct {
	dir    string
	ext    string
	logger *logger.Logger
}

// NewEntryFileStorage creates the vault directory if needed and returns an
// [EntryStorage] over it. ext is the entry file extension without the dot.
func NewEntryFileStorage(dir, ext string, log *logger.Logger) (EntryStorage, error) {
	if dir == "" {
		return nil, errors.New("vault directory is not set")
	}
	if ext == "" || strings.Contains(ext, ".") {
		return nil, fmt.Errorf("invalid entry extension %q", ext)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create vault directory: %w", err)
	}

	return &entryFileStorage{
		dir:    dir,
		ext:    ext,
		logger: log,
	}, nil
}

func (s *entryFileStorage) path(name string) string {
	return filepath.Join(s.dir, name+"."+s.ext)
}

func (s *entryFileStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(s.path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat entry %q: %w", name, err)
	}
}

func (s *entryFileStorage) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrEntryNotFound, name)
		}
		return "", fmt.Errorf("read entry %q: %w", name, err)
	}

	return string(data), nil
}

func (s *entryFileStorage) Create(ctx context.Context, name, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := createFileExclusive(s.path(name), []byte(text), filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %q", ErrEntryAlreadyExists, name)
		}
		s.logger.Err(err).Str("entry", name).Msg("error creating entry file")
		return fmt.Errorf("create entry %q: %w", name, err)
	}

	s.logger.Debug().Str("entry", name).Msg("entry file created")
	return nil
}

func (s *entryFileStorage) Replace(ctx context.Context, name, text string) error {
	exists, err := s.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}

	if err = atomicWriteFile(s.path(name), []byte(text), filePerm); err != nil {
		s.logger.Err(err).Str("entry", name).Msg("error replacing entry file")
		return fmt.Errorf("replace entry %q: %w", name, err)
	}

	s.logger.Debug().Str("entry", name).Msg("entry file replaced")
	return nil
}

func (s *entryFileStorage) Put(ctx context.Context, name, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicWriteFile(s.path(name), []byte(text), filePerm); err != nil {
		s.logger.Err(err).Str("entry", name).Msg("error writing entry file")
		return fmt.Errorf("write entry %q: %w", name, err)
	}

	s.logger.Debug().Str("entry", name).Msg("entry file written")
	return nil
}

func (s *entryFileStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrEntryNotFound, name)
		}
		return fmt.Errorf("remove entry %q: %w", name, err)
	}

	s.logger.Debug().Str("entry", name).Msg("entry file removed")
	return nil
}

func (s *entryFileStorage) Names(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		dir, err := os.Open(s.dir)
		if err != nil {
			yield("", fmt.Errorf("open vault directory: %w", err))
			return
		}
		defer dir.Close()

		suffix := "." + s.ext
		for {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			batch, err := dir.ReadDir(readDirBatch)
			for _, e := range batch {
				name, ok := entryName(e, suffix)
				if !ok {
					continue
				}
				if !yield(name, nil) {
					return
				}
			}

			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("read vault directory: %w", err))
				return
			}
		}
	}
}

// entryName returns the entry name of a directory entry, skipping
// directories, dotfiles (salt, temp files) and foreign extensions.
func entryName(e fs.DirEntry, suffix string) (string, bool) {
	if !e.Type().IsRegular() {
		return "", false
	}

	fileName := e.Name()
	if strings.HasPrefix(fileName, ".") {
		return "", false
	}

	name, found := strings.CutSuffix(fileName, suffix)
	if !found || name == "" {
		return "", false
	}
	return name, true
}

func (s *entryFileStorage) LoadSalt(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, saltFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSaltNotFound
		}
		return nil, fmt.Errorf("read vault salt: %w", err)
	}

	salt, err := codec.FromStorageText(string(data))
	if err != nil {
		return nil, fmt.Errorf("decode vault salt: %w", err)
	}
	return salt, nil
}

func (s *entryFileStorage) SaveSalt(ctx context.Context, salt []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, saltFileName)
	if err := atomicWriteFile(path, []byte(codec.ToStorageText(salt)), filePerm); err != nil {
		return fmt.Errorf("write vault salt: %w", err)
	}

	s.logger.Info().Msg("vault salt written")
	return nil
}
