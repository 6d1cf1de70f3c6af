// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/internal/store"
)

// SyncTarget is the marker file whose content is the sync directory. Sync
// is enabled exactly when the file exists.
type SyncTarget struct {
	Path string
}

// Dir returns the sync directory, or "" with a nil error when sync is off.
func (s SyncTarget) Dir() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read sync file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Enable points the marker at dir.
func (s SyncTarget) Enable(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve sync directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create sync file directory: %w", err)
	}
	if err := store.WriteFileAtomic(s.Path, 0o600, func(w io.Writer) error {
		_, err := io.WriteString(w, abs)
		return err
	}); err != nil {
		return fmt.Errorf("write sync file: %w", err)
	}
	return nil
}

// Disable removes the marker. It reports false if sync was already off.
func (s SyncTarget) Disable() (bool, error) {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove sync file: %w", err)
	}
	return true, nil
}

type syncImport struct {
	archive service.ArchiveService
	dir     string
}

// NewSyncImport pulls the sync archive into the vault. A missing archive is
// not an error: nothing has been pushed yet.
func NewSyncImport(archive service.ArchiveService, dir string) Worker {
	return &syncImport{archive: archive, dir: dir}
}

func (w *syncImport) Name() string { return "sync-import" }

func (w *syncImport) Run(ctx context.Context) error {
	_, err := w.archive.Import(ctx, w.dir)
	if errors.Is(err, service.ErrArchiveNotFound) {
		return nil
	}
	return err
}

type syncExport struct {
	archive service.ArchiveService
	dir     string
}

// NewSyncExport pushes the vault to the sync archive.
func NewSyncExport(archive service.ArchiveService, dir string) Worker {
	return &syncExport{archive: archive, dir: dir}
}

func (w *syncExport) Name() string { return "sync-export" }

func (w *syncExport) Run(ctx context.Context) error {
	_, err := w.archive.Export(ctx, w.dir)
	return err
}
