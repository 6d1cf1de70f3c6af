package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const tempFilePattern = ".tmp-*"

// linkFile is swapped in tests to simulate filesystems without hard links.
var linkFile = os.Link

// WriteFileAtomic streams the output of write into a temp file next to path,
// syncs it and renames it over path. Readers see either the old or the new
// content, never a partial write. On error path is left untouched.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)

	tmpPath, err := writeTempFile(dir, perm, write)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	_ = syncDir(dir)
	return nil
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return WriteFileAtomic(path, perm, writeBytes(data))
}

// createFileExclusive writes data to path only if path does not exist yet.
// The content is staged in a temp file and hard-linked into place, so the
// existence check and the publish are one step. The returned error matches
// fs.ErrExist when path is taken.
//
// Filesystems that refuse hard links (FAT, some network mounts) fall back to
// an O_EXCL create written in place.
func createFileExclusive(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpPath, err := writeTempFile(dir, perm, writeBytes(data))
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	err = linkFile(tmpPath, path)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		err = createFileInPlace(path, data, perm)
	}
	if err != nil {
		return err
	}

	_ = syncDir(dir)
	return nil
}

func createFileInPlace(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeBytes(data []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}
}

func writeTempFile(dir string, perm os.FileMode, write func(io.Writer) error) (string, error) {
	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	fail := func(err error) (string, error) {
		tmpFile.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}

	if err := write(tmpFile); err != nil {
		return fail(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmpFile.Sync(); err != nil {
		return fail(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return fail(fmt.Errorf("chmod temp file: %w", err))
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return tmpPath, nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
