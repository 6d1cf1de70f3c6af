package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/archive"
	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/internal/validators"
	"github.com/MKhiriev/go-ipass/models"
)

// SaltPairName names the archive pair carrying the vault salt. It starts with
// a dot, so it can never collide with an entry name.
const SaltPairName = ".salt"

type archiveService struct {
	entries     store.EntryStorage
	compressor  archive.Compressor
	validator   validators.Validator
	archiveName string
	logger      *logger.Logger
}

// NewArchiveService returns an [ArchiveService] reading and writing
// <dir>/<archiveName>.
func NewArchiveService(entries store.EntryStorage, compressor archive.Compressor, validator validators.Validator, archiveName string, logger *logger.Logger) ArchiveService {
	return &archiveService{
		entries:     entries,
		compressor:  compressor,
		validator:   validator,
		archiveName: archiveName,
		logger:      logger,
	}
}

func (a *archiveService) Export(ctx context.Context, dir string) (models.ExportReport, error) {
	report := models.ExportReport{Path: filepath.Join(dir, a.archiveName)}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return report, fmt.Errorf("create export directory: %w", err)
	}

	err := store.WriteFileAtomic(report.Path, 0o600, func(w io.Writer) error {
		aw, err := archive.NewWriter(w, a.compressor)
		if err != nil {
			return err
		}

		if err := a.exportSalt(ctx, aw); err != nil {
			return err
		}

		for name, err := range a.entries.Names(ctx) {
			if err != nil {
				return fmt.Errorf("list entries: %w", err)
			}

			skipped, err := a.exportEntry(ctx, aw, name)
			if err != nil {
				return err
			}
			if skipped != nil {
				report.Skipped = append(report.Skipped, *skipped)
				continue
			}
			report.Exported++
		}

		return aw.Close()
	})
	if err != nil {
		return models.ExportReport{Path: report.Path}, fmt.Errorf("export to %s: %w", report.Path, err)
	}

	a.logger.Info().
		Str("path", report.Path).
		Int("exported", report.Exported).
		Int("skipped", len(report.Skipped)).
		Msg("vault exported")
	return report, nil
}

func (a *archiveService) exportSalt(ctx context.Context, aw *archive.Writer) error {
	salt, err := a.entries.LoadSalt(ctx)
	if errors.Is(err, store.ErrSaltNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return aw.WritePair(models.ArchivePair{Name: SaltPairName, Ciphertext: codec.ToStorageText(salt)})
}

// exportEntry copies one stored entry into the archive. A corrupt or
// vanished entry is reported instead of failing the export.
func (a *archiveService) exportEntry(ctx context.Context, aw *archive.Writer, name string) (*models.SkippedEntry, error) {
	text, err := a.entries.Load(ctx, name)
	if errors.Is(err, store.ErrEntryNotFound) {
		return &models.SkippedEntry{Name: name, Err: withKind(ErrNotFound, err)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load entry %q: %w", name, err)
	}

	// A trailing line break in the entry file is tolerated on read and must
	// not leak into the archive line.
	pair := models.ArchivePair{Name: name, Ciphertext: strings.TrimRight(text, "\r\n")}
	if err := a.validator.Validate(ctx, pair); err != nil {
		a.logger.Warn().Err(err).Str("entry", name).Msg("skipping corrupt entry")
		return &models.SkippedEntry{Name: name, Err: withKind(ErrMalformedEncoding, err)}, nil
	}

	return nil, aw.WritePair(pair)
}

func (a *archiveService) Import(ctx context.Context, dir string) (int, error) {
	path := filepath.Join(dir, a.archiveName)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
		}
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	pairs, err := archive.Read(f, a.compressor)
	if err != nil {
		return 0, fmt.Errorf("read archive %s: %w", path, mapLayerError(err))
	}

	salt, pairs, err := splitSalt(pairs)
	if err != nil {
		return 0, fmt.Errorf("read archive %s: %w", path, err)
	}

	for i, pair := range pairs {
		if err := a.validator.Validate(ctx, pair); err != nil {
			return 0, fmt.Errorf("read archive %s: pair %d: %w", path, i+1,
				withKind(ErrMalformedArchive, err))
		}
	}

	if salt != nil {
		if err := a.importSalt(ctx, salt); err != nil {
			return 0, err
		}
	}

	for i, pair := range pairs {
		if err := a.entries.Put(ctx, pair.Name, pair.Ciphertext); err != nil {
			return i, fmt.Errorf("import entry %q: %w", pair.Name, err)
		}
		a.logger.Debug().Str("entry", pair.Name).Msg("entry imported")
	}

	a.logger.Info().Str("path", path).Int("imported", len(pairs)).Msg("vault imported")
	return len(pairs), nil
}

// splitSalt removes a leading salt pair.
func splitSalt(pairs []models.ArchivePair) ([]byte, []models.ArchivePair, error) {
	if len(pairs) == 0 || pairs[0].Name != SaltPairName {
		return nil, pairs, nil
	}

	salt, err := codec.FromStorageText(pairs[0].Ciphertext)
	if err != nil || len(salt) == 0 {
		return nil, nil, fmt.Errorf("%w: invalid vault salt", ErrMalformedArchive)
	}
	return salt, pairs[1:], nil
}

// importSalt adopts the archive salt for a vault without one and refuses a
// different one, which would make the existing entries unreadable.
func (a *archiveService) importSalt(ctx context.Context, salt []byte) error {
	current, err := a.entries.LoadSalt(ctx)
	switch {
	case errors.Is(err, store.ErrSaltNotFound):
		if err := a.entries.SaveSalt(ctx, salt); err != nil {
			return fmt.Errorf("save vault salt: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("load vault salt: %w", err)
	case !bytes.Equal(current, salt):
		return ErrSaltMismatch
	}
	return nil
}
