package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/codec"
	"github.com/MKhiriev/go-ipass/internal/crypto"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/store"
	"github.com/MKhiriev/go-ipass/internal/validators"
	"github.com/MKhiriev/go-ipass/models"
)

type vaultService struct {
	entries   store.EntryStorage
	scheme    crypto.Scheme
	validator validators.Validator
	logger    *logger.Logger
}

func NewVaultService(entries store.EntryStorage, scheme crypto.Scheme, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		entries:   entries,
		scheme:    scheme,
		validator: validator,
		logger:    logger,
	}
}

func (v *vaultService) Create(ctx context.Context, passphrase, name string, record models.EntryRecord) error {
	if err := v.validateName(ctx, name); err != nil {
		return err
	}

	exists, err := v.entries.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("check entry %q: %w", name, err)
	}
	if exists {
		return fmt.Errorf("create entry %q: %w", name, ErrDuplicateEntry)
	}

	if strings.Contains(record.Username, codec.FieldSeparator) {
		v.logger.Warn().Str("entry", name).
			Msg("username contains the field separator; the password will read back with a prefix")
	}

	err = v.withKey(ctx, passphrase, true, func(sealer crypto.EntrySealer, key []byte) error {
		text, err := seal(sealer, key, name, record)
		if err != nil {
			return err
		}
		return v.entries.Create(ctx, name, text)
	})
	if err != nil {
		return fmt.Errorf("create entry %q: %w", name, mapLayerError(err))
	}

	v.logger.Info().Str("entry", name).Msg("entry created")
	return nil
}

func (v *vaultService) Read(ctx context.Context, passphrase, name string) (models.EntryRecord, error) {
	if err := v.validateName(ctx, name); err != nil {
		return models.EntryRecord{}, err
	}

	ciphertext, err := v.load(ctx, name)
	if err != nil {
		return models.EntryRecord{}, err
	}

	var record models.EntryRecord
	err = v.withKey(ctx, passphrase, false, func(sealer crypto.EntrySealer, key []byte) error {
		record, err = open(sealer, key, name, ciphertext)
		return err
	})
	if err != nil {
		return models.EntryRecord{}, fmt.Errorf("read entry %q: %w", name, mapLayerError(err))
	}

	return record, nil
}

func (v *vaultService) UpdateField(ctx context.Context, passphrase, name string, field models.Field, mutate func(string) string) error {
	if err := v.validateName(ctx, name); err != nil {
		return err
	}

	ciphertext, err := v.load(ctx, name)
	if err != nil {
		return err
	}

	err = v.withKey(ctx, passphrase, false, func(sealer crypto.EntrySealer, key []byte) error {
		record, err := open(sealer, key, name, ciphertext)
		if err != nil {
			return err
		}

		text, err := seal(sealer, key, name, record.With(field, mutate(record.Get(field))))
		if err != nil {
			return err
		}
		return v.entries.Replace(ctx, name, text)
	})
	if err != nil {
		return fmt.Errorf("update %s of entry %q: %w", field, name, mapLayerError(err))
	}

	v.logger.Info().Str("entry", name).Stringer("field", field).Msg("entry updated")
	return nil
}

func (v *vaultService) ChangePassword(ctx context.Context, passphrase, name, password string) error {
	return v.UpdateField(ctx, passphrase, name, models.FieldPassword, func(string) string { return password })
}

func (v *vaultService) ChangeUsername(ctx context.Context, passphrase, name, username string) error {
	if strings.Contains(username, codec.FieldSeparator) {
		v.logger.Warn().Str("entry", name).
			Msg("username contains the field separator; the password will read back with a prefix")
	}
	return v.UpdateField(ctx, passphrase, name, models.FieldUsername, func(string) string { return username })
}

func (v *vaultService) Rename(ctx context.Context, passphrase, oldName, newName string) error {
	if err := v.validateName(ctx, oldName); err != nil {
		return err
	}
	if err := v.validateName(ctx, newName); err != nil {
		return err
	}

	ciphertext, err := v.load(ctx, oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return fmt.Errorf("rename entry %q: %w", oldName, ErrDuplicateEntry)
	}

	exists, err := v.entries.Exists(ctx, newName)
	if err != nil {
		return fmt.Errorf("check entry %q: %w", newName, err)
	}
	if exists {
		return fmt.Errorf("rename entry %q to %q: %w", oldName, newName, ErrDuplicateEntry)
	}

	err = v.withKey(ctx, passphrase, false, func(sealer crypto.EntrySealer, key []byte) error {
		record, err := open(sealer, key, oldName, ciphertext)
		if err != nil {
			return err
		}

		text, err := seal(sealer, key, newName, record)
		if err != nil {
			return err
		}
		return v.entries.Create(ctx, newName, text)
	})
	if err != nil {
		return fmt.Errorf("rename entry %q to %q: %w", oldName, newName, mapLayerError(err))
	}

	// Both files are live until this succeeds; the error says so.
	if err := v.entries.Delete(ctx, oldName); err != nil {
		return fmt.Errorf("remove old entry %q after rename to %q: %w", oldName, newName, mapLayerError(err))
	}

	v.logger.Info().Str("entry", oldName).Str("new_entry", newName).Msg("entry renamed")
	return nil
}

func (v *vaultService) Remove(ctx context.Context, name string) error {
	if err := v.validateName(ctx, name); err != nil {
		return err
	}

	if err := v.entries.Delete(ctx, name); err != nil {
		return fmt.Errorf("remove entry %q: %w", name, mapLayerError(err))
	}

	v.logger.Info().Str("entry", name).Msg("entry removed")
	return nil
}

func (v *vaultService) Exists(ctx context.Context, name string) (bool, error) {
	if err := v.validateName(ctx, name); err != nil {
		return false, err
	}
	return v.entries.Exists(ctx, name)
}

func (v *vaultService) List(ctx context.Context) iter.Seq2[string, error] {
	return v.entries.Names(ctx)
}

func (v *vaultService) Clear(ctx context.Context) (int, error) {
	// Collect first so deletions do not race the directory scan.
	var names []string
	for name, err := range v.entries.Names(ctx) {
		if err != nil {
			return 0, fmt.Errorf("list entries: %w", err)
		}
		names = append(names, name)
	}

	removed := 0
	for _, name := range names {
		if err := v.entries.Delete(ctx, name); err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				continue
			}
			return removed, fmt.Errorf("remove entry %q: %w", name, err)
		}
		removed++
	}

	v.logger.Info().Int("removed", removed).Msg("vault cleared")
	return removed, nil
}

func (v *vaultService) validateName(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, name); err != nil {
		return mapLayerError(err)
	}
	return nil
}

// load reads and hex-decodes the stored ciphertext of name.
func (v *vaultService) load(ctx context.Context, name string) ([]byte, error) {
	text, err := v.entries.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load entry %q: %w", name, mapLayerError(err))
	}

	ciphertext, err := codec.FromStorageText(text)
	if err != nil {
		v.logger.Err(err).Str("entry", name).Msg("stored entry is not valid hex")
		return nil, fmt.Errorf("load entry %q: %w", name, mapLayerError(err))
	}
	return ciphertext, nil
}

// withKey builds the vault sealer, derives the key from passphrase, runs fn
// and zeroes the key. createSalt allows a salted scheme to initialise the
// vault salt on first write.
func (v *vaultService) withKey(ctx context.Context, passphrase string, createSalt bool, fn func(crypto.EntrySealer, []byte) error) error {
	sealer, err := v.sealer(ctx, createSalt)
	if err != nil {
		return err
	}

	key, err := sealer.DeriveKey(passphrase)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Zero(key)

	return fn(sealer, key)
}

func (v *vaultService) sealer(ctx context.Context, createSalt bool) (crypto.EntrySealer, error) {
	if !v.scheme.Salted() {
		return v.scheme.NewSealer(nil)
	}

	salt, err := v.entries.LoadSalt(ctx)
	if errors.Is(err, store.ErrSaltNotFound) && createSalt {
		if salt, err = crypto.GenerateSalt(); err != nil {
			return nil, err
		}
		if err = v.entries.SaveSalt(ctx, salt); err != nil {
			return nil, err
		}
		v.logger.Info().Str("scheme", v.scheme.Name()).Msg("vault salt initialised")
	}
	if err != nil {
		return nil, fmt.Errorf("load vault salt: %w", err)
	}

	return v.scheme.NewSealer(salt)
}

func seal(sealer crypto.EntrySealer, key []byte, name string, record models.EntryRecord) (string, error) {
	plaintext := codec.Serialize(record)
	defer crypto.Zero(plaintext)

	ciphertext, err := sealer.Seal(key, name, plaintext)
	if err != nil {
		return "", fmt.Errorf("encrypt entry: %w", err)
	}
	return codec.ToStorageText(ciphertext), nil
}

func open(sealer crypto.EntrySealer, key []byte, name string, ciphertext []byte) (models.EntryRecord, error) {
	plaintext, err := sealer.Open(key, name, ciphertext)
	if err != nil {
		return models.EntryRecord{}, err
	}
	defer crypto.Zero(plaintext)

	return codec.Deserialize(plaintext)
}
