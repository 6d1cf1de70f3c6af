package service

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ipass/internal/archive"
	"github.com/MKhiriev/go-ipass/internal/crypto"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/validators"
	"github.com/MKhiriev/go-ipass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(tv *testVault) ArchiveService {
	return NewArchiveService(tv.entries, archive.NewGzipCompressor(gzip.DefaultCompression), validators.NewEntryValidator(), "export.ipassx", logger.Nop())
}

func readDirFiles(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = data
	}
	return files
}

func writeArchive(t *testing.T, dir, text string) {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.ipassx"), buf.Bytes(), 0o600))
}

func TestArchiveService_RoundTripIsByteIdentical(t *testing.T) {
	for schemeName, scheme := range schemes() {
		t.Run(schemeName, func(t *testing.T) {
			ctx := context.Background()
			src := newTestVault(t, scheme)
			for _, name := range []string{"bank", "mail", "a longer entry name"} {
				require.NoError(t, src.vault.Create(ctx, master, name, models.EntryRecord{Username: name, Password: "pw-" + name}))
			}

			exportDir := t.TempDir()
			report, err := newTestArchive(src).Export(ctx, exportDir)
			require.NoError(t, err)
			assert.Equal(t, 3, report.Exported)
			assert.Empty(t, report.Skipped)
			assert.Equal(t, filepath.Join(exportDir, "export.ipassx"), report.Path)

			dst := newTestVault(t, scheme)
			n, err := newTestArchive(dst).Import(ctx, exportDir)
			require.NoError(t, err)
			assert.Equal(t, 3, n)

			assert.Equal(t, readDirFiles(t, src.dir), readDirFiles(t, dst.dir))

			got, err := dst.vault.Read(ctx, master, "bank")
			require.NoError(t, err)
			assert.Equal(t, models.EntryRecord{Username: "bank", Password: "pw-bank"}, got)
		})
	}
}

func TestArchiveService_ExportFormat(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t, crypto.NewLegacyScheme())
	require.NoError(t, tv.entries.Put(ctx, "bank", "00ff"))

	exportDir := t.TempDir()
	_, err := newTestArchive(tv).Export(ctx, exportDir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(exportDir, "export.ipassx"))
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	var text bytes.Buffer
	_, err = text.ReadFrom(zr)
	require.NoError(t, err)

	assert.Equal(t, "bank\n00ff\n", text.String())
}

func TestArchiveService_ExportSkipsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t, crypto.NewLegacyScheme())
	require.NoError(t, tv.vault.Create(ctx, master, "good", models.EntryRecord{Username: "u", Password: "p"}))
	require.NoError(t, tv.entries.Put(ctx, "bad", "not hex at all"))

	report, err := newTestArchive(tv).Export(ctx, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Exported)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "bad", report.Skipped[0].Name)
	assert.ErrorIs(t, report.Skipped[0].Err, ErrMalformedEncoding)
}

func TestArchiveService_ExportTrailingNewlineEntry(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t, crypto.NewLegacyScheme())
	require.NoError(t, tv.vault.Create(ctx, master, "bank", models.EntryRecord{Username: "u", Password: "p"}))
	require.NoError(t, tv.vault.Create(ctx, master, "mail", models.EntryRecord{Username: "m", Password: "q"}))

	f, err := os.OpenFile(filepath.Join(tv.dir, "bank.ipass"), os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteString("\r\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = tv.vault.Read(ctx, master, "bank")
	require.NoError(t, err)

	exportDir := t.TempDir()
	report, err := newTestArchive(tv).Export(ctx, exportDir)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Exported)
	assert.Empty(t, report.Skipped)

	dst := newTestVault(t, crypto.NewLegacyScheme())
	n, err := newTestArchive(dst).Import(ctx, exportDir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := dst.vault.Read(ctx, master, "bank")
	require.NoError(t, err)
	assert.Equal(t, models.EntryRecord{Username: "u", Password: "p"}, got)
}

func TestArchiveService_ExportEmptyVault(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t, crypto.NewLegacyScheme())
	exportDir := filepath.Join(t.TempDir(), "nested", "out")

	report, err := newTestArchive(tv).Export(ctx, exportDir)
	require.NoError(t, err)
	assert.Zero(t, report.Exported)

	n, err := newTestArchive(newTestVault(t, crypto.NewLegacyScheme())).Import(ctx, exportDir)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestArchiveService_ImportOverwrites(t *testing.T) {
	ctx := context.Background()
	tv := newTestVault(t, crypto.NewLegacyScheme())
	require.NoError(t, tv.entries.Put(ctx, "bank", "aaaa"))

	dir := t.TempDir()
	writeArchive(t, dir, "bank\nbbbb\nmail\ncccc\n")

	n, err := newTestArchive(tv).Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	text, err := tv.entries.Load(ctx, "bank")
	require.NoError(t, err)
	assert.Equal(t, "bbbb", text)
}

func TestArchiveService_ImportMalformedWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "odd line count", text: "bank\nbbbb\nmail\n"},
		{name: "bad hex after good pair", text: "bank\nbbbb\nmail\nxyz\n"},
		{name: "path in name", text: "bank\nbbbb\n../etc\ncccc\n"},
		{name: "salt not first", text: "bank\nbbbb\n.salt\n00112233\n"},
		{name: "empty ciphertext", text: "bank\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tv := newTestVault(t, crypto.NewLegacyScheme())
			dir := t.TempDir()
			writeArchive(t, dir, tt.text)

			_, err := newTestArchive(tv).Import(ctx, dir)
			require.ErrorIs(t, err, ErrMalformedArchive)

			exists, err := tv.vault.Exists(ctx, "bank")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestArchiveService_ImportNotGzip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.ipassx"), []byte("bank\n00\n"), 0o600))

	_, err := newTestArchive(newTestVault(t, crypto.NewLegacyScheme())).Import(context.Background(), dir)
	assert.ErrorIs(t, err, ErrMalformedArchive)
}

func TestArchiveService_ImportMissingArchive(t *testing.T) {
	_, err := newTestArchive(newTestVault(t, crypto.NewLegacyScheme())).Import(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}

func TestArchiveService_SaltTravelsWithArchive(t *testing.T) {
	ctx := context.Background()
	scheme := crypto.NewHardenedScheme(testArgon2Params)

	src := newTestVault(t, scheme)
	require.NoError(t, src.vault.Create(ctx, master, "bank", models.EntryRecord{Username: "alice", Password: "p@ss"}))
	exportDir := t.TempDir()
	_, err := newTestArchive(src).Export(ctx, exportDir)
	require.NoError(t, err)

	t.Run("adopted by empty vault", func(t *testing.T) {
		dst := newTestVault(t, scheme)
		_, err := newTestArchive(dst).Import(ctx, exportDir)
		require.NoError(t, err)

		got, err := dst.vault.Read(ctx, master, "bank")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("refused by vault with another salt", func(t *testing.T) {
		dst := newTestVault(t, scheme)
		require.NoError(t, dst.vault.Create(ctx, master, "mail", models.EntryRecord{Username: "bob", Password: "x"}))

		_, err := newTestArchive(dst).Import(ctx, exportDir)
		require.ErrorIs(t, err, ErrSaltMismatch)

		exists, err := dst.vault.Exists(ctx, "bank")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
