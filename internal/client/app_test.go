package client

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ipass/internal/app"
	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/mock"
	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const master = "correct-horse"

// fakePrompter answers prompts from queues and records what was asked.
type fakePrompter struct {
	secrets []string
	lines   []string
	asked   []string
}

func (p *fakePrompter) Secret(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.secrets) == 0 {
		return "", errors.New("unexpected secret prompt")
	}
	s := p.secrets[0]
	p.secrets = p.secrets[1:]
	return s, nil
}

func (p *fakePrompter) Line(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.lines) == 0 {
		return "", errors.New("unexpected line prompt")
	}
	s := p.lines[0]
	p.lines = p.lines[1:]
	return s, nil
}

type fakeBrowser struct {
	passphrase string
}

func (b *fakeBrowser) Browse(_ context.Context, passphrase string) error {
	b.passphrase = passphrase
	return nil
}

type fixedPassword string

func (f fixedPassword) Generate() (string, error) { return string(f), nil }

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type harness struct {
	app      *App
	vault    *mock.MockVaultService
	archive  *mock.MockArchiveService
	info     *mock.MockAppInfoService
	prompter *fakePrompter
	browser  *fakeBrowser
	copied   []string
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	syncFile string
	home     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	h := &harness{
		vault:    mock.NewMockVaultService(ctrl),
		archive:  mock.NewMockArchiveService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
		prompter: &fakePrompter{},
		browser:  &fakeBrowser{},
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
		syncFile: filepath.Join(dir, ".sync.ipass"),
		home:     filepath.Join(dir, "home"),
	}

	services := &service.Services{
		VaultService:   h.vault,
		ArchiveService: h.archive,
		AppInfoService: h.info,
	}
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{SyncFile: h.syncFile, ArchiveExt: "ipassx"},
	}

	h.app = NewApp(services, h.browser, cfg, logger.Nop(),
		WithPrompter(h.prompter),
		WithOutput(h.out, h.errOut),
		WithClipboard(func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		}),
		WithPasswordGenerator(fixedPassword("alpha-bravo-charlie")),
		WithIDGenerator(fixedID("0192-test")),
		WithHomeDir(h.home),
	)
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.Run(context.Background(), args)
}

func names(ns ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, n := range ns {
			if !yield(n, nil) {
				return
			}
		}
	}
}

func TestApp_List(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().List(gomock.Any()).Return(names("mail", "bank"))

	require.Equal(t, 0, h.run("list"))
	assert.Equal(t, "Total entries: 2\n\nEntry: \"bank\"\nEntry: \"mail\"\n", h.out.String())
	assert.Empty(t, h.prompter.asked, "list never asks for the master password")
}

func TestApp_ListEmpty(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().List(gomock.Any()).Return(names())

	require.Equal(t, 0, h.run("list"))
	assert.Equal(t, "No entries yet!\n", h.out.String())
}

func TestApp_AddWithPassword(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Create(gomock.Any(), master, "bank", models.EntryRecord{Username: "alice", Password: "p@ss"}).Return(nil)

	require.Equal(t, 0, h.run("add", "bank", "alice", "p@ss"))
	assert.Contains(t, h.out.String(), "Added password for bank")
}

func TestApp_AddGeneratesPassword(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Create(gomock.Any(), master, "bank",
		models.EntryRecord{Username: "alice", Password: "alpha-bravo-charlie"}).Return(nil)

	require.Equal(t, 0, h.run("add", "bank", "alice"))
	assert.Contains(t, h.out.String(), "Using auto generated password")
}

func TestApp_AddDuplicate(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Create(gomock.Any(), master, "bank", gomock.Any()).Return(service.ErrDuplicateEntry)

	assert.Equal(t, 1, h.run("add", "bank", "alice", "x"))
	assert.Contains(t, h.errOut.String(), app.MsgDuplicateEntry)
}

func TestApp_ArityIsChecked(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 2, h.run("add", "bank"))
	assert.Contains(t, h.errOut.String(), `Invalid usage of "add"`)

	assert.Equal(t, 2, h.run("rename", "a", "b", "c"))
}

func TestApp_UnknownCommand(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("frobnicate"))
}

func TestApp_Get(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
	h.vault.EXPECT().Read(gomock.Any(), master, "bank").Return(models.EntryRecord{Username: "alice", Password: "p@ss"}, nil)

	require.Equal(t, 0, h.run("get", "bank"))
	assert.Contains(t, h.out.String(), "Username: alice")
	assert.Contains(t, h.out.String(), "Password: p@ss")
}

func TestApp_GetClip(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
	h.vault.EXPECT().Read(gomock.Any(), master, "bank").Return(models.EntryRecord{Username: "alice", Password: "p@ss"}, nil)

	require.Equal(t, 0, h.run("get", "-clip", "bank"))
	assert.Equal(t, []string{"p@ss"}, h.copied)
	assert.NotContains(t, h.out.String(), "p@ss")
}

func TestApp_GetMissingDoesNotPrompt(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().Exists(gomock.Any(), "nope").Return(false, nil)

	assert.Equal(t, 1, h.run("get", "nope"))
	assert.Contains(t, h.errOut.String(), app.MsgNotFound)
	assert.Empty(t, h.prompter.asked)
}

func TestApp_GetWrongPassphrase(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{"wrong"}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
	h.vault.EXPECT().Read(gomock.Any(), "wrong", "bank").Return(models.EntryRecord{}, service.ErrAuthenticationFailure)

	assert.Equal(t, 1, h.run("get", "bank"))
	assert.Contains(t, h.errOut.String(), app.MsgAuthenticationFailure)
}

func TestApp_ChangePasswordPrompted(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{"new", "new", master}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
	h.vault.EXPECT().ChangePassword(gomock.Any(), master, "bank", "new").Return(nil)

	require.Equal(t, 0, h.run("changepw", "bank"))
	assert.Contains(t, h.out.String(), "Changed Password of bank!")
}

func TestApp_ChangePasswordMismatch(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{"new", "other"}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)

	assert.Equal(t, 1, h.run("changepw", "bank"))
	assert.Contains(t, h.errOut.String(), app.MsgPasswordsDoNotMatch)
}

func TestApp_ChangeUsername(t *testing.T) {
	h := newHarness(t)
	h.prompter.lines = []string{"bob\n"}
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
	h.vault.EXPECT().ChangeUsername(gomock.Any(), master, "bank", "bob").Return(nil)

	require.Equal(t, 0, h.run("changeuser", "bank"))
}

func TestApp_Rename(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}
	h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
	h.vault.EXPECT().Rename(gomock.Any(), master, "bank", "bank2").Return(nil)

	require.Equal(t, 0, h.run("rename", "bank", "bank2"))
	assert.Contains(t, h.out.String(), "Renamed bank to bank2")
}

func TestApp_RemoveConfirmation(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		h := newHarness(t)
		h.prompter.lines = []string{""}
		h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)

		assert.Equal(t, 0, h.run("remove", "bank"))
		assert.Contains(t, h.errOut.String(), "Operation cancelled!")
	})

	t.Run("accepted", func(t *testing.T) {
		h := newHarness(t)
		h.prompter.lines = []string{"y"}
		h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
		h.vault.EXPECT().Remove(gomock.Any(), "bank").Return(nil)

		assert.Equal(t, 0, h.run("remove", "bank"))
		assert.Contains(t, h.out.String(), `Removed entry "bank"`)
	})

	t.Run("forced", func(t *testing.T) {
		h := newHarness(t)
		h.vault.EXPECT().Exists(gomock.Any(), "bank").Return(true, nil)
		h.vault.EXPECT().Remove(gomock.Any(), "bank").Return(nil)

		assert.Equal(t, 0, h.run("remove", "-y", "bank"))
		assert.Empty(t, h.prompter.asked)
	})
}

func TestApp_Clear(t *testing.T) {
	h := newHarness(t)
	h.vault.EXPECT().Clear(gomock.Any()).Return(3, nil)

	require.Equal(t, 0, h.run("clear", "-y"))
	assert.Contains(t, h.out.String(), "Cleared 3 entries!")
}

func TestApp_ExportDefaultsToHome(t *testing.T) {
	h := newHarness(t)
	h.prompter.lines = []string{""}
	h.archive.EXPECT().Export(gomock.Any(), h.home).Return(models.ExportReport{
		Path:     filepath.Join(h.home, "export.ipassx"),
		Exported: 1,
		Skipped:  []models.SkippedEntry{{Name: "broken", Err: service.ErrMalformedEncoding}},
	}, nil)

	require.Equal(t, 0, h.run("export"))
	assert.Contains(t, h.out.String(), `Skipped "broken"`)
	assert.Contains(t, h.out.String(), "Saved 1 entries")
}

func TestApp_ExportDeclined(t *testing.T) {
	h := newHarness(t)
	h.prompter.lines = []string{"n"}

	assert.Equal(t, 0, h.run("export"))
	assert.Contains(t, h.errOut.String(), "Operation cancelled!")
}

func TestApp_ImportErrors(t *testing.T) {
	h := newHarness(t)
	h.archive.EXPECT().Import(gomock.Any(), "/share").Return(0, service.ErrMalformedArchive)

	assert.Equal(t, 1, h.run("import", "/share"))
	assert.Contains(t, h.errOut.String(), app.MsgMalformedArchive)
}

func TestApp_SyncWrapsCommands(t *testing.T) {
	h := newHarness(t)
	share := t.TempDir()

	h.archive.EXPECT().Export(gomock.Any(), share).Return(models.ExportReport{}, nil)
	require.Equal(t, 0, h.run("sync", "on", share))
	assert.Contains(t, h.out.String(), "Sync is now Enabled!")

	gomock.InOrder(
		h.archive.EXPECT().Import(gomock.Any(), share).Return(0, service.ErrArchiveNotFound),
		h.vault.EXPECT().List(gomock.Any()).Return(names()),
		h.archive.EXPECT().Export(gomock.Any(), share).Return(models.ExportReport{}, nil),
	)
	require.Equal(t, 0, h.run("list"))

	require.Equal(t, 0, h.run("sync", "off"))
	_, err := os.Stat(h.syncFile)
	assert.True(t, os.IsNotExist(err))

	h.out.Reset()
	require.Equal(t, 0, h.run("sync", "off"))
	assert.Contains(t, h.out.String(), "Sync is already disabled!")
}

func TestApp_SyncFailuresDoNotFailCommand(t *testing.T) {
	h := newHarness(t)
	share := t.TempDir()
	require.NoError(t, os.WriteFile(h.syncFile, []byte(share), 0o600))

	h.archive.EXPECT().Import(gomock.Any(), share).Return(0, errors.New("share offline"))
	h.vault.EXPECT().List(gomock.Any()).Return(names())
	h.archive.EXPECT().Export(gomock.Any(), share).Return(models.ExportReport{}, errors.New("share offline"))

	assert.Equal(t, 0, h.run("list"))
}

func TestApp_SyncOnFailedTestExportDisables(t *testing.T) {
	h := newHarness(t)
	share := t.TempDir()

	h.archive.EXPECT().Export(gomock.Any(), share).Return(models.ExportReport{}, errors.New("read-only"))

	assert.Equal(t, 1, h.run("sync", "on", share))
	_, err := os.Stat(h.syncFile)
	assert.True(t, os.IsNotExist(err))
}

func TestApp_SyncBadMode(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("sync", "maybe"))
}

func TestApp_Version(t *testing.T) {
	h := newHarness(t)
	h.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{
		Build:    models.NewAppBuildInfo("1.4.2", "2026-10-01", "abc123"),
		Scheme:   "legacy",
		VaultDir: "/home/u/.IPass",
	})

	require.Equal(t, 0, h.run("version"))
	out := h.out.String()
	assert.Contains(t, out, "IPass v1.4.2")
	assert.Contains(t, out, "Major 1 Sub 4 Bugfix 2")
	assert.Contains(t, out, "Scheme: legacy")
}

func TestApp_BrowseReadsPassphraseOnce(t *testing.T) {
	h := newHarness(t)
	h.prompter.secrets = []string{master}

	require.Equal(t, 0, h.run("browse"))
	assert.Equal(t, master, h.browser.passphrase)
	assert.Len(t, h.prompter.asked, 1)
}
