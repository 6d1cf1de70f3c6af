package tui

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/MKhiriev/go-ipass/internal/app"
	"github.com/MKhiriev/go-ipass/internal/mock"
	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func namesSeq(names ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, n := range names {
			if !yield(n, nil) {
				return
			}
		}
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browseModel)
	require.True(t, ok)
	return bm, cmd
}

func newTestModel(t *testing.T) (browseModel, *mock.MockVaultService, *[]string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)

	var copied []string
	copyText := func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return newBrowseModel(context.Background(), vault, "master", copyText), vault, &copied
}

func loaded(t *testing.T, m browseModel, vault *mock.MockVaultService, names ...string) browseModel {
	t.Helper()
	vault.EXPECT().List(gomock.Any()).Return(namesSeq(names...))
	m, _ = update(t, m, m.cmdLoadNames()())
	return m
}

func TestBrowse_LoadNamesSorted(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "mail", "bank", "forum")

	assert.False(t, m.loading)
	assert.Equal(t, []string{"bank", "forum", "mail"}, m.names)
	assert.Contains(t, m.View(), "> bank")
}

func TestBrowse_LoadErrorShowsOverlay(t *testing.T) {
	m, vault, _ := newTestModel(t)
	vault.EXPECT().List(gomock.Any()).Return(func(yield func(string, error) bool) {
		yield("", errors.New("disk gone"))
	})

	m, _ = update(t, m, m.cmdLoadNames()())
	assert.Equal(t, "disk gone", m.errMsg)
	assert.Contains(t, m.View(), "disk gone")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.errMsg)
}

func TestBrowse_NavigationStaysInBounds(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "a", "b")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)
}

func TestBrowse_OpenMasksPasswordUntilRevealed(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "bank")

	vault.EXPECT().Read(gomock.Any(), "master", "bank").
		Return(models.EntryRecord{Username: "alice", Password: "p@ss"}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.True(t, m.detail)
	assert.Contains(t, m.View(), "alice")
	assert.NotContains(t, m.View(), "p@ss")

	m, _ = update(t, m, runeKey('r'))
	assert.Contains(t, m.View(), "p@ss")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.detail)
	assert.Equal(t, models.EntryRecord{}, m.record)
}

func TestBrowse_WrongPassphraseShowsUserMessage(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "bank")

	vault.EXPECT().Read(gomock.Any(), "master", "bank").
		Return(models.EntryRecord{}, service.ErrAuthenticationFailure)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.False(t, m.detail)
	assert.Equal(t, app.MsgAuthenticationFailure, m.errMsg)
}

func TestBrowse_CopyFields(t *testing.T) {
	m, vault, copied := newTestModel(t)
	m = loaded(t, m, vault, "bank")
	m, _ = update(t, m, entryLoadedMsg{name: "bank", record: models.EntryRecord{Username: "alice", Password: "p@ss"}})

	m, cmd := update(t, m, runeKey('c'))
	assert.NotNil(t, cmd)
	m, _ = update(t, m, runeKey('u'))

	assert.Equal(t, []string{"p@ss", "alice"}, *copied)
	assert.Equal(t, "Copied username", m.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestBrowse_CopyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := newBrowseModel(context.Background(), vault, "master", func(string) error {
		return errors.New("no clipboard")
	})
	m, _ = update(t, m, entryLoadedMsg{name: "bank", record: models.EntryRecord{Password: "p"}})

	m, cmd := update(t, m, runeKey('c'))
	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestBrowse_DeleteRequiresConfirmation(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "bank", "mail")

	m, _ = update(t, m, runeKey('d'))
	require.NotNil(t, m.confirm)
	assert.Equal(t, "bank", m.confirm.name)

	m, _ = update(t, m, runeKey('n'))
	assert.Nil(t, m.confirm)

	vault.EXPECT().Remove(gomock.Any(), "bank").Return(nil)

	m, _ = update(t, m, runeKey('d'))
	m, cmd := update(t, m, runeKey('y'))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, []string{"mail"}, m.names)
	assert.Equal(t, `Removed "bank"`, m.status)
}

func TestBrowse_Filter(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "bank", "mail", "mailbox")

	m, _ = update(t, m, runeKey('/'))
	require.True(t, m.filtering)
	for _, r := range "MAIL" {
		m, _ = update(t, m, runeKey(r))
	}
	assert.Equal(t, []string{"mail", "mailbox"}, m.visible())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filtering)
	name, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "mail", name)

	m, _ = update(t, m, runeKey('/'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.visible(), 3)
}

func TestBrowse_EmptyVault(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault)

	assert.Contains(t, m.View(), "vault is empty")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.detail)
}

func TestBrowse_Quit(t *testing.T) {
	m, vault, _ := newTestModel(t)
	m = loaded(t, m, vault, "bank")

	_, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
