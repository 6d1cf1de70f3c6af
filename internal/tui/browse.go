package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-ipass/internal/app"
	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// browseModel lists entry names, opens one at a time, and can copy or remove
// it. Only the open entry is ever held decrypted.
type browseModel struct {
	ctx        context.Context
	vault      service.VaultService
	passphrase string
	copyText   func(string) error

	names   []string
	idx     int
	loading bool
	spinner spinner.Model

	filtering bool
	filter    textinput.Model

	detail   bool
	opened   string
	record   models.EntryRecord
	revealed bool

	confirm *confirmModel
	errMsg  string
	status  string
}

func newBrowseModel(ctx context.Context, vault service.VaultService, passphrase string, copyText func(string) error) browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Placeholder = "filter"
	f.Prompt = "/"

	return browseModel{
		ctx:        ctx,
		vault:      vault,
		passphrase: passphrase,
		copyText:   copyText,
		loading:    true,
		spinner:    s,
		filter:     f,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNames(), m.spinner.Tick)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.names = msg.names
		m.clampIdx()
		return m, nil

	case entryLoadedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.detail = true
		m.opened = msg.name
		m.record = msg.record
		m.revealed = false
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.closeDetail()
		m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == msg.name })
		m.clampIdx()
		return m, m.setStatus(fmt.Sprintf("Removed %q", msg.name))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.closeDetail()
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			name := m.confirm.name
			m.confirm = nil
			return m, m.cmdDelete(name)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	if m.detail {
		return m.handleDetailKey(msg)
	}

	visible := m.visible()
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.cmdLoadNames(), m.spinner.Tick)
	case key.Matches(msg, keys.enter):
		if name, ok := m.current(); ok {
			return m, m.cmdOpen(name)
		}
	case key.Matches(msg, keys.delete):
		if name, ok := m.current(); ok {
			m.confirm = &confirmModel{name: name}
		}
	}
	return m, nil
}

func (m browseModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		m.clampIdx()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.clampIdx()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.idx = 0
	return m, cmd
}

func (m browseModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.closeDetail()
	case key.Matches(msg, keys.reveal):
		m.revealed = !m.revealed
	case key.Matches(msg, keys.copy):
		return m, m.copy(m.record.Password, "password")
	case key.Matches(msg, keys.copyUser):
		return m, m.copy(m.record.Username, "username")
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{name: m.opened}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.errMsg != "" {
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	}
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}
	if m.detail {
		return m.detailView()
	}
	return m.listView()
}

func (m browseModel) listView() string {
	var b strings.Builder

	switch visible := m.visible(); {
	case m.loading:
		b.WriteString(m.spinner.View() + " loading...")
	case len(m.names) == 0:
		b.WriteString("vault is empty")
	case len(visible) == 0:
		b.WriteString("no entries match")
	default:
		for i, name := range visible {
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> " + name))
			} else {
				b.WriteString("  " + name)
			}
			b.WriteString("\n")
		}
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("\n" + m.filter.View())
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	title := fmt.Sprintf("IPass (%d entries)", len(m.names))
	return renderPage(title, b.String(), "enter open  / filter  d remove  g reload  q quit")
}

func (m browseModel) detailView() string {
	password := mask(m.record.Password)
	if m.revealed {
		password = valueOrDash(m.record.Password)
	}

	data := fmt.Sprintf("Username: %s\nPassword: %s", valueOrDash(m.record.Username), password)
	if m.status != "" {
		data += "\n\n" + statusStyle.Render(m.status)
	}

	return renderPage(m.opened, data, "r reveal  c copy password  u copy username  d remove  esc back")
}

// visible returns the names matching the filter.
func (m browseModel) visible() []string {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		return m.names
	}
	out := make([]string, 0, len(m.names))
	for _, n := range m.names {
		if strings.Contains(strings.ToLower(n), q) {
			out = append(out, n)
		}
	}
	return out
}

func (m browseModel) current() (string, bool) {
	visible := m.visible()
	if m.idx < 0 || m.idx >= len(visible) {
		return "", false
	}
	return visible[m.idx], true
}

func (m *browseModel) clampIdx() {
	if n := len(m.visible()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *browseModel) closeDetail() {
	m.detail = false
	m.opened = ""
	m.record = models.EntryRecord{}
	m.revealed = false
}

func (m *browseModel) setStatus(s string) tea.Cmd {
	m.status = s
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *browseModel) copy(value, what string) tea.Cmd {
	if err := m.copyText(value); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return nil
	}
	return m.setStatus("Copied " + what)
}

func (m browseModel) cmdLoadNames() tea.Cmd {
	return func() tea.Msg {
		var names []string
		for name, err := range m.vault.List(m.ctx) {
			if err != nil {
				return listLoadedMsg{err: err}
			}
			names = append(names, name)
		}
		slices.Sort(names)
		return listLoadedMsg{names: names}
	}
}

func (m browseModel) cmdOpen(name string) tea.Cmd {
	return func() tea.Msg {
		record, err := m.vault.Read(m.ctx, m.passphrase, name)
		return entryLoadedMsg{name: name, record: record, err: err}
	}
}

func (m browseModel) cmdDelete(name string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{name: name, err: m.vault.Remove(m.ctx, name)}
	}
}

func userMessage(err error) string {
	if msg := app.UserMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}
