package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/josephgoksu/FamilyWing/models"
)

// MemberSource is what the browser reads from.
type MemberSource interface {
	Snapshot() []models.Member
	Reload() error
}

// Browse runs the interactive tree browser until the user quits.
func Browse(src MemberSource) error {
	p := tea.NewProgram(newBrowseModel(src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

type browseModel struct {
	src        MemberSource
	members    []models.Member
	lines      []family.Line
	search     textinput.Model
	cursor     int
	showDetail bool
	err        error
	width      int
	height     int
}

func newBrowseModel(src MemberSource) browseModel {
	ti := textinput.New()
	ti.Placeholder = "search names..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40

	m := browseModel{src: src, search: ti, width: 80, height: 24}
	m.refresh()
	return m
}

// refresh re-reads the snapshot and rebuilds the visible lines, keeping the
// cursor on the same member where possible.
func (m *browseModel) refresh() {
	var selectedID string
	if sel, ok := m.selected(); ok {
		selectedID = sel.ID
	}

	m.members = m.src.Snapshot()
	m.lines = family.Forest(m.members, m.search.Value())

	m.cursor = 0
	for i, l := range m.lines {
		if l.Member.ID == selectedID {
			m.cursor = i
			break
		}
	}
}

func (m browseModel) selected() (models.Member, bool) {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return models.Member{}, false
	}
	return m.lines[m.cursor].Member, true
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.lines) > 0 {
				m.showDetail = !m.showDetail
			}
		case "/":
			m.showDetail = false
			return m, m.search.Focus()
		case "r":
			m.err = m.src.Reload()
			m.refresh()
		}
	}
	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.search.Blur()
		return m, nil
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Family Tree (%d members)", len(m.members))))
	b.WriteString("\n\n")

	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.lines) == 0 {
		sentinel := family.NoMembers
		if strings.TrimSpace(m.search.Value()) != "" {
			sentinel = family.NoResults
		}
		b.WriteString(StyleSubtle.Render(sentinel) + "\n")
	}

	for i, l := range m.lines {
		cursor := "  "
		if i == m.cursor {
			cursor = StyleSelected.Render("▶ ")
		}
		b.WriteString(cursor + styledLine(l, i == m.cursor) + "\n")
	}

	if m.showDetail {
		if sel, ok := m.selected(); ok {
			b.WriteString("\n" + RenderMemberDetail(NewMemberDetail(sel, m.members), m.width) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + StyleError.Render("reload failed: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + StyleSubtle.Render("↑/↓ navigate • enter details • / search • r reload • q quit") + "\n")
	return b.String()
}
