package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/FamilyWing/internal/util"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/mattn/go-runewidth"
)

// Table renders data in a compact markdown-style table format.
// Widths are measured in terminal cells so names with accents or wide
// characters stay aligned.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)
}

// ColumnWidths calculates optimal column widths based on content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			if widths[i] > t.MaxWidth {
				widths[i] = t.MaxWidth
			}
		}
	}

	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cellStyle := lipgloss.NewStyle().Foreground(ColorText)
	dimStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	var headerCells []string
	for i, h := range t.Headers {
		headerCells = append(headerCells, headerStyle.Render(padRight(h, widths[i])))
	}
	sb.WriteString(" " + strings.Join(headerCells, "  ") + "\n")

	var sepParts []string
	for _, w := range widths {
		sepParts = append(sepParts, dimStyle.Render(strings.Repeat("─", w)))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if runewidth.StringWidth(val) > widths[i] {
				val = runewidth.Truncate(val, widths[i], "…")
			}
			cells = append(cells, cellStyle.Render(padRight(val, widths[i])))
		}
		sb.WriteString(" " + strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

// padRight pads a string to the specified display width.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// MemberTable builds the flat member listing in collection order.
func MemberTable(members []models.Member) *Table {
	return MemberTableOf(members, members)
}

// MemberTableOf lists rows, resolving parent names against all.
func MemberTableOf(rows, all []models.Member) *Table {
	t := &Table{
		Headers:  []string{"ID", "Name", "Gender", "Born", "Father", "Mother"},
		MaxWidth: 32,
	}
	byID := make(map[string]string, len(all))
	for _, m := range all {
		byID[m.ID] = m.Name
	}
	parent := func(id string) string {
		if id == "" {
			return "-"
		}
		if name, ok := byID[id]; ok {
			return name
		}
		return "? " + util.ShortID(id, 0)
	}

	for _, m := range rows {
		t.Rows = append(t.Rows, []string{
			util.ShortID(m.ID, 0),
			m.Name,
			orDash(m.Gender.String()),
			orDash(m.DOB),
			parent(m.FatherID),
			parent(m.MotherID),
		})
	}
	return t
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
