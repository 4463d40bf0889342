package ui

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/josephgoksu/FamilyWing/models"
)

// Empty-section placeholders in the member detail view.
const (
	NoParents   = "(no parents recorded)"
	NoChildren  = "(no children)"
	NoSiblings  = "(no siblings)"
	NoAncestors = "(no ancestors recorded)"
)

// MemberDetail is the resolved view of one member and its relatives.
type MemberDetail struct {
	Member   models.Member   `json:"member"`
	Parents  []models.Member `json:"parents"`
	Children []models.Member `json:"children"`
	Siblings []models.Member `json:"siblings"`
	// Ancestors is nil unless requested with WithAncestors.
	Ancestors []models.Member `json:"ancestors,omitempty"`
}

// NewMemberDetail resolves m's relatives in members.
func NewMemberDetail(m models.Member, members []models.Member) MemberDetail {
	return MemberDetail{
		Member:   m,
		Parents:  family.ParentsOf(members, m),
		Children: family.ChildrenOf(members, m.ID),
		Siblings: family.SiblingsOf(members, m),
	}
}

// WithAncestors adds every recorded ancestor of the member, nearest first.
func (d MemberDetail) WithAncestors(members []models.Member) MemberDetail {
	d.Ancestors = append([]models.Member{}, family.Ancestors(members, d.Member)...)
	return d
}

// RenderMemberDetail renders the detail view as a panel. A positive width
// caps the panel to the available terminal columns.
func RenderMemberDetail(d MemberDetail, width int) string {
	var sb strings.Builder

	gender := d.Member.Gender.String()
	if gender == "" {
		gender = "-"
	}
	fmt.Fprintf(&sb, "%s %s %s\n", StyleSubtle.Render("Gender:"), gender, GenderIcon(d.Member.Gender))
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("DOB:   "), orDash(d.Member.DOB))
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("ID:    "), d.Member.ID)

	writeRelatives(&sb, "Parents", d.Parents, NoParents)
	writeRelatives(&sb, "Children", d.Children, NoChildren)
	writeRelatives(&sb, "Siblings", d.Siblings, NoSiblings)
	if d.Ancestors != nil {
		writeRelatives(&sb, "Ancestors", d.Ancestors, NoAncestors)
	}

	panel := NewPanel(d.Member.Name, strings.TrimRight(sb.String(), "\n"))
	if width > 0 {
		panel = panel.WithWidth(min(width-2, 72))
	}
	return panel.Render()
}

func writeRelatives(sb *strings.Builder, title string, relatives []models.Member, empty string) {
	sb.WriteString("\n" + StyleSectionTitle.Render(title) + "\n")
	if len(relatives) == 0 {
		sb.WriteString("  " + StyleSubtle.Render(empty) + "\n")
		return
	}
	for _, r := range relatives {
		fmt.Fprintf(sb, "  %s %s\n", r.Label(), GenderIcon(r.Gender))
	}
}
