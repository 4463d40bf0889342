package ui

import (
	"strings"

	"github.com/josephgoksu/FamilyWing/internal/family"
)

// RenderStyledTree renders forest lines with dimmed connectors and colored
// gender symbols. Sentinel text is returned as-is when there are no lines.
func RenderStyledTree(lines []family.Line, sentinel string) string {
	if len(lines) == 0 {
		return StyleSubtle.Render(sentinel) + "\n"
	}
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(styledLine(l, false))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func styledLine(l family.Line, selected bool) string {
	name := StyleText.Render(l.Member.Name)
	if selected {
		name = StyleSelected.Render(l.Member.Name)
	}
	return StyleConnector.Render(l.Prefix) + name + " " + GenderIcon(l.Member.Gender)
}
