package family

import (
	"strings"

	"github.com/josephgoksu/FamilyWing/models"
)

// Sentinels returned by RenderForest when there is nothing to draw.
const (
	NoMembers = "(no members yet)"
	NoResults = "(no results)"
)

// Branch connectors.
const (
	ConnectorMid  = "├─ "
	ConnectorLast = "└─ "
)

// Line is one rendered node of the forest.
type Line struct {
	Member models.Member
	Depth  int
	// Prefix is the accumulated connector string drawn before the name.
	Prefix string
}

// String renders the line as prefix, name and gender symbol.
func (l Line) String() string {
	return l.Prefix + l.Member.Name + " " + l.Member.Gender.Symbol()
}

// Roots returns the members the forest starts from. With a blank query these
// are the members with no parents, or the first member when every member has
// a parent. Otherwise they are the members whose name contains the query.
func Roots(members []models.Member, query string) []models.Member {
	if q := strings.TrimSpace(query); q != "" {
		var matches []models.Member
		for _, m := range members {
			if NameMatches(m.Name, q) {
				matches = append(matches, m)
			}
		}
		return matches
	}

	var roots []models.Member
	for _, m := range members {
		if m.IsRoot() {
			roots = append(roots, m)
		}
	}
	if len(roots) == 0 && len(members) > 0 {
		roots = members[:1]
	}
	return roots
}

// Forest walks the tree depth first from every root and returns the lines in
// output order. A member already emitted anywhere in the pass is skipped
// along with its subtree, so cyclic parent links terminate.
func Forest(members []models.Member, query string) []Line {
	visited := make(map[string]bool)
	var lines []Line

	var walk func(m models.Member, prefix string, depth int)
	walk = func(m models.Member, prefix string, depth int) {
		if visited[m.ID] {
			return
		}
		visited[m.ID] = true
		lines = append(lines, Line{Member: m, Depth: depth, Prefix: prefix})

		children := ChildrenOf(members, m.ID)
		for i, child := range children {
			connector := ConnectorMid
			if i == len(children)-1 {
				connector = ConnectorLast
			}
			walk(child, prefix+connector, depth+1)
		}
	}

	for _, root := range Roots(members, query) {
		walk(root, "", 0)
	}
	return lines
}

// RenderForest renders the forest as newline-terminated text, or a sentinel
// when nothing is drawn.
func RenderForest(members []models.Member, query string) string {
	lines := Forest(members, query)
	if len(lines) == 0 {
		if strings.TrimSpace(query) != "" {
			return NoResults
		}
		return NoMembers
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
