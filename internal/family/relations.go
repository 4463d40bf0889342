// Package family answers relationship questions over a member snapshot and
// renders the family forest. Every function is pure: it reads the slice it is
// given and never mutates it.
package family

import "github.com/josephgoksu/FamilyWing/models"

// Find returns the member with id.
func Find(members []models.Member, id string) (models.Member, bool) {
	if id == "" {
		return models.Member{}, false
	}
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}

// ChildrenOf returns every member whose father or mother is id, in collection order.
func ChildrenOf(members []models.Member, id string) []models.Member {
	if id == "" {
		return nil
	}
	var children []models.Member
	for _, m := range members {
		if m.FatherID == id || m.MotherID == id {
			children = append(children, m)
		}
	}
	return children
}

// ParentsOf returns m's father then mother. References that are empty or do
// not resolve are skipped.
func ParentsOf(members []models.Member, m models.Member) []models.Member {
	parents := make([]models.Member, 0, 2)
	if father, ok := Find(members, m.FatherID); ok {
		parents = append(parents, father)
	}
	if mother, ok := Find(members, m.MotherID); ok {
		parents = append(parents, mother)
	}
	return parents
}

// SiblingsOf returns every other member sharing a father or a mother with m.
// Half-siblings are included. Two members with no recorded parent are not
// siblings of each other.
func SiblingsOf(members []models.Member, m models.Member) []models.Member {
	var siblings []models.Member
	for _, other := range members {
		if other.ID == m.ID {
			continue
		}
		sameFather := m.FatherID != "" && other.FatherID == m.FatherID
		sameMother := m.MotherID != "" && other.MotherID == m.MotherID
		if sameFather || sameMother {
			siblings = append(siblings, other)
		}
	}
	return siblings
}

// FatherCandidates returns the members that may be chosen as a father.
func FatherCandidates(members []models.Member) []models.Member {
	return byGender(members, models.GenderMale)
}

// MotherCandidates returns the members that may be chosen as a mother.
func MotherCandidates(members []models.Member) []models.Member {
	return byGender(members, models.GenderFemale)
}

func byGender(members []models.Member, g models.Gender) []models.Member {
	var out []models.Member
	for _, m := range members {
		if m.Gender == g {
			out = append(out, m)
		}
	}
	return out
}

// Ancestors walks father and mother links upward from m, breadth first, and
// returns each ancestor once. Cyclic links stop at the first repeat.
func Ancestors(members []models.Member, m models.Member) []models.Member {
	visited := map[string]bool{m.ID: true}
	var out []models.Member
	queue := []models.Member{m}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range ParentsOf(members, cur) {
			if visited[p.ID] {
				continue
			}
			visited[p.ID] = true
			out = append(out, p)
			queue = append(queue, p)
		}
	}
	return out
}
