package family

import (
	"strings"
	"sync"
	"testing"

	"github.com/josephgoksu/FamilyWing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderForest_Empty(t *testing.T) {
	assert.Equal(t, NoMembers, RenderForest(nil, ""))
	assert.Equal(t, NoMembers, RenderForest([]models.Member{}, "   "))
}

func TestRenderForest_SearchNoMatchDiffersFromEmpty(t *testing.T) {
	members := []models.Member{{ID: "1", Name: "Ada"}}

	assert.Equal(t, NoResults, RenderForest(members, "zzz"))
	assert.Equal(t, NoResults, RenderForest(nil, "zzz"))
	assert.NotEqual(t, RenderForest(nil, ""), RenderForest(members, "zzz"))
}

func TestRenderForest_ThreeGenerations(t *testing.T) {
	members := []models.Member{
		{ID: "c", Name: "C", FatherID: "b"},
		{ID: "a", Name: "A", Gender: models.GenderMale},
		{ID: "b", Name: "B", Gender: models.GenderFemale, FatherID: "a"},
	}

	want := "A ♂\n" +
		"└─ B ♀\n" +
		"└─ └─ C •\n"
	assert.Equal(t, want, RenderForest(members, ""))

	lines := Forest(members, "")
	require.Len(t, lines, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{lines[0].Depth, lines[1].Depth, lines[2].Depth})
}

func TestRenderForest_Connectors(t *testing.T) {
	members := []models.Member{
		{ID: "p", Name: "P", Gender: models.GenderMale},
		{ID: "x", Name: "X", FatherID: "p"},
		{ID: "y", Name: "Y", FatherID: "p"},
		{ID: "z", Name: "Z", FatherID: "p"},
	}

	want := "P ♂\n" +
		"├─ X •\n" +
		"├─ Y •\n" +
		"└─ Z •\n"
	assert.Equal(t, want, RenderForest(members, ""))
}

func TestRenderForest_SelfFatherRendersOnce(t *testing.T) {
	members := []models.Member{{ID: "a", Name: "Loop", FatherID: "a"}}

	out := RenderForest(members, "")
	assert.Equal(t, 1, strings.Count(out, "Loop"))
	assert.Equal(t, "Loop •\n", out)
}

func TestRenderForest_CycleFallsBackToFirstMember(t *testing.T) {
	members := []models.Member{
		{ID: "a", Name: "A", FatherID: "b"},
		{ID: "b", Name: "B", MotherID: "a"},
	}

	assert.Equal(t, "A •\n└─ B •\n", RenderForest(members, ""))
}

func TestRenderForest_SharedChildEmittedOnce(t *testing.T) {
	members := []models.Member{
		{ID: "dad", Name: "Dad", Gender: models.GenderMale},
		{ID: "mom", Name: "Mom", Gender: models.GenderFemale},
		{ID: "kid", Name: "Kid", FatherID: "dad", MotherID: "mom"},
	}

	want := "Dad ♂\n" +
		"└─ Kid •\n" +
		"Mom ♀\n"
	assert.Equal(t, want, RenderForest(members, ""))
}

func TestRenderForest_SearchRootsAtMatches(t *testing.T) {
	members := []models.Member{
		{ID: "g", Name: "Grandma Ada", Gender: models.GenderFemale},
		{ID: "p", Name: "Bob", Gender: models.GenderMale, MotherID: "g"},
		{ID: "c", Name: "Little Ada", FatherID: "p"},
	}

	out := RenderForest(members, "ADA")
	assert.Equal(t, "Grandma Ada ♀\n└─ Bob ♂\n└─ └─ Little Ada •\n", out, "second match was already emitted")

	out = RenderForest(members, " bob ")
	assert.Equal(t, "Bob ♂\n└─ Little Ada •\n", out, "rendered from the match, not its ancestors")
}

func TestNameMatches(t *testing.T) {
	assert.True(t, NameMatches("Ada Lovelace", "love"))
	assert.True(t, NameMatches("ÉMILE Zola", "émile"))
	assert.True(t, NameMatches("anything", ""))
	assert.False(t, NameMatches("Ada", "bob"))
}

func TestNameMatches_ConcurrentCallers(t *testing.T) {
	names := []string{"Ada Lovelace", "ÉMILE Zola", "Straße", "Bob"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				name := names[(i+j)%len(names)]
				assert.True(t, NameMatches(name, strings.ToUpper(name)))
			}
		}(i)
	}
	wg.Wait()
}
