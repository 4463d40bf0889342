package cmd

import (
	"encoding/json"
	"testing"

	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Sentinels(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, family.NoMembers+"\n", env.mustRun("tree"))
	assert.Equal(t, family.NoResults+"\n", env.mustRun("tree", "--search", "nobody"))

	env.addMember("--name", "Ada")
	assert.Equal(t, family.NoResults+"\n", env.mustRun("search", "zzz"))
}

func TestTree_ThreeGenerations(t *testing.T) {
	env := newTestEnv(t)
	a := env.addMember("--name", "A", "--gender", "male")
	b := env.addMember("--name", "B", "--gender", "female", "--father", a)
	env.addMember("--name", "C", "--mother", b)

	assert.Equal(t, "A ♂\n└─ B ♀\n└─ └─ C •\n", env.mustRun("tree"))
}

func TestSearch_StartsAtMatches(t *testing.T) {
	env := newTestEnv(t)
	a := env.addMember("--name", "Grandpa Joe", "--gender", "male")
	b := env.addMember("--name", "Ada", "--gender", "female", "--father", a)
	env.addMember("--name", "Kid", "--mother", b)

	assert.Equal(t, "Ada ♀\n└─ Kid •\n", env.mustRun("search", "ADA"))
	assert.Equal(t, env.mustRun("search", "ada"), env.mustRun("tree", "--search", "  ada "))
}

func TestTree_JSON(t *testing.T) {
	env := newTestEnv(t)
	a := env.addMember("--name", "A", "--gender", "male")
	env.addMember("--name", "B", "--father", a)

	out := env.mustRun("tree", "--json")
	var lines []treeLine
	require.NoError(t, json.Unmarshal([]byte(out), &lines))
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, 0, lines[0].Depth)
	assert.Equal(t, 1, lines[1].Depth)
	assert.Equal(t, "└─ B •", lines[1].Line)

	out = env.mustRun("tree", "--json", "--search", "zzz")
	assert.JSONEq(t, "[]", out)
}

func TestTree_WatchRejectsBadger(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("tree", "--watch", "--backend", "badger")
	assert.ErrorContains(t, err, "badger")
}
