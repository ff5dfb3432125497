package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huyiGithub/tiled"
)

func testMap() *tiled.Map {
	m := tiled.NewMap(tiled.Orthogonal, 3, 2, 16, 16)
	m.RTB.LevelName = "Lint Me"

	ts := tiled.NewTileset("blocks", 16, 16, 0, 0)
	m.AddTileset(ts)

	group := tiled.NewObjectGroup("things", 0, 0, 3, 2)
	group.AddObject(tiled.NewMapObject("spawn", "startlocation", 0, 0, 16, 16))
	m.AddLayer(group)
	return m
}

func TestCheckReportsViolations(t *testing.T) {
	runner, err := NewRunner([]byte(`
if level.width != level.height {
	fail("map must be square")
}
for t in level.tilesets {
	if t.tilecount == 0 {
		fail("tileset has no tiles: " + t.name)
	}
}
`))
	require.NoError(t, err)

	violations, err := runner.Check(testMap())
	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, "map must be square", violations[0].Message)
	assert.Equal(t, "tileset has no tiles: blocks", violations[1].Message)
}

func TestCheckCleanMap(t *testing.T) {
	runner, err := NewRunner([]byte(`
found := false
for o in level.objects {
	if o.type == "startlocation" {
		found = true
	}
}
if !found {
	fail("missing start location")
}
`))
	require.NoError(t, err)

	violations, err := runner.Check(testMap())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckIsReusable(t *testing.T) {
	runner, err := NewRunner([]byte(`fail(level.name)`))
	require.NoError(t, err)

	first, err := runner.Check(testMap())
	require.NoError(t, err)

	m2 := testMap()
	m2.RTB.LevelName = "Second"
	second, err := runner.Check(m2)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "Lint Me", first[0].Message)
	assert.Equal(t, "Second", second[0].Message)
}

func TestNewRunnerCompileError(t *testing.T) {
	_, err := NewRunner([]byte(`if {`))
	require.Error(t, err)
}
