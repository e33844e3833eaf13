package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="100" height="75" tilewidth="8" tileheight="8" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="552" width="800" height="32"/>
  <object id="2" x="60" y="430" width="160" height="24"/>
 </objectgroup>
 <objectgroup id="2" name="Boss">
  <object id="3" x="400" y="488"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="PlayerStart">
  <object id="4" x="80" y="500"><point/></object>
 </objectgroup>
</map>
`

const noStartTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="72" width="80" height="8"/>
 </objectgroup>
</map>
`

func TestBuiltin_Level1(t *testing.T) {
	level, err := Builtin(1)
	require.NoError(t, err)

	assert.Equal(t, 800, level.Width)
	assert.Equal(t, 600, level.Height)
	assert.Len(t, level.Platforms, 9)
	assert.Len(t, level.Enemies, 3)
	assert.Len(t, level.Coins, 14)
	assert.False(t, level.HasBoss())
	require.NotNil(t, level.Goal)

	// Ground centred at (400, 568) with size 800x32
	assert.Equal(t, Rect{X: 0, Y: 552, W: 800, H: 32}, level.Platforms[0])
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin(7)
	assert.Error(t, err)
	assert.True(t, HasBuiltin(2))
	assert.False(t, HasBuiltin(3))
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(arenaTMX)},
	}

	level, err := LoadTMX(fsys, "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", level.Name)
	assert.Equal(t, 800, level.Width)
	assert.Equal(t, 600, level.Height)
	require.Len(t, level.Platforms, 2)
	assert.Equal(t, Rect{X: 60, Y: 430, W: 160, H: 24}, level.Platforms[0], "sorted top to bottom")
	require.True(t, level.HasBoss())
	assert.Equal(t, Point{X: 400, Y: 488}, *level.Boss)
	assert.Nil(t, level.Goal)
	assert.Equal(t, Point{X: 80, Y: 500}, level.PlayerStart)
	assert.Empty(t, level.Enemies)
}

func TestLoadTMX_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/nostart.tmx": {Data: []byte(noStartTMX)},
		"levels/broken.tmx":  {Data: []byte("<map")},
	}

	_, err := LoadTMX(fsys, "levels/nostart.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerStart)

	_, err = LoadTMX(fsys, "levels/broken.tmx")
	assert.ErrorContains(t, err, "load TMX levels/broken.tmx")

	_, err = LoadTMX(fsys, "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(arenaTMX)},
		"levels/a.tmx": {Data: []byte(arenaTMX)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.ErrorContains(t, err, "no .tmx files")
}
