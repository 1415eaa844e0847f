package centers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_PreservesOrder(t *testing.T) {
	r, err := NewRegistry(ClassCity, []Center{
		{Name: "B", Lat: 1, Lon: 1},
		{Name: "A", Lat: 2, Lon: 2},
		{Name: "C", Lat: 3, Lon: 3},
	})
	require.NoError(t, err)

	cs := r.Centers()
	require.Len(t, cs, 3)
	assert.Equal(t, "B", cs[0].Name)
	assert.Equal(t, "A", cs[1].Name)
	assert.Equal(t, "C", cs[2].Name)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry(ClassProgram, []Center{
		{Name: "Medellín", Lat: 6.23, Lon: -75.57},
		{Name: "Medellín", Lat: 6.25, Lon: -75.56},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRegistry_EmptyName(t *testing.T) {
	_, err := NewRegistry(ClassCity, []Center{{Name: "", Lat: 1, Lon: 1}})
	require.Error(t, err)
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	r := DefaultCity()

	c, ok := r.Lookup("Medellín")
	require.True(t, ok)
	assert.InDelta(t, 6.2527, c.Lat, 1e-9)
	assert.InDelta(t, -75.5628, c.Lon, 1e-9)

	// Case and accents matter.
	_, ok = r.Lookup("medellín")
	assert.False(t, ok)
	_, ok = r.Lookup("Medellin")
	assert.False(t, ok)
}

func TestDefaultRegistries(t *testing.T) {
	city := DefaultCity()
	program := DefaultProgram()

	assert.Equal(t, 13, city.Len())
	assert.Equal(t, 13, program.Len())
	assert.Equal(t, ClassCity, city.Class())
	assert.Equal(t, ClassProgram, program.Class())

	// Same names exist in both classes but with independent coordinates.
	cc, ok := city.Lookup("Suba")
	require.True(t, ok)
	pc, ok := program.Lookup("Suba")
	require.True(t, ok)
	assert.NotEqual(t, cc.Lat, pc.Lat)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.yaml")
	content := `centers:
  - name: Medellín
    lat: 6.2527
    lon: -75.5628
  - name: Suba
    lat: 4.7208
    lon: -74.0748
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadFile(ClassCity, path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	c, ok := r.Lookup("Medellín")
	require.True(t, ok)
	assert.InDelta(t, 6.2527, c.Lat, 1e-9)
}

func TestLoadFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("centers: []\n"), 0o644))

	_, err := LoadFile(ClassProgram, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no centers")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(ClassCity, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFile_DuplicateRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.yaml")
	content := `centers:
  - name: Cúcuta
    lat: 7.89
    lon: -72.50
  - name: Cúcuta
    lat: 7.82
    lon: -72.46
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFile(ClassCity, path)
	require.Error(t, err)
}
