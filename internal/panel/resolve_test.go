package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innpulsa-research/zasca-cli/internal/centers"
	"github.com/innpulsa-research/zasca-cli/internal/geodist"
	"github.com/innpulsa-research/zasca-cli/internal/labels"
)

func fp(v float64) *float64 { return &v }

func testCityRegistry(t *testing.T) *centers.Registry {
	t.Helper()
	r, err := centers.NewRegistry(centers.ClassCity, []centers.Center{
		{Name: "Medellín", Lat: 6.2527, Lon: -75.5628},
		{Name: "Suba", Lat: 4.7208, Lon: -74.0748},
	})
	require.NoError(t, err)
	return r
}

func TestResolve_MissingCoords(t *testing.T) {
	reg := testCityRegistry(t)

	_, ok := Resolve(nil, fp(-75.5), "Medellín", reg, nil)
	assert.False(t, ok, "nil latitude short-circuits even with a valid label")

	_, ok = Resolve(fp(6.25), nil, "Medellín", reg, nil)
	assert.False(t, ok)

	_, ok = Resolve(nil, nil, "", reg, nil)
	assert.False(t, ok)
}

func TestResolve_NearestNeighbor(t *testing.T) {
	reg := testCityRegistry(t)

	// Observation exactly on the Medellín reference point.
	a, ok := Resolve(fp(6.2527), fp(-75.5628), "", reg, nil)
	require.True(t, ok)
	assert.Equal(t, "Medellín", a.Name)
	assert.Equal(t, MatchNearest, a.Method)
	require.NotNil(t, a.DistanceKM)
	assert.InDelta(t, 0.0, *a.DistanceKM, 1e-6)
}

func TestResolve_LabelBeatsProximity(t *testing.T) {
	reg := testCityRegistry(t)

	// Point next to Medellín but labeled Suba: the label wins and the
	// distance is to Suba, not to the nearest center.
	a, ok := Resolve(fp(6.2527), fp(-75.5628), "Suba", reg, nil)
	require.True(t, ok)
	assert.Equal(t, "Suba", a.Name)
	assert.Equal(t, MatchLabel, a.Method)
	require.NotNil(t, a.DistanceKM)

	want := geodist.Kilometers(6.2527, -75.5628, 4.7208, -74.0748)
	assert.InDelta(t, want, *a.DistanceKM, 1e-9)
}

func TestResolve_UnmatchedLabelFallsBack(t *testing.T) {
	reg := testCityRegistry(t)

	// Misspelled label: strict matching treats it as absent.
	a, ok := Resolve(fp(6.2527), fp(-75.5628), "Medellin", reg, nil)
	require.True(t, ok)
	assert.Equal(t, "Medellín", a.Name)
	assert.Equal(t, MatchNearest, a.Method)
}

func TestResolve_ClassesIndependent(t *testing.T) {
	city := testCityRegistry(t)
	program, err := centers.NewRegistry(centers.ClassProgram, []centers.Center{
		{Name: "Manrique", Lat: 6.284881727521926, Lon: -75.54409932364932},
		{Name: "Medellín", Lat: 6.232088566149681, Lon: -75.56902649888393},
	})
	require.NoError(t, err)

	lat, lon := fp(6.26), fp(-75.55)

	// "Manrique" exists only in the program registry: the program class
	// matches by label while the city class falls back to nearest.
	ca, ok := Resolve(lat, lon, "Manrique", city, nil)
	require.True(t, ok)
	assert.Equal(t, MatchNearest, ca.Method)
	assert.Equal(t, "Medellín", ca.Name)

	pa, ok := Resolve(lat, lon, "Manrique", program, nil)
	require.True(t, ok)
	assert.Equal(t, MatchLabel, pa.Method)
	assert.Equal(t, "Manrique", pa.Name)
}

func TestResolve_TieBreakRegistryOrder(t *testing.T) {
	reg, err := centers.NewRegistry(centers.ClassCity, []centers.Center{
		{Name: "First", Lat: 5.0, Lon: -75.0},
		{Name: "Second", Lat: 5.0, Lon: -75.0},
	})
	require.NoError(t, err)

	a, ok := Resolve(fp(5.1), fp(-75.1), "", reg, nil)
	require.True(t, ok)
	assert.Equal(t, "First", a.Name)
}

func TestResolve_EmptyRegistry(t *testing.T) {
	reg, err := centers.NewRegistry(centers.ClassCity, nil)
	require.NoError(t, err)

	_, ok := Resolve(fp(5.0), fp(-75.0), "", reg, nil)
	assert.False(t, ok)
}

func TestResolve_FoldedLabelMatch(t *testing.T) {
	reg := testCityRegistry(t)

	// Without folding the accentless spelling falls back to nearest.
	a, ok := Resolve(fp(4.7208), fp(-74.0748), "MEDELLIN", reg, nil)
	require.True(t, ok)
	assert.Equal(t, MatchNearest, a.Method)

	// With folding it matches, and the assigned name keeps the registry
	// spelling.
	a, ok = Resolve(fp(4.7208), fp(-74.0748), "MEDELLIN", reg, labels.Fold)
	require.True(t, ok)
	assert.Equal(t, MatchLabel, a.Method)
	assert.Equal(t, "Medellín", a.Name)
}

func TestResolve_DistanceSymmetricAcrossClasses(t *testing.T) {
	city := centers.DefaultCity()
	program := centers.DefaultProgram()

	lat, lon := fp(6.25), fp(-75.56)
	ca, ok := Resolve(lat, lon, "", city, nil)
	require.True(t, ok)
	pa, ok := Resolve(lat, lon, "", program, nil)
	require.True(t, ok)

	// Same point resolves per class against different reference
	// coordinates; both are defined and non-negative.
	require.NotNil(t, ca.DistanceKM)
	require.NotNil(t, pa.DistanceKM)
	assert.GreaterOrEqual(t, *ca.DistanceKM, 0.0)
	assert.GreaterOrEqual(t, *pa.DistanceKM, 0.0)
}
