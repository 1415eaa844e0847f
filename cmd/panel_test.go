package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innpulsa-research/zasca-cli/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Columns: config.ColumnsConfig{
			Entity:    "up_id",
			Latitude:  "latitude",
			Longitude: "longitude",
			Label:     "centro",
			Year:      "year",
			Cohort:    "yearcohort",
		},
		Panel: config.PanelConfig{
			Metrics:      config.DefaultMetrics,
			MaxCityKM:    50,
			MaxProgramKM: 50,
			Workers:      1,
		},
	}
}

func resetPanelFlags() {
	panelCityKM = 0
	panelProgramKM = 0
	panelWorkers = 0
	panelFold = false
	panelBackfill = false
	panelCityRegistry = ""
	panelProgRegistry = ""
}

func TestBuildOptions_ConfigDefaults(t *testing.T) {
	cfg = testConfig()
	resetPanelFlags()

	opts := buildOptions()
	assert.Equal(t, "up_id", opts.EntityColumn)
	assert.InDelta(t, 50.0, opts.MaxCityKM, 0.001)
	assert.InDelta(t, 50.0, opts.MaxProgramKM, 0.001)
	assert.Equal(t, 1, opts.Workers)
	assert.False(t, opts.FoldLabels)
}

func TestBuildOptions_FlagOverrides(t *testing.T) {
	cfg = testConfig()
	resetPanelFlags()
	panelCityKM = 30
	panelProgramKM = 20
	panelWorkers = 8
	panelFold = true
	panelBackfill = true

	opts := buildOptions()
	assert.InDelta(t, 30.0, opts.MaxCityKM, 0.001)
	assert.InDelta(t, 20.0, opts.MaxProgramKM, 0.001)
	assert.Equal(t, 8, opts.Workers)
	assert.True(t, opts.FoldLabels)
	assert.True(t, opts.BackfillCohort)
}

func TestLoadInput_Dispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("up_id,latitude\nA,6.2\n"), 0o644))

	tbl, err := loadInput(csvPath, "")
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NumRows())

	_, err = loadInput(filepath.Join(dir, "in.parquet"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input extension")
}

func TestRegistryForClass(t *testing.T) {
	city, err := registryForClass("city")
	require.NoError(t, err)
	assert.Equal(t, 13, city.Len())

	program, err := registryForClass("program")
	require.NoError(t, err)
	assert.Equal(t, 13, program.Len())

	_, err = registryForClass("neighborhood")
	require.Error(t, err)
}

func TestLoadRegistries_FlagPathWins(t *testing.T) {
	cfg = testConfig()
	resetPanelFlags()

	dir := t.TempDir()
	path := filepath.Join(dir, "city.yaml")
	content := `centers:
  - name: Medellín
    lat: 6.2527
    lon: -75.5628
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	panelCityRegistry = path

	city, program, err := loadRegistries()
	require.NoError(t, err)
	assert.Equal(t, 1, city.Len())
	assert.Equal(t, 13, program.Len())
}
