package main

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/innpulsa-research/zasca-cli/internal/centers"
	"github.com/innpulsa-research/zasca-cli/internal/loader"
	"github.com/innpulsa-research/zasca-cli/internal/panel"
	"github.com/innpulsa-research/zasca-cli/internal/table"
)

var (
	panelInput        string
	panelSheet        string
	panelOutput       string
	panelCityKM       float64
	panelProgramKM    float64
	panelWorkers      int
	panelFold         bool
	panelBackfill     bool
	panelDryRun       bool
	panelCityRegistry string
	panelProgRegistry string
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Panel construction commands",
}

var panelBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the filtered long panel from the geocoded wide table",
	Long: `Reads the wide RUES/ZASCA merge (CSV or XLSX), reshapes the
year-suffixed metric columns into one row per (entity, year), assigns a
city center and a program center to every observation, attaches the
distances to both, and drops rows whose assigned centers exceed the
distance thresholds.

Examples:
  # Default registries and thresholds
  zasca-cli panel build --input data_with_coords.csv --output panel.csv

  # Alternate program registry, tighter filter
  zasca-cli panel build --input merge.csv --output panel.csv \
    --program-centers centros.yaml --max-program-km 30

  # Schema check only
  zasca-cli panel build --input merge.csv --dry-run`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID))

		wide, err := loadInput(panelInput, panelSheet)
		if err != nil {
			return err
		}
		log.Info("panel: input loaded",
			zap.String("path", panelInput),
			zap.Int("rows", wide.NumRows()),
			zap.Int("columns", len(wide.Columns())),
		)

		if panelDryRun {
			log.Info("panel: dry run, schema only", zap.Strings("columns", wide.Columns()))
			return nil
		}
		if panelOutput == "" {
			return eris.New("panel: --output is required")
		}

		city, program, err := loadRegistries()
		if err != nil {
			return err
		}

		p := panel.New(buildOptions(), city, program)
		res, err := p.Run(ctx, wide)
		if err != nil {
			return eris.Wrap(err, "panel: build")
		}
		res.Diagnostics.Log(runID)

		if err := loader.WriteCSV(res.Table, panelOutput, cfg.Output.BOM); err != nil {
			return eris.Wrap(err, "panel: write output")
		}
		log.Info("panel: output written",
			zap.String("path", panelOutput),
			zap.Int("rows", res.Table.NumRows()),
		)
		return nil
	},
}

// loadInput picks the loader by file extension.
func loadInput(path, sheet string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loader.ReadXLSX(path, sheet)
	case ".csv":
		return loader.ReadCSV(path)
	default:
		return nil, eris.Errorf("panel: unsupported input extension %q", filepath.Ext(path))
	}
}

// loadRegistries resolves the two class registries: flag path, then
// config path, then built-in.
func loadRegistries() (*centers.Registry, *centers.Registry, error) {
	city := centers.DefaultCity()
	program := centers.DefaultProgram()

	cityPath := panelCityRegistry
	if cityPath == "" {
		cityPath = cfg.Registries.CityPath
	}
	if cityPath != "" {
		r, err := centers.LoadFile(centers.ClassCity, cityPath)
		if err != nil {
			return nil, nil, err
		}
		city = r
	}

	progPath := panelProgRegistry
	if progPath == "" {
		progPath = cfg.Registries.ProgramPath
	}
	if progPath != "" {
		r, err := centers.LoadFile(centers.ClassProgram, progPath)
		if err != nil {
			return nil, nil, err
		}
		program = r
	}

	return city, program, nil
}

// buildOptions merges config defaults with flag overrides.
func buildOptions() panel.Options {
	opts := panel.Options{
		EntityColumn:    cfg.Columns.Entity,
		LatitudeColumn:  cfg.Columns.Latitude,
		LongitudeColumn: cfg.Columns.Longitude,
		LabelColumn:     cfg.Columns.Label,
		YearColumn:      cfg.Columns.Year,
		CohortColumn:    cfg.Columns.Cohort,
		Metrics:         cfg.Panel.Metrics,
		MaxCityKM:       cfg.Panel.MaxCityKM,
		MaxProgramKM:    cfg.Panel.MaxProgramKM,
		Workers:         cfg.Panel.Workers,
		FoldLabels:      cfg.Panel.FoldLabels,
		BackfillCohort:  cfg.Panel.BackfillCohort,
	}
	if panelCityKM > 0 {
		opts.MaxCityKM = panelCityKM
	}
	if panelProgramKM > 0 {
		opts.MaxProgramKM = panelProgramKM
	}
	if panelWorkers > 0 {
		opts.Workers = panelWorkers
	}
	if panelFold {
		opts.FoldLabels = true
	}
	if panelBackfill {
		opts.BackfillCohort = true
	}
	return opts
}

func init() {
	panelBuildCmd.Flags().StringVar(&panelInput, "input", "", "wide input table (.csv or .xlsx)")
	panelBuildCmd.Flags().StringVar(&panelSheet, "sheet", "", "worksheet name for xlsx input (default: first sheet)")
	panelBuildCmd.Flags().StringVar(&panelOutput, "output", "", "output panel CSV path")
	panelBuildCmd.Flags().Float64Var(&panelCityKM, "max-city-km", 0, "city-center distance threshold in km (default from config)")
	panelBuildCmd.Flags().Float64Var(&panelProgramKM, "max-program-km", 0, "program-center distance threshold in km (default from config)")
	panelBuildCmd.Flags().IntVar(&panelWorkers, "workers", 0, "concurrent row resolution workers (default from config)")
	panelBuildCmd.Flags().BoolVar(&panelFold, "fold-labels", false, "accent/case-insensitive label matching")
	panelBuildCmd.Flags().BoolVar(&panelBackfill, "backfill-cohort", false, "fill empty cohorts from the assigned program center")
	panelBuildCmd.Flags().BoolVar(&panelDryRun, "dry-run", false, "load the input and print its schema, nothing else")
	panelBuildCmd.Flags().StringVar(&panelCityRegistry, "city-centers", "", "YAML file overriding the city-center registry")
	panelBuildCmd.Flags().StringVar(&panelProgRegistry, "program-centers", "", "YAML file overriding the program-center registry")
	_ = panelBuildCmd.MarkFlagRequired("input")

	panelCmd.AddCommand(panelBuildCmd)
	rootCmd.AddCommand(panelCmd)
}
