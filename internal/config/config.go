// Package config loads application configuration from config.yaml and
// ZASCA_-prefixed environment variables, and wires the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Columns    ColumnsConfig  `yaml:"columns" mapstructure:"columns"`
	Panel      PanelConfig    `yaml:"panel" mapstructure:"panel"`
	Registries RegistryConfig `yaml:"registries" mapstructure:"registries"`
	Output     OutputConfig   `yaml:"output" mapstructure:"output"`
	Log        LogConfig      `yaml:"log" mapstructure:"log"`
}

// ColumnsConfig names the input columns the pipeline reads. The input
// contract requires exact matches.
type ColumnsConfig struct {
	Entity    string `yaml:"entity" mapstructure:"entity"`
	Latitude  string `yaml:"latitude" mapstructure:"latitude"`
	Longitude string `yaml:"longitude" mapstructure:"longitude"`
	Label     string `yaml:"label" mapstructure:"label"`
	Year      string `yaml:"year" mapstructure:"year"`
	Cohort    string `yaml:"cohort" mapstructure:"cohort"`
}

// PanelConfig configures the reshape, assignment, and filter stages.
type PanelConfig struct {
	Metrics        []string `yaml:"metrics" mapstructure:"metrics"`
	MaxCityKM      float64  `yaml:"max_city_km" mapstructure:"max_city_km"`
	MaxProgramKM   float64  `yaml:"max_program_km" mapstructure:"max_program_km"`
	Workers        int      `yaml:"workers" mapstructure:"workers"`
	FoldLabels     bool     `yaml:"fold_labels" mapstructure:"fold_labels"`
	BackfillCohort bool     `yaml:"backfill_cohort" mapstructure:"backfill_cohort"`
}

// RegistryConfig points at alternate center registries. Empty paths use
// the built-in registries.
type RegistryConfig struct {
	CityPath    string `yaml:"city_path" mapstructure:"city_path"`
	ProgramPath string `yaml:"program_path" mapstructure:"program_path"`
}

// OutputConfig configures the emitted artifact.
type OutputConfig struct {
	BOM bool `yaml:"bom" mapstructure:"bom"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultMetrics is the fixed set of year-varying RUES metrics in the
// reference data.
var DefaultMetrics = []string{
	"ciiu_principal",
	"cantidad_establecimientos",
	"activos_total",
	"empleados",
	"ingresos_actividad_ordinaria",
	"resultado_del_periodo",
	"cantidad_mujeres_empleadas",
	"cantidad_mujeres_en_cargos_direc",
	"codigo_tamano_empresa",
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ZASCA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("columns.entity", "up_id")
	v.SetDefault("columns.latitude", "latitude")
	v.SetDefault("columns.longitude", "longitude")
	v.SetDefault("columns.label", "centro")
	v.SetDefault("columns.year", "year")
	v.SetDefault("columns.cohort", "yearcohort")
	v.SetDefault("panel.metrics", DefaultMetrics)
	v.SetDefault("panel.max_city_km", 50.0)
	v.SetDefault("panel.max_program_km", 50.0)
	v.SetDefault("panel.workers", 1)
	v.SetDefault("panel.fold_labels", false)
	v.SetDefault("panel.backfill_cohort", false)
	v.SetDefault("output.bom", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
