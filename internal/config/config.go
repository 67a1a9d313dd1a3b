package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "skirmish"

// EnvPrefix prefixes environment overrides, e.g. SKIRMISH_SIM_SEED.
const EnvPrefix = "SKIRMISH"

// WindowConfig holds the windowed host settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// SimConfig holds round initialization settings.
type SimConfig struct {
	Seed           int64   `mapstructure:"seed"`
	Combatants     int     `mapstructure:"combatants"`
	SolidDensity   float64 `mapstructure:"solidDensity"`
	RoundOverTicks int     `mapstructure:"roundOverTicks"`
}

// ReportConfig holds the headless runner defaults.
type ReportConfig struct {
	Runs  int `mapstructure:"runs"`
	Ticks int `mapstructure:"ticks"`
}

// Config is the full typed configuration.
type Config struct {
	LogLevel string       `mapstructure:"logLevel"`
	Window   WindowConfig `mapstructure:"window"`
	Sim      SimConfig    `mapstructure:"sim"`
	Report   ReportConfig `mapstructure:"report"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1600)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.title", "Skirmish")

	def := sim.DefaultConfig()
	v.SetDefault("sim.seed", int64(0))
	v.SetDefault("sim.combatants", def.Combatants)
	v.SetDefault("sim.solidDensity", def.SolidDensity)
	v.SetDefault("sim.roundOverTicks", def.RoundOverTicks)

	v.SetDefault("report.runs", 8)
	v.SetDefault("report.ticks", 3000)
}

// Load reads skirmish.yaml from configDir if present, applies SKIRMISH_*
// environment overrides and returns the typed result. A missing file is not
// an error; an unreadable or malformed one is. An empty configDir skips the
// file lookup.
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the sim cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Sim.Combatants < 0:
		return fmt.Errorf("invalid combatant count %d", c.Sim.Combatants)
	case c.Sim.SolidDensity < 0 || c.Sim.SolidDensity > 1:
		return fmt.Errorf("solidDensity %.3f out of [0,1]", c.Sim.SolidDensity)
	case c.Sim.RoundOverTicks <= 0:
		return fmt.Errorf("invalid roundOverTicks %d", c.Sim.RoundOverTicks)
	}
	return nil
}

// SimConfig converts the sim section to the core's config type.
func (c Config) SimConfig() sim.Config {
	return sim.Config{
		Seed:           c.Sim.Seed,
		Combatants:     c.Sim.Combatants,
		SolidDensity:   c.Sim.SolidDensity,
		RoundOverTicks: c.Sim.RoundOverTicks,
	}
}
