package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iburimskiy/pattern-playground/internal/phyllotaxis"
	"github.com/iburimskiy/pattern-playground/internal/touch"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Honeycomb board
	BoardWidth  = 5
	BoardHeight = 5
	SideLength  = 10
	RotateStep  = touch.DefaultRotateStep

	// Phyllotaxis spiral
	ParticleCount  = phyllotaxis.DefaultCount
	RotationGap    = touch.DefaultRotationGap
	ToggleDuration = time.Second

	// Tap tone
	ChimeFrequency = 660
	ChimeDuration  = 80 * time.Millisecond
	ChimeGain      = 0.3
)

// Scene names accepted by the scene option.
var Scenes = []string{"honeycomb", "phyllotaxis", "rotator", "triangle"}

// ErrUnknownScene is returned by Validate for a scene name outside Scenes.
var ErrUnknownScene = errors.New("unknown scene")

// EnvPrefix prefixes environment overrides, e.g. PATTERNS_LOG_LEVEL.
const EnvPrefix = "PATTERNS"

type Config struct {
	Window      Window      `mapstructure:"window" json:"window" toml:"window" yaml:"window"`
	Scene       string      `mapstructure:"scene" json:"scene" toml:"scene" yaml:"scene"`
	Honeycomb   Honeycomb   `mapstructure:"honeycomb" json:"honeycomb" toml:"honeycomb" yaml:"honeycomb"`
	Phyllotaxis Phyllotaxis `mapstructure:"phyllotaxis" json:"phyllotaxis" toml:"phyllotaxis" yaml:"phyllotaxis"`
	Chime       Chime       `mapstructure:"chime" json:"chime" toml:"chime" yaml:"chime"`
	Log         Log         `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

type Window struct {
	Width  int    `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height int    `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	Title  string `mapstructure:"title" json:"title" toml:"title" yaml:"title"`
}

type Honeycomb struct {
	Width      int     `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height     int     `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	Side       float64 `mapstructure:"side" json:"side" toml:"side" yaml:"side"`
	RotateStep float64 `mapstructure:"rotate_step" json:"rotate_step" toml:"rotate_step" yaml:"rotate_step"`
}

type Phyllotaxis struct {
	Count       int           `mapstructure:"count" json:"count" toml:"count" yaml:"count"`
	RotationGap float64       `mapstructure:"rotation_gap" json:"rotation_gap" toml:"rotation_gap" yaml:"rotation_gap"`
	Duration    time.Duration `mapstructure:"duration" json:"duration" toml:"duration" yaml:"duration"`
}

type Chime struct {
	Enabled   bool          `mapstructure:"enabled" json:"enabled" toml:"enabled" yaml:"enabled"`
	Frequency float64       `mapstructure:"frequency" json:"frequency" toml:"frequency" yaml:"frequency"`
	Duration  time.Duration `mapstructure:"duration" json:"duration" toml:"duration" yaml:"duration"`
	Gain      float64       `mapstructure:"gain" json:"gain" toml:"gain" yaml:"gain"`
	Sample    string        `mapstructure:"sample" json:"sample" toml:"sample" yaml:"sample"`
}

type Log struct {
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	File  string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Pattern Playground - Tap to animate, 1-4/Tab: scene, O: open config, Esc/Q: quit",
		},
		Scene: Scenes[0],
		Honeycomb: Honeycomb{
			Width:      BoardWidth,
			Height:     BoardHeight,
			Side:       SideLength,
			RotateStep: RotateStep,
		},
		Phyllotaxis: Phyllotaxis{
			Count:       ParticleCount,
			RotationGap: RotationGap,
			Duration:    ToggleDuration,
		},
		Chime: Chime{
			Enabled:   true,
			Frequency: ChimeFrequency,
			Duration:  ChimeDuration,
			Gain:      ChimeGain,
		},
		Log: Log{Level: "info"},
	}
}

var flagKeys = []string{
	"scene", "window.width", "window.height", "honeycomb.width", "honeycomb.height",
	"honeycomb.side", "phyllotaxis.count", "chime.enabled", "chime.gain", "chime.sample", "log.level", "log.file",
}

func DefineFlags(cmd *cobra.Command) {
	d := Default()
	cmd.Flags().StringP("scene", "s", d.Scene, "scene to start with: "+strings.Join(Scenes, ", "))
	cmd.Flags().IntP("window.width", "", d.Window.Width, "window width in pixels")
	cmd.Flags().IntP("window.height", "", d.Window.Height, "window height in pixels")
	cmd.Flags().IntP("honeycomb.width", "", d.Honeycomb.Width, "honeycomb board width in cells")
	cmd.Flags().IntP("honeycomb.height", "", d.Honeycomb.Height, "honeycomb board height in rows")
	cmd.Flags().Float64P("honeycomb.side", "", d.Honeycomb.Side, "hexagon side length")
	cmd.Flags().IntP("phyllotaxis.count", "", d.Phyllotaxis.Count, "number of spiral particles")
	cmd.Flags().BoolP("chime.enabled", "", d.Chime.Enabled, "play a tone on accepted taps")
	cmd.Flags().Float64P("chime.gain", "", d.Chime.Gain, "tap tone volume between 0 and 1")
	cmd.Flags().StringP("chime.sample", "", d.Chime.Sample, "optional wav, mp3 or flac file played instead of the tone")
	cmd.Flags().StringP("log.level", "", d.Log.Level, "set the log level: trace, debug, info, warn, error or none")
	cmd.Flags().StringP("log.file", "", d.Log.File, "optional log file - if not specified logs go to STDOUT")
}

// Meta describes where the configuration came from.
type Meta struct {
	FileNotFound bool
	File         string
}

// Load reads the configuration: defaults, then the optional file, then
// PATTERNS_* environment variables, then flags set on cmd.
func Load(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.StringToTimeDurationHookFunc()))
	setDefaults(v, Default())

	if cmd != nil {
		for _, key := range flagKeys {
			if f := cmd.Flags().Lookup(key); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	meta := Meta{File: configFile}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if !errors.As(err, &pathErr) {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
			meta.FileNotFound = true
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, Meta{}, err
	}
	return conf, meta, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("scene", d.Scene)
	v.SetDefault("honeycomb.width", d.Honeycomb.Width)
	v.SetDefault("honeycomb.height", d.Honeycomb.Height)
	v.SetDefault("honeycomb.side", d.Honeycomb.Side)
	v.SetDefault("honeycomb.rotate_step", d.Honeycomb.RotateStep)
	v.SetDefault("phyllotaxis.count", d.Phyllotaxis.Count)
	v.SetDefault("phyllotaxis.rotation_gap", d.Phyllotaxis.RotationGap)
	v.SetDefault("phyllotaxis.duration", d.Phyllotaxis.Duration)
	v.SetDefault("chime.enabled", d.Chime.Enabled)
	v.SetDefault("chime.frequency", d.Chime.Frequency)
	v.SetDefault("chime.duration", d.Chime.Duration)
	v.SetDefault("chime.gain", d.Chime.Gain)
	v.SetDefault("chime.sample", d.Chime.Sample)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Validate checks the values the window and scenes cannot work around.
// Bad board and particle values are left alone: the layouts render them
// as empty scenes.
func (c Config) Validate() error {
	if !slices.Contains(Scenes, c.Scene) {
		return fmt.Errorf("%w: %q", ErrUnknownScene, c.Scene)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Chime.Gain <= 0 || c.Chime.Gain > 1 {
		return fmt.Errorf("chime gain must be in (0, 1], got %g", c.Chime.Gain)
	}
	return nil
}

// SceneIndex returns the position of the configured scene in Scenes.
func (c Config) SceneIndex() int {
	return slices.Index(Scenes, c.Scene)
}
