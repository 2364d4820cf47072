package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir = "../sample_images"
	DefaultDPI       = 150
	DefaultFigSize   = 12.0
	DefaultArms      = 2
	DefaultTightness = 3.0
)

// DefaultDirs are the workshop's working directories, relative to the
// notebooks folder.
var DefaultDirs = []string{"../ics", "../params", "../snapshots", "../videos"}

type Config struct {
	OutputDir string        `yaml:"output_dir" toml:"output_dir"`
	Dirs      []string      `yaml:"dirs" toml:"dirs"`
	Spiral    SpiralConfig  `yaml:"spiral" toml:"spiral"`
	Collision SizeConfig    `yaml:"collision" toml:"collision"`
	Face      SizeConfig    `yaml:"face" toml:"face"`
	Logo      SizeConfig    `yaml:"logo" toml:"logo"`
	Preview   PreviewConfig `yaml:"preview" toml:"preview"`
}

type SizeConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

type SpiralConfig struct {
	SizeConfig `yaml:",inline"`
	Arms       int     `yaml:"arms" toml:"arms"`
	Tightness  float64 `yaml:"tightness" toml:"tightness"`
}

type PreviewConfig struct {
	DPI     int     `yaml:"dpi" toml:"dpi"`
	FigSize float64 `yaml:"fig_size" toml:"fig_size"`
	Tight   bool    `yaml:"tight" toml:"tight"`
}

func DefaultConfig() *Config {
	dirs := make([]string, len(DefaultDirs))
	copy(dirs, DefaultDirs)
	return &Config{
		OutputDir: DefaultOutputDir,
		Dirs:      dirs,
		Spiral: SpiralConfig{
			SizeConfig: SizeConfig{Width: 100, Height: 100},
			Arms:       DefaultArms,
			Tightness:  DefaultTightness,
		},
		Collision: SizeConfig{Width: 120, Height: 80},
		Face:      SizeConfig{Width: 80, Height: 80},
		Logo:      SizeConfig{Width: 90, Height: 90},
		Preview: PreviewConfig{
			DPI:     DefaultDPI,
			FigSize: DefaultFigSize,
			Tight:   true,
		},
	}
}

// Load reads a yaml or toml file over the defaults. The format follows
// the file extension; anything other than .toml is parsed as yaml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(cfg)
		data = []byte(sb.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Size returns the configured raster size for a catalogue pattern name.
func (c *Config) Size(name string) (int, int) {
	switch name {
	case "spiral":
		return c.Spiral.Width, c.Spiral.Height
	case "collision":
		return c.Collision.Width, c.Collision.Height
	case "face":
		return c.Face.Width, c.Face.Height
	case "logo":
		return c.Logo.Width, c.Logo.Height
	default:
		return 0, 0
	}
}
