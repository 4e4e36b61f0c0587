package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavelab/internal/wave"
)

const (
	DefaultN          = 60
	DefaultSteps      = 120
	DefaultCFL        = 0.5
	DefaultWaveSpeed  = 1.0
	DefaultModeX      = 2
	DefaultModeY      = 3
	DefaultStoreEvery = 2
	DefaultFPS        = 10
	DefaultPixelScale = 4
)

type Config struct {
	N          int         `yaml:"n"`
	Steps      int         `yaml:"steps"`
	CFL        float64     `yaml:"cfl"`
	WaveSpeed  float64     `yaml:"wave_speed"`
	ModeX      int         `yaml:"mode_x"`
	ModeY      int         `yaml:"mode_y"`
	StoreEvery int         `yaml:"store_every"`
	Movie      MovieConfig `yaml:"movie"`
}

type MovieConfig struct {
	FPS        int    `yaml:"fps"`
	PixelScale int    `yaml:"pixel_scale"`
	Output     string `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		N:          DefaultN,
		Steps:      DefaultSteps,
		CFL:        DefaultCFL,
		WaveSpeed:  DefaultWaveSpeed,
		ModeX:      DefaultModeX,
		ModeY:      DefaultModeY,
		StoreEvery: DefaultStoreEvery,
		Movie: MovieConfig{
			FPS:        DefaultFPS,
			PixelScale: DefaultPixelScale,
			Output:     "neumann.gif",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the configuration into solver parameters. Validation
// happens in the solver, not here.
func (c *Config) Params() wave.Params {
	return wave.Params{
		N:          c.N,
		Steps:      c.Steps,
		CFL:        c.CFL,
		Speed:      c.WaveSpeed,
		Mode:       wave.Mode{X: c.ModeX, Y: c.ModeY},
		StoreEvery: c.StoreEvery,
	}
}
