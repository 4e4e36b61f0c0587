package config

var Presets = map[string]*Config{
	"classic": {
		N: 60, Steps: 120, CFL: 0.5, WaveSpeed: 1.0,
		ModeX: 2, ModeY: 3, StoreEvery: 2,
		Movie: MovieConfig{FPS: 10, PixelScale: 4, Output: "neumann.gif"},
	},
	"fundamental": {
		N: 40, Steps: 160, CFL: 0.5, WaveSpeed: 1.0,
		ModeX: 1, ModeY: 1, StoreEvery: 2,
		Movie: MovieConfig{FPS: 10, PixelScale: 6, Output: "fundamental.gif"},
	},
	"diagonal": {
		N: 60, Steps: 200, CFL: 0.5, WaveSpeed: 1.0,
		ModeX: 3, ModeY: 3, StoreEvery: 4,
		Movie: MovieConfig{FPS: 12, PixelScale: 4, Output: "diagonal.gif"},
	},
	"fine": {
		N: 120, Steps: 480, CFL: 0.5, WaveSpeed: 1.0,
		ModeX: 4, ModeY: 5, StoreEvery: 8,
		Movie: MovieConfig{FPS: 15, PixelScale: 2, Output: "fine.gif"},
	},
	"marginal": {
		N: 60, Steps: 120, CFL: 0.7, WaveSpeed: 1.0,
		ModeX: 2, ModeY: 3, StoreEvery: 2,
		Movie: MovieConfig{FPS: 10, PixelScale: 4, Output: "marginal.gif"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
