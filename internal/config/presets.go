package config

import "sort"

// Presets are named starting points layered over the defaults.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"small": {
		Rows: 10, Cols: 15, Spacing: 20, OriginX: 250, OriginY: 50,
		Gravity: 980, Damping: 0.99, Dt: 0.016, Iterations: 5,
		PickRadius: 20, Width: 800, Height: 600,
	},
	"dense": {
		Rows: 30, Cols: 45, Spacing: 12, OriginX: 130, OriginY: 40,
		Gravity: 980, Damping: 0.99, Dt: 0.016, Iterations: 8,
		PickRadius: 14, Width: 800, Height: 600,
	},
	"loose": {
		Rows: 20, Cols: 30, Spacing: 20, OriginX: 100, OriginY: 50,
		Gravity: 980, Damping: 0.99, Dt: 0.016, Iterations: 1,
		PickRadius: 20, Width: 800, Height: 600,
	},
	"floaty": {
		Rows: 20, Cols: 30, Spacing: 20, OriginX: 100, OriginY: 50,
		Gravity: 200, Damping: 0.995, Dt: 0.016, Iterations: 5,
		PickRadius: 20, Width: 800, Height: 600,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
