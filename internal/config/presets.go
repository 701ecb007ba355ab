package config

var Presets = map[string]map[string]*Config{
	"square": {
		"box": {
			Shape: "square", Method: "fd", XMin: 0, XMax: 10, Steps: 400,
			Amplitude: 0, States: 6,
		},
		"shifted": {
			Shape: "square", Method: "fd", XMin: 0, XMax: 10, Steps: 400,
			Amplitude: 5, States: 6,
		},
	},
	"quadratic": {
		"harmonic": {
			Shape: "quadratic", Method: "fd", XMin: -8, XMax: 8, Steps: 500,
			Amplitude: 1, States: 8,
		},
		"tight": {
			Shape: "quadratic", Method: "fd", XMin: -4, XMax: 4, Steps: 500,
			Amplitude: 10, States: 8,
		},
	},
	"square-barrier": {
		"tunneling": {
			Shape: "square-barrier", Method: "fd", XMin: 0, XMax: 20, Steps: 600,
			Amplitude: 2, States: 10,
		},
		"tall": {
			Shape: "square-barrier", Method: "fd", XMin: 0, XMax: 20, Steps: 600,
			Amplitude: 50, States: 10,
		},
	},
	"coupled-quadratic": {
		"double-well": {
			Shape: "coupled-quadratic", Method: "fd", XMin: 0, XMax: 10, Steps: 500,
			Amplitude: 4, States: 6,
		},
	},
	"kronig-penney": {
		"lattice": {
			Shape: "kronig-penney", Method: "fd", XMin: 0, XMax: 40, Steps: 800,
			Amplitude: 20, States: 12,
		},
	},
	"triangle-barrier": {
		"ramp": {
			Shape: "triangle-barrier", Method: "fd", XMin: 0, XMax: 10, Steps: 400,
			Amplitude: 8, States: 6,
		},
	},
}

func GetPreset(shape, name string) *Config {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	return shapePresets[name]
}

func ListPresets(shape string) []string {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	return names
}
