package config

import "sort"

var Presets = map[string]map[string]*Config{
	"fixed_point": {
		"babylonian": {
			Method: "fixed_point", Function: "babylonian", X0: 1.0,
			Tolerance: 1e-4, MaxIter: 20, Scale: 100,
		},
		"cosine": {
			Method: "fixed_point", Function: "cos", X0: 1.0,
			Tolerance: 1e-8, MaxIter: 100, Scale: 150,
		},
	},
	"newton": {
		"sqrt2": {
			Method: "newton", Function: "x^2-2", X0: 1.5,
			Tolerance: 1e-4, MaxIter: 10, Scale: 30,
		},
		"far": {
			Method: "newton", Function: "x^2-2", X0: 8.0,
			Tolerance: 1e-10, MaxIter: 30, Scale: 30,
		},
		"stationary": {
			Method: "newton", Function: "x^2-2", X0: 0.0,
			Tolerance: 1e-4, MaxIter: 10, Scale: 30,
		},
	},
	"secant": {
		"sqrt2": {
			Method: "secant", Function: "x^2-2", X0: 1.0, X1: 2.0,
			Tolerance: 1e-4, MaxIter: 20, Scale: 80,
		},
		"cubic": {
			Method: "secant", Function: "cubic", X0: -1.0, X1: 0.0,
			Tolerance: 1e-8, MaxIter: 50, Scale: 80,
		},
	},
	"bisection": {
		"parabola": {
			Method: "bisection", Function: "-x^2+2", A: -2, B: 1,
			Tolerance: 1e-3, MaxIter: 100, Scale: 50,
		},
		"positive": {
			Method: "bisection", Function: "-x^2+2", A: 0, B: 2,
			Tolerance: 1e-6, MaxIter: 100, Scale: 50,
		},
	},
	"rect_left": {
		"tan": {
			Method: "rect_left", Function: "tan", A: 0, B: 1, Segments: 10,
			DomainPolicy: "skip", Scale: 150,
		},
	},
	"rect_right": {
		"tan": {
			Method: "rect_right", Function: "tan", A: 0, B: 1, Segments: 10,
			DomainPolicy: "skip", Scale: 150,
		},
	},
	"trapezoid": {
		"tan": {
			Method: "trapezoid", Function: "tan", A: 0, B: 1, Segments: 10,
			DomainPolicy: "skip", Scale: 200,
		},
		"pole": {
			Method: "trapezoid", Function: "1/x", A: -1, B: 1, Segments: 10,
			DomainPolicy: "nan", Scale: 100,
		},
	},
	"simpson": {
		"tan": {
			Method: "simpson", Function: "tan", A: 0, B: 1, Segments: 10,
			DomainPolicy: "skip", Scale: 100,
		},
		"gauss": {
			Method: "simpson", Function: "gauss", A: -2, B: 2, Segments: 20,
			DomainPolicy: "skip", Scale: 100,
		},
	},
}

// GetPreset returns a copy of the named preset with unset fields filled
// from the defaults.
func GetPreset(method, preset string) *Config {
	methodPresets, ok := Presets[method]
	if !ok {
		return nil
	}
	p, ok := methodPresets[preset]
	if !ok {
		return nil
	}
	cfg := *p
	def := DefaultConfig()
	if cfg.Tolerance == 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = def.MaxIter
	}
	if cfg.Segments == 0 {
		cfg.Segments = def.Segments
	}
	if cfg.DomainPolicy == "" {
		cfg.DomainPolicy = def.DomainPolicy
	}
	if cfg.Scale == 0 {
		cfg.Scale = def.Scale
	}
	return &cfg
}

func ListPresets(method string) []string {
	methodPresets, ok := Presets[method]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(methodPresets))
	for name := range methodPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
