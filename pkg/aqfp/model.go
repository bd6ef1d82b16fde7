package aqfp

import (
	"fmt"
	"slices"
)

// CellNode is one entry of the AQFP cell library (MITLL SFQ5ee and
// projected advanced nodes). Only Area feeds the estimates today.
type CellNode struct {
	Width       float64 // m, zero when not characterised
	Height      float64 // m, zero when not characterised
	Area        float64 // m² per AQFP
	LossTangent float64 // dielectric loss tangent
}

// Cell library.
//   - v1.0: cell used in current circuit designs, https://doi.org/10.1109/TASC.2025.3540048
//   - vInf.0: transformer-limited density for SFQ5ee, 1e4 QFP/mm²
//   - vInf.1: transformer-limited density for an advanced process, 22e4 QFP/mm²
var cellNodes = map[string]CellNode{
	"v1.0": {
		Width:       20e-6,
		Height:      20e-6,
		Area:        400e-12,
		LossTangent: 1.5e-3,
	},
	"vInf.0": {
		Area:        1e-10,
		LossTangent: 1.5e-3,
	},
	"vInf.1": {
		Area:        4.5e-12,
		LossTangent: 1e-5,
	},
}

// CellNodes returns the supported cell node keys, sorted.
func CellNodes() []string {
	out := make([]string, 0, len(cellNodes))
	for k := range cellNodes {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// LookupCellNode returns the library entry for name.
func LookupCellNode(name string) (CellNode, error) {
	c, ok := cellNodes[name]
	if !ok {
		return CellNode{}, fmt.Errorf("%q, must be one of %v: %w", name, CellNodes(), ErrUnsupportedCellNode)
	}
	return c, nil
}

// Forecast selects how optimistic the layout projections are.
type Forecast string

const (
	Conservative Forecast = "conservative"
	Moderate     Forecast = "moderate"
	Aggressive   Forecast = "aggressive"
)

// Forecasts lists the recognised forecast modes.
var Forecasts = []Forecast{Conservative, Moderate, Aggressive}

// ParseForecast validates s.
func ParseForecast(s string) (Forecast, error) {
	f := Forecast(s)
	if !slices.Contains(Forecasts, f) {
		return "", fmt.Errorf("%q, must be one of %v: %w", s, Forecasts, ErrUnsupportedForecast)
	}
	return f, nil
}

// Routing returns the routing overhead multiplier applied to cell area.
func (f Forecast) Routing() float64 {
	switch f {
	case Conservative:
		return 1.3
	case Moderate:
		return 1.2
	default:
		return 1.1
	}
}

// Config holds the parameters shared by every AQFP component.
type Config struct {
	CellNode           string
	GlobalCycleSeconds float64
	ClockDerate        float64  // default 1
	Forecast           Forecast // default conservative
	PhaseCount         int      // default 4
}

func (c Config) withDefaults() Config {
	if c.ClockDerate == 0 {
		c.ClockDerate = 1
	}
	if c.Forecast == "" {
		c.Forecast = Conservative
	}
	if c.PhaseCount == 0 {
		c.PhaseCount = 4
	}
	return c
}
