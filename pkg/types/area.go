package types

import (
	"fmt"
	"math"
)

// Area is a float64 wrapper representing a surface in square metres.
type Area float64

// Humanized returns a human-readable string with an automatic unit (m², mm², um², nm²).
func (a Area) Humanized() string {
	v := float64(a)
	abs := math.Abs(v)
	switch {
	case abs == 0:
		return "0 m²"
	case abs >= 1:
		return fmt.Sprintf("%.2f m²", v)
	case abs >= 1e-6:
		return fmt.Sprintf("%.2f mm²", v*1e6)
	case abs >= 1e-12:
		return fmt.Sprintf("%.2f um²", v*1e12)
	case abs >= 1e-18:
		return fmt.Sprintf("%.2f nm²", v*1e18)
	default:
		return fmt.Sprintf("%.3e m²", v)
	}
}

// MM2 returns the area in square millimetres.
func (a Area) MM2() float64 { return float64(a) * 1e6 }

// UM2 returns the area in square micrometres.
func (a Area) UM2() float64 { return float64(a) * 1e12 }
