package types

import (
	"fmt"
	"math"
)

// Energy is a float64 wrapper representing an amount of energy in joules.
type Energy float64

// Humanized returns a human-readable string with an automatic SI unit (J, mJ, uJ, nJ, pJ, fJ, aJ, zJ).
func (e Energy) Humanized() string {
	v := float64(e)
	a := math.Abs(v)
	switch {
	case a == 0:
		return "0 J"
	case a >= 1:
		return fmt.Sprintf("%.2f J", v)
	case a >= 1e-3:
		return fmt.Sprintf("%.2f mJ", v*1e3)
	case a >= 1e-6:
		return fmt.Sprintf("%.2f uJ", v*1e6)
	case a >= 1e-9:
		return fmt.Sprintf("%.2f nJ", v*1e9)
	case a >= 1e-12:
		return fmt.Sprintf("%.2f pJ", v*1e12)
	case a >= 1e-15:
		return fmt.Sprintf("%.2f fJ", v*1e15)
	case a >= 1e-18:
		return fmt.Sprintf("%.2f aJ", v*1e18)
	case a >= 1e-21:
		return fmt.Sprintf("%.2f zJ", v*1e21)
	default:
		return fmt.Sprintf("%.3e J", v)
	}
}

// PJ returns the energy in picojoules.
func (e Energy) PJ() float64 { return float64(e) * 1e12 }

// FJ returns the energy in femtojoules.
func (e Energy) FJ() float64 { return float64(e) * 1e15 }

// ZJ returns the energy in zeptojoules.
func (e Energy) ZJ() float64 { return float64(e) * 1e21 }

// Power returns the average power in watts when e is dissipated over d seconds.
func (e Energy) Power(seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(e) / seconds
}
