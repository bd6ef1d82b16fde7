// Package cable models the cost of carrying signals through cryogenic
// cabling: conductive heat leak into the cold stage, per-line amplifiers
// and the drive energy needed to overcome line loss.
package cable

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"

	"github.com/ja7ad/superloop/pkg/estimator"
	"github.com/ja7ad/superloop/pkg/util"
)

var (
	// ErrUnsupportedCable indicates a cable type missing from the cable table.
	ErrUnsupportedCable = errors.New("cable: unsupported cable type")

	// ErrUnsupportedAmplifier indicates an amplifier type missing from the amplifier table.
	ErrUnsupportedAmplifier = errors.New("cable: unsupported amplifier type")

	// ErrBadParameter indicates a non-positive line count, length or cycle time,
	// or a cold stage warmer than the hot stage.
	ErrBadParameter = errors.New("cable: invalid parameter")
)

const (
	// SignalVolts is the swing the receiver needs across Z0.
	SignalVolts = 2e-3
	// Z0 is the line impedance in ohms.
	Z0 = 50.0
	// DefaultLength is the cable run between stages in metres.
	DefaultLength = 0.3
)

// CableTypes returns the supported cable types, sorted.
func CableTypes() []string { return slices.Sorted(maps.Keys(cables)) }

// AmplifierTypes returns the supported amplifier types, sorted.
func AmplifierTypes() []string { return slices.Sorted(maps.Keys(amplifiers)) }

// Config holds the CryoCable parameters.
type Config struct {
	Lines              int
	CableType          string
	Amplifier          string  // default "none"
	HotTemp            float64 // K
	ColdTemp           float64 // K
	Length             float64 // m, default DefaultLength
	GlobalCycleSeconds float64
}

// CryoCable is a bundle of identical lines between two temperature stages.
type CryoCable struct {
	Config

	cable Cable
	amp   float64
}

var CryoCableInfo = estimator.Info{
	Name:     "cryo_cable",
	Accuracy: 60,
	Actions:  []estimator.Action{estimator.Read, estimator.Write, estimator.Update},
}

// New validates cfg and builds the estimator.
func New(cfg Config) (*CryoCable, error) {
	if cfg.Amplifier == "" {
		cfg.Amplifier = "none"
	}
	if cfg.Length == 0 {
		cfg.Length = DefaultLength
	}
	c, ok := cables[cfg.CableType]
	if !ok {
		return nil, fmt.Errorf("%q, must be one of %v: %w", cfg.CableType, CableTypes(), ErrUnsupportedCable)
	}
	amp, ok := amplifiers[cfg.Amplifier]
	if !ok {
		return nil, fmt.Errorf("%q, must be one of %v: %w", cfg.Amplifier, AmplifierTypes(), ErrUnsupportedAmplifier)
	}
	switch {
	case cfg.Lines <= 0:
		return nil, fmt.Errorf("lines=%d: %w", cfg.Lines, ErrBadParameter)
	case cfg.Length <= 0:
		return nil, fmt.Errorf("length=%g: %w", cfg.Length, ErrBadParameter)
	case cfg.GlobalCycleSeconds <= 0:
		return nil, fmt.Errorf("cycle=%g: %w", cfg.GlobalCycleSeconds, ErrBadParameter)
	case cfg.ColdTemp < 0 || cfg.ColdTemp > cfg.HotTemp:
		return nil, fmt.Errorf("hot=%gK cold=%gK: %w", cfg.HotTemp, cfg.ColdTemp, ErrBadParameter)
	}

	cc := &CryoCable{Config: cfg, cable: c, amp: amp}
	slog.Debug("cryo cable initialized",
		"type", cfg.CableType, "lines", cfg.Lines,
		"heat_w_per_line", cc.HeatLoad(), "loss_db", cc.Loss())
	return cc, nil
}

func (c *CryoCable) Info() estimator.Info { return CryoCableInfo }

// Frequency returns the bit rate in Hz.
func (c *CryoCable) Frequency() float64 { return 1 / c.GlobalCycleSeconds }

// Loss returns the end-to-end attenuation of one line in dB at the bit rate.
func (c *CryoCable) Loss() float64 {
	perMetre := util.Interp(attenuationGHz, c.cable.Attenuation, c.Frequency()/1e9)
	return perMetre * c.Length
}

// HeatLoad returns the conductive heat one line carries into the cold stage, in W.
func (c *CryoCable) HeatLoad() float64 {
	k := conductivity[c.cable.Material]
	hot := util.Interp(thermalTemps, k, c.HotTemp)
	cold := util.Interp(thermalTemps, k, c.ColdTemp)
	return c.cable.CrossSection / c.Length * (hot - cold)
}

// BitEnergy returns the drive energy for one bit on one line.
func (c *CryoCable) BitEnergy() float64 {
	rx := SignalVolts * SignalVolts / Z0 * c.GlobalCycleSeconds
	return rx * math.Pow(10, c.Loss()/10)
}

// Energy charges read with one bit per line; the cable is unidirectional
// so write and update cost nothing.
func (c *CryoCable) Energy(a estimator.Action) (float64, error) {
	switch a {
	case estimator.Read:
		return float64(c.Lines) * c.BitEnergy(), nil
	case estimator.Write, estimator.Update:
		return 0, nil
	}
	return 0, estimator.Unsupported(CryoCableInfo, a)
}

// Leak returns heat leak plus amplifier dissipation per cycle, in J.
func (c *CryoCable) Leak() float64 {
	return float64(c.Lines) * (c.HeatLoad() + c.amp) * c.GlobalCycleSeconds
}

func (c *CryoCable) Area() float64 { return 0 }

// Register adds the cable class to r.
func Register(r *estimator.Registry) error {
	return r.Register(CryoCableInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		var cfg Config
		var err error
		if cfg.Lines, err = attrs.Int("lines"); err != nil {
			return nil, err
		}
		if cfg.CableType, err = attrs.String("cable_type"); err != nil {
			return nil, err
		}
		if cfg.Amplifier, err = attrs.StringOr("amplifier", "none"); err != nil {
			return nil, err
		}
		if cfg.HotTemp, err = attrs.Float("hot_temp"); err != nil {
			return nil, err
		}
		if cfg.ColdTemp, err = attrs.Float("cold_temp"); err != nil {
			return nil, err
		}
		if cfg.Length, err = attrs.FloatOr("length", DefaultLength); err != nil {
			return nil, err
		}
		if cfg.GlobalCycleSeconds, err = attrs.Float("global_cycle_seconds"); err != nil {
			return nil, err
		}
		return New(cfg)
	})
}
