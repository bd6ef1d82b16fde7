// Package aqfp estimates adiabatic quantum flux parametron (AQFP) logic
// built in the MITLL SFQ5ee process.
//
// Every AQFP is clocked once per cycle whatever data it carries, so all
// dissipation is reported as leakage and action energies are zero. Components
// are assumed fully pipelined: each can read, write or compute once per cycle.
package aqfp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ja7ad/superloop/pkg/estimator"
)

// Phi0 is the magnetic flux quantum in Wb.
const Phi0 = 2.07e-15

// SwitchingEnergy returns the energy one AQFP dissipates per cycle at the
// given excitation frequency, E = 2·Φ0·Ic·(tj/tx).
//
// N. Takeuchi et al., "AQFP: A Tutorial Review", https://doi.org/10.1587/transele.2021SEP0003
// Assumes an unshunted 50 uA junction: Bc = 544, Cs = 3.5e-14 F/um², Jc = 100 uA/um².
func SwitchingEnergy(frequency float64) float64 {
	tj := math.Sqrt(2 * math.Pi * Phi0 * 3.5e-14 / (544 * 100e-6))
	tx := 1 / (4 * frequency)
	return 2 * Phi0 * 50e-6 * (tj / tx)
}

// logic is the part shared by every AQFP component: a device count scaled
// by the per-device switching energy and cell area.
type logic struct {
	info      estimator.Info
	cfg       Config
	node      CellNode
	frequency float64
	count     float64
}

func newLogic(info estimator.Info, cfg Config) (logic, error) {
	cfg = cfg.withDefaults()
	slog.Debug("aqfp component", "name", info.Name, "cell_node", cfg.CellNode)

	node, err := LookupCellNode(cfg.CellNode)
	if err != nil {
		return logic{}, err
	}
	if _, err := ParseForecast(string(cfg.Forecast)); err != nil {
		return logic{}, err
	}
	if cfg.GlobalCycleSeconds <= 0 || cfg.ClockDerate <= 0 {
		return logic{}, fmt.Errorf("cycle=%g derate=%g: %w", cfg.GlobalCycleSeconds, cfg.ClockDerate, ErrBadClock)
	}
	return logic{
		info:      info,
		cfg:       cfg,
		node:      node,
		frequency: 1 / cfg.GlobalCycleSeconds / cfg.ClockDerate,
	}, nil
}

func (l *logic) Info() estimator.Info { return l.info }

// DeviceCount returns the number of AQFPs in the component.
func (l *logic) DeviceCount() float64 { return l.count }

// Frequency returns the derated clock frequency in Hz.
func (l *logic) Frequency() float64 { return l.frequency }

// Forecast returns the forecast in effect after construction.
func (l *logic) Forecast() Forecast { return l.cfg.Forecast }

// Energy returns 0 for every declared action.
func (l *logic) Energy(a estimator.Action) (float64, error) {
	if !l.info.Supports(a) {
		return 0, estimator.Unsupported(l.info, a)
	}
	return 0, nil
}

// Leak returns the energy dissipated by all devices per global cycle.
func (l *logic) Leak() float64 {
	e := SwitchingEnergy(l.frequency)
	slog.Debug("aqfp leakage", "name", l.info.Name, "frequency_hz", l.frequency, "zj_per_device", e*1e21)
	return l.count * e / l.cfg.ClockDerate
}

// Area returns the device area including routing overhead.
func (l *logic) Area() float64 {
	routing := l.cfg.Forecast.Routing()
	slog.Debug("aqfp routing overhead", "forecast", l.cfg.Forecast, "percent", math.Round(100*(routing-1)))
	return l.count * l.node.Area * routing
}
