// Package cooling charges cryocooler inefficiency to components that run
// below room temperature.
package cooling

import (
	"log/slog"
	"slices"

	"github.com/ja7ad/superloop/pkg/archspec"
	"github.com/ja7ad/superloop/pkg/result"
)

// Model applies cooling overhead factors.
type Model struct {
	cfg *Config
}

// New creates a model with the given config.
// Fields > 0 in cfg override defaults; zero or negative fields keep them.
func New(cfg *Config) *Model {
	base := _defaultConfig()
	if cfg == nil {
		return &Model{cfg: base}
	}

	merged := *base
	if cfg.SecondStageMaxK > 0 {
		merged.SecondStageMaxK = cfg.SecondStageMaxK
	}
	if cfg.FirstStageMaxK > 0 {
		merged.FirstStageMaxK = cfg.FirstStageMaxK
	}
	if cfg.RoomMinK > 0 {
		merged.RoomMinK = cfg.RoomMinK
	}
	if cfg.RoomMaxK > 0 {
		merged.RoomMaxK = cfg.RoomMaxK
	}
	if cfg.SecondStageFactor > 0 {
		merged.SecondStageFactor = cfg.SecondStageFactor
	}
	if cfg.FirstStageFactor > 0 {
		merged.FirstStageFactor = cfg.FirstStageFactor
	}
	if cfg.FirstStageBudgetW > 0 {
		merged.FirstStageBudgetW = cfg.FirstStageBudgetW
	}

	// bands must not overlap
	if merged.FirstStageMaxK < merged.SecondStageMaxK {
		merged.FirstStageMaxK = merged.SecondStageMaxK
	}
	return &Model{cfg: &merged}
}

// Config returns a copy of the effective configuration.
func (m *Model) Config() Config { return *m.cfg }

// Stage classifies temperature t in kelvin. Band edges are exclusive and
// fall into Unbanded.
func (m *Model) Stage(t float64) Stage {
	c := m.cfg
	switch {
	case t > c.RoomMinK && t < c.RoomMaxK:
		return Room
	case t > c.SecondStageMaxK && t < c.FirstStageMaxK:
		return FirstStage
	case t < c.SecondStageMaxK:
		return SecondStage
	default:
		return Unbanded
	}
}

// Apply multiplies the energy of every component in temps by its stage
// factor, in place, and recomputes res.Energy.
//
//   - second stage: always SecondStageFactor
//   - first stage: FirstStageFactor when a second stage exists; otherwise
//     only once the component's average power reaches FirstStageBudgetW
//   - room and unbanded: unchanged
//
// Components missing from temps or from res are skipped.
func (m *Model) Apply(res *result.Result, temps map[string]float64) Overhead {
	o := Overhead{
		Factors: make(map[string]float64),
		Stages:  make(map[string]Stage),
	}
	for _, t := range temps {
		if t < m.cfg.SecondStageMaxK {
			o.SecondStage = true
			break
		}
	}

	names := make([]string, 0, len(temps))
	for k := range temps {
		names = append(names, k)
	}
	slices.Sort(names)

	for _, k := range names {
		e, ok := res.PerComponentEnergy[k]
		if !ok {
			continue
		}
		stage := m.Stage(temps[k])
		o.Stages[k] = stage

		factor := 1.0
		switch stage {
		case SecondStage:
			factor = m.cfg.SecondStageFactor
			slog.Info("added second stage cooling overhead", "component", k, "factor", factor)
		case FirstStage:
			if !o.SecondStage {
				power := res.Power(k)
				if power < m.cfg.FirstStageBudgetW {
					continue
				}
				slog.Info("first stage power exceeds budget", "component", k, "watts", power,
					"budget_w", m.cfg.FirstStageBudgetW)
			}
			factor = m.cfg.FirstStageFactor
			slog.Info("added first stage cooling overhead", "component", k, "factor", factor)
		default:
			continue
		}

		res.PerComponentEnergy[k] = e * factor
		o.Factors[k] = factor
		o.AddedJ += e*factor - e
	}

	res.RecomputeEnergy()
	return o
}

// AddOverhead reads component temperatures from spec and applies the
// default model to res.
func AddOverhead(res *result.Result, spec *archspec.Specification) Overhead {
	return New(nil).ApplySpec(res, spec)
}

// ApplySpec reads component temperatures from spec and applies m to res.
func (m *Model) ApplySpec(res *result.Result, spec *archspec.Specification) Overhead {
	return m.Apply(res, spec.Temperatures(res.Components()))
}
