package aqfp

import (
	"github.com/ja7ad/superloop/pkg/estimator"
)

func configFrom(attrs estimator.Attributes) (Config, error) {
	var c Config
	var err error
	if c.CellNode, err = attrs.String("cell_node"); err != nil {
		return c, err
	}
	if c.GlobalCycleSeconds, err = attrs.Float("global_cycle_seconds"); err != nil {
		return c, err
	}
	if c.ClockDerate, err = attrs.FloatOr("clock_derate", 1); err != nil {
		return c, err
	}
	f, err := attrs.StringOr("forecast", string(Conservative))
	if err != nil {
		return c, err
	}
	c.Forecast = Forecast(f)
	if c.PhaseCount, err = attrs.IntOr("phase_count", 4); err != nil {
		return c, err
	}
	return c, nil
}

// Register adds the AQFP classes to r.
func Register(r *estimator.Registry) error {
	if err := r.Register(SRLoopInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		cfg, err := configFrom(attrs)
		if err != nil {
			return nil, err
		}
		bits, err := attrs.Int("cell_bit_depth")
		if err != nil {
			return nil, err
		}
		w, err := attrs.Int("array_w")
		if err != nil {
			return nil, err
		}
		h, err := attrs.Int("array_h")
		if err != nil {
			return nil, err
		}
		return NewSRLoop(bits, w, h, cfg)
	}); err != nil {
		return err
	}

	if err := r.Register(IntAddRCSAInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		cfg, err := configFrom(attrs)
		if err != nil {
			return nil, err
		}
		depth, err := attrs.Int("depth")
		if err != nil {
			return nil, err
		}
		return NewIntAddRCSA(depth, cfg)
	}); err != nil {
		return err
	}

	return r.Register(IntMultInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		cfg, err := configFrom(attrs)
		if err != nil {
			return nil, err
		}
		depth, err := attrs.Int("depth")
		if err != nil {
			return nil, err
		}
		return NewIntMult(depth, cfg)
	})
}
