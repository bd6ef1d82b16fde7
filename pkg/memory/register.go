package memory

import "github.com/ja7ad/superloop/pkg/estimator"

func arrayFrom(attrs estimator.Attributes) (Array, error) {
	var a Array
	var err error
	if a.GlobalCycleSeconds, err = attrs.Float("global_cycle_seconds"); err != nil {
		return a, err
	}
	if a.Width, err = attrs.Int("width"); err != nil {
		return a, err
	}
	if a.Depth, err = attrs.Int("depth"); err != nil {
		return a, err
	}
	return a, nil
}

// Register adds the memory classes to r.
func Register(r *estimator.Registry) error {
	ctors := []struct {
		info estimator.Info
		ctor estimator.Constructor
	}{
		{VTcellRAMInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
			a, err := arrayFrom(attrs)
			if err != nil {
				return nil, err
			}
			return NewVTcellRAM(a)
		}},
		{AQFPDlatchInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
			a, err := arrayFrom(attrs)
			if err != nil {
				return nil, err
			}
			return NewAQFPDlatch(a)
		}},
		{NMemInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
			a, err := arrayFrom(attrs)
			if err != nil {
				return nil, err
			}
			return NewNMem(a)
		}},
		{CryoDRAMInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
			a, err := arrayFrom(attrs)
			if err != nil {
				return nil, err
			}
			cell, err := attrs.StringOr("cell_type", DefaultDRAMCell)
			if err != nil {
				return nil, err
			}
			return NewCryoDRAM(cell, a)
		}},
		{CryoSRAMInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
			a, err := arrayFrom(attrs)
			if err != nil {
				return nil, err
			}
			cell, err := attrs.String("cell_type")
			if err != nil {
				return nil, err
			}
			return NewCryoSRAM(cell, a)
		}},
		{DLMPassiveInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
			cycle, err := attrs.Float("global_cycle_seconds")
			if err != nil {
				return nil, err
			}
			depth, err := attrs.Int("line_depth")
			if err != nil {
				return nil, err
			}
			count, err := attrs.Int("line_count")
			if err != nil {
				return nil, err
			}
			bin, err := attrs.FloatOr("time_bin", 0)
			if err != nil {
				return nil, err
			}
			cell, err := attrs.StringOr("cell_type", DefaultDLMCell)
			if err != nil {
				return nil, err
			}
			return NewDLMPassive(cycle, depth, count, bin, cell)
		}},
	}
	for _, c := range ctors {
		if err := r.Register(c.info, c.ctor); err != nil {
			return err
		}
	}
	return nil
}
