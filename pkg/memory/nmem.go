package memory

import "github.com/ja7ad/superloop/pkg/estimator"

// NMem is a superconducting nanowire memory of hTron cells with row-column
// addressing, scaled as one width x depth block reading a full row per cycle.
//
// O. Medeiros et al., "Scalable Superconducting Nanowire Memory Array with
// Row-Column Addressing", https://doi.org/10.48550/arXiv.2503.22897
type NMem struct {
	Array
}

var NMemInfo = estimator.Info{
	Name:     "nMem",
	Accuracy: 80,
	Actions:  storageActions,
}

const (
	nmemEnableOhmPerCell = 67.5   // 270 Ohm over a 4-cell row
	nmemDensity          = 2.6e10 // bits/m², 2.6 Mbit/cm² unoptimised
)

func NewNMem(a Array) (*NMem, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &NMem{Array: a}, nil
}

func (n *NMem) Info() estimator.Info { return NMemInfo }

func (n *NMem) Energy(a estimator.Action) (float64, error) {
	w := float64(n.Width)
	switch a {
	case estimator.Read:
		// 31 fJ pulse per bit; enable line at 185 uA average bias
		return 31e-15*w + 185e-6*nmemEnableOhmPerCell*w, nil
	case estimator.Write:
		// 46 fJ pulse per bit; enable line at 460 uA average bias
		return 46e-15*w + 460e-6*nmemEnableOhmPerCell*w, nil
	case estimator.Update:
		return 0, nil
	}
	return 0, estimator.Unsupported(NMemInfo, a)
}

func (n *NMem) Leak() float64 { return 0 }

func (n *NMem) Area() float64 {
	return float64(n.Bits()) / nmemDensity
}
