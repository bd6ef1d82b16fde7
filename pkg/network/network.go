// Package network models signal links between temperature stages and
// between cold chips.
package network

import (
	"errors"
	"fmt"

	"github.com/ja7ad/superloop/pkg/estimator"
)

var (
	// ErrBadTemperature indicates a cold stage warmer than the hot stage, or a negative temperature.
	ErrBadTemperature = errors.New("network: cold temperature must be in [0, hot]")

	// ErrBadWidth indicates a non-positive data width.
	ErrBadWidth = errors.New("network: datawidth must be > 0")
)

var linkActions = []estimator.Action{estimator.Read, estimator.Write, estimator.Update}

// Link is a datawidth-bit channel between a hot and a cold stage.
type Link struct {
	Datawidth int
	HotTemp   float64 // K
	ColdTemp  float64 // K
}

func (l Link) validate() error {
	if l.Datawidth <= 0 {
		return fmt.Errorf("datawidth %d: %w", l.Datawidth, ErrBadWidth)
	}
	if l.ColdTemp < 0 || l.ColdTemp > l.HotTemp {
		return fmt.Errorf("hot=%gK cold=%gK: %w", l.HotTemp, l.ColdTemp, ErrBadTemperature)
	}
	return nil
}

// Hot2Cold drives data down into the cold stage. This is a long interconnect
// comparable to off-chip CMOS links, which are not counted, so it costs 0.
type Hot2Cold struct{ Link }

var Hot2ColdInfo = estimator.Info{
	Name:     "hot2cold_network",
	Accuracy: 70,
	Actions:  linkActions,
}

func NewHot2Cold(l Link) (*Hot2Cold, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &Hot2Cold{l}, nil
}

func (n *Hot2Cold) Info() estimator.Info { return Hot2ColdInfo }

func (n *Hot2Cold) Energy(a estimator.Action) (float64, error) {
	if !Hot2ColdInfo.Supports(a) {
		return 0, estimator.Unsupported(Hot2ColdInfo, a)
	}
	return 0, nil
}

func (n *Hot2Cold) Leak() float64 { return 0 }
func (n *Hot2Cold) Area() float64 { return 0 }

// Cold2Hot lifts data out of the cold stage. Read costs 10 fJ per bit per
// kelvin of lift, a placeholder until a measured amplifier chain exists.
// Write and update are not used by networks.
type Cold2Hot struct{ Link }

var Cold2HotInfo = estimator.Info{
	Name:     "cold2hot_network",
	Accuracy: 70,
	Actions:  linkActions,
}

// JoulesPerBitKelvin is the Cold2Hot placeholder coefficient.
const JoulesPerBitKelvin = 10e-15

func NewCold2Hot(l Link) (*Cold2Hot, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &Cold2Hot{l}, nil
}

func (n *Cold2Hot) Info() estimator.Info { return Cold2HotInfo }

func (n *Cold2Hot) Energy(a estimator.Action) (float64, error) {
	switch a {
	case estimator.Read:
		return float64(n.Datawidth) * (n.HotTemp - n.ColdTemp) * JoulesPerBitKelvin, nil
	case estimator.Write, estimator.Update:
		return 0, nil
	}
	return 0, estimator.Unsupported(Cold2HotInfo, a)
}

func (n *Cold2Hot) Leak() float64 { return 0 }
func (n *Cold2Hot) Area() float64 { return 0 }

// ColdChip2Chip is a link between two chips on the same cold stage. It
// charges a flat 1 J per access until characterised, which makes any
// mapping that uses it visibly expensive.
type ColdChip2Chip struct{}

var ColdChip2ChipInfo = estimator.Info{
	Name:     "cold_chip2chip_network",
	Accuracy: 80,
	Actions:  linkActions,
}

func (n *ColdChip2Chip) Info() estimator.Info { return ColdChip2ChipInfo }

func (n *ColdChip2Chip) Energy(a estimator.Action) (float64, error) {
	if !ColdChip2ChipInfo.Supports(a) {
		return 0, estimator.Unsupported(ColdChip2ChipInfo, a)
	}
	return 1, nil
}

func (n *ColdChip2Chip) Leak() float64 { return 0 }
func (n *ColdChip2Chip) Area() float64 { return 0 }

func linkFrom(attrs estimator.Attributes) (Link, error) {
	var l Link
	var err error
	if l.Datawidth, err = attrs.Int("datawidth"); err != nil {
		return l, err
	}
	if l.HotTemp, err = attrs.Float("hot_temp"); err != nil {
		return l, err
	}
	if l.ColdTemp, err = attrs.Float("cold_temp"); err != nil {
		return l, err
	}
	return l, nil
}

// Register adds the network classes to r.
func Register(r *estimator.Registry) error {
	if err := r.Register(Hot2ColdInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		l, err := linkFrom(attrs)
		if err != nil {
			return nil, err
		}
		return NewHot2Cold(l)
	}); err != nil {
		return err
	}
	if err := r.Register(Cold2HotInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		l, err := linkFrom(attrs)
		if err != nil {
			return nil, err
		}
		return NewCold2Hot(l)
	}); err != nil {
		return err
	}
	return r.Register(ColdChip2ChipInfo, func(estimator.Attributes) (estimator.Estimator, error) {
		return &ColdChip2Chip{}, nil
	})
}
