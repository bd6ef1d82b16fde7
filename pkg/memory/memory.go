// Package memory holds superconducting and cryoCMOS memory estimators.
//
// The host does not model latency: every memory is assumed optimally
// pipelined. Latency getters exist for reporting only.
package memory

import (
	"fmt"

	"github.com/ja7ad/superloop/pkg/estimator"
)

// Array is the geometry shared by the row-addressed memories.
type Array struct {
	GlobalCycleSeconds float64
	Width              int // bits per row, also the access width
	Depth              int // rows
}

func (a Array) validate() error {
	if a.GlobalCycleSeconds <= 0 {
		return fmt.Errorf("cycle=%g: %w", a.GlobalCycleSeconds, ErrBadClock)
	}
	if a.Width <= 0 || a.Depth <= 0 {
		return fmt.Errorf("%dx%d: %w", a.Width, a.Depth, ErrBadGeometry)
	}
	return nil
}

// Bits returns the array capacity.
func (a Array) Bits() int { return a.Width * a.Depth }

var storageActions = []estimator.Action{estimator.Read, estimator.Write, estimator.Update}

// placeholder answers 0 for every output. Used by memories whose model is
// not filled in yet.
type placeholder struct {
	Array
	info estimator.Info
}

func (p *placeholder) Info() estimator.Info { return p.info }

func (p *placeholder) Energy(a estimator.Action) (float64, error) {
	if !p.info.Supports(a) {
		return 0, estimator.Unsupported(p.info, a)
	}
	return 0, nil
}

func (p *placeholder) Leak() float64 { return 0 }

func (p *placeholder) Area() float64 { return 0 }

// VTcellRAM is a large array of superconducting VT cell memory.
//
// V. Semenov et al., "Very Large Scale Integration of Josephson-Junction-Based
// Superconductor Random Access Memories", https://doi.org/10.1109/TASC.2019.2904971
type VTcellRAM struct{ placeholder }

var VTcellRAMInfo = estimator.Info{
	Name:     "VTcellRAM",
	Aliases:  []string{"VTcell_RAM"},
	Accuracy: 80,
	Actions:  storageActions,
}

func NewVTcellRAM(a Array) (*VTcellRAM, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &VTcellRAM{placeholder{Array: a, info: VTcellRAMInfo}}, nil
}

// AQFPDlatch is an AQFP register file with D-latch storage cells.
//
// N. Tsuji et al., "Design and Implementation of a 16-word by 1-bit register
// file using AQFP logic", https://doi.org/10.1109/TASC.2017.2656128
type AQFPDlatch struct{ placeholder }

var AQFPDlatchInfo = estimator.Info{
	Name:     "AQFP_Dlatch",
	Accuracy: 80,
	Actions:  storageActions,
}

func NewAQFPDlatch(a Array) (*AQFPDlatch, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &AQFPDlatch{placeholder{Array: a, info: AQFPDlatchInfo}}, nil
}
