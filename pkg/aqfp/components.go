package aqfp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ja7ad/superloop/pkg/estimator"
)

// SRLoop is a set-reset loop register file.
//
// L.C. Blackburn et al., "A Compact Serial Memory Cell for Adiabatic Quantum
// Flux Parametron Register Files", https://doi.org/10.1109/TASC.2025.3540048
// Counts include layout density improvements made since publication.
type SRLoop struct {
	logic
	CellBitDepth int
	ArrayW       int
	ArrayH       int
}

var SRLoopInfo = estimator.Info{
	Name:     "aqfp_reg_sr",
	Accuracy: 80,
	Actions:  []estimator.Action{estimator.Read, estimator.Write, estimator.Update},
}

// NewSRLoop builds an arrayW x arrayH register of cellBitDepth-bit cells.
func NewSRLoop(cellBitDepth, arrayW, arrayH int, cfg Config) (*SRLoop, error) {
	if cellBitDepth <= 0 || arrayW <= 0 || arrayH <= 0 {
		return nil, fmt.Errorf("%dx%dx%d: %w", arrayW, arrayH, cellBitDepth, ErrBadGeometry)
	}
	l, err := newLogic(SRLoopInfo, cfg)
	if err != nil {
		return nil, err
	}
	s := &SRLoop{logic: l, CellBitDepth: cellBitDepth, ArrayW: arrayW, ArrayH: arrayH}
	qfpPerCell := cellBitDepth*4 + 5
	s.count = float64(arrayW * arrayH * qfpPerCell)
	slog.Debug("srloop initialized", "w", arrayW, "h", arrayH, "bits", cellBitDepth, "aqfps", s.count)
	return s, nil
}

// IntAddRCSA is a ripple carry split adder: a ripple carry adder with the
// carry separated from the sum to raise throughput.
type IntAddRCSA struct {
	logic
	Depth int
}

var IntAddRCSAInfo = estimator.Info{
	Name:     "aqfp_intadder_rcsa",
	Accuracy: 80,
	Actions:  []estimator.Action{estimator.Add},
}

// NewIntAddRCSA builds a depth-bit adder. Only the conservative forecast is
// characterised; other forecasts are downgraded.
func NewIntAddRCSA(depth int, cfg Config) (*IntAddRCSA, error) {
	if depth <= 0 || depth%4 != 0 {
		return nil, fmt.Errorf("adder depth %d: %w", depth, ErrBadDepth)
	}
	l, err := newLogic(IntAddRCSAInfo, cfg)
	if err != nil {
		return nil, err
	}
	if l.cfg.Forecast != Conservative {
		slog.Warn("only conservative forecast supported in adder, switching to conservative projections",
			"requested", l.cfg.Forecast)
		l.cfg.Forecast = Conservative
	}

	const fourBit = 183 // devices in a conservative 4-bit RCSA
	m := float64(depth) / 4
	tri := m * (m - 1) / 2

	a := &IntAddRCSA{logic: l, Depth: depth}
	a.count = m*fourBit + 128*tri + 64*tri
	slog.Debug("rcsa initialized", "depth", depth, "aqfps", a.count)
	return a, nil
}

// IntMult is an integer multiplier. The 4-bit design is an unpublished
// MITLL layout; device count grows 4x with every doubling of depth.
type IntMult struct {
	logic
	Depth int
}

var IntMultInfo = estimator.Info{
	Name:     "aqfp_intmult",
	Accuracy: 50,
	Actions:  []estimator.Action{estimator.Mult},
}

// NewIntMult builds a depth-bit multiplier.
func NewIntMult(depth int, cfg Config) (*IntMult, error) {
	if depth <= 0 || depth%4 != 0 {
		return nil, fmt.Errorf("multiplier depth %d: %w", depth, ErrBadDepth)
	}
	l, err := newLogic(IntMultInfo, cfg)
	if err != nil {
		return nil, err
	}

	const fourBit = 1052
	n := math.Log2(float64(depth) / 4)

	m := &IntMult{logic: l, Depth: depth}
	m.count = math.Pow(4, n) * fourBit
	slog.Debug("intmult initialized", "depth", depth, "aqfps", m.count)
	return m, nil
}
