package memory

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ja7ad/superloop/pkg/estimator"
)

const speedOfLight = 3e8 // m/s

// DLMCell is the propagation and layout data of one delay line technology.
type DLMCell struct {
	LightFraction float64 // pulse speed as a fraction of c
	PitchNM       float64 // line pitch
}

var dlmCells = map[string]DLMCell{
	"Nb_mature":         {0.298, 500},
	"Nb_aggressive":     {0.296, 240},
	"MoN_ms_mature":     {0.047, 500},
	"MoN_ms_aggressive": {0.034, 240},
	"MoN_sl_aggressive": {0.029, 240},
	"NbTiN_sl_academic": {0.011, 220},
	"NbN_academic":      {0.007, 135},
}

// DefaultDLMCell is used when no cell type is given.
const DefaultDLMCell = "NbN_academic"

// DLMCellTypes returns the supported delay line technologies, sorted.
func DLMCellTypes() []string {
	return slices.Sorted(maps.Keys(dlmCells))
}

// DLMPassive is a delay line memory built from passive transmission lines.
// Capacity comes from many delay line loops in parallel.
//
// J. Volk et al., "Addressable superconductor integrated circuit memory from
// delay lines", https://doi.org/10.1038/s41598-023-43205-8
//
// A time bin different from the global cycle needs clock domain crossing
// logic, which is not counted.
type DLMPassive struct {
	GlobalCycleSeconds float64
	LineDepth          int     // bits stored per loop
	LineCount          int     // loops
	TimeBin            float64 // seconds per bit
	CellType           string

	cell         DLMCell
	biasOverhead float64
}

var DLMPassiveInfo = estimator.Info{
	Name:     "dlm_ptl",
	Accuracy: 80,
	Actions:  storageActions,
}

// NewDLMPassive builds the memory. timeBin <= 0 selects the global cycle;
// an empty cellType selects DefaultDLMCell.
func NewDLMPassive(globalCycleSeconds float64, lineDepth, lineCount int, timeBin float64, cellType string) (*DLMPassive, error) {
	if cellType == "" {
		cellType = DefaultDLMCell
	}
	cell, ok := dlmCells[cellType]
	if !ok {
		return nil, fmt.Errorf("%q not in %v: %w", cellType, DLMCellTypes(), ErrUnsupportedCellType)
	}
	if globalCycleSeconds <= 0 {
		return nil, fmt.Errorf("cycle=%g: %w", globalCycleSeconds, ErrBadClock)
	}
	if lineDepth <= 0 || lineCount <= 0 {
		return nil, fmt.Errorf("%d lines of %d bits: %w", lineCount, lineDepth, ErrBadGeometry)
	}
	if timeBin <= 0 {
		timeBin = globalCycleSeconds
	}
	return &DLMPassive{
		GlobalCycleSeconds: globalCycleSeconds,
		LineDepth:          lineDepth,
		LineCount:          lineCount,
		TimeBin:            timeBin,
		CellType:           cellType,
		cell:               cell,
		biasOverhead:       1.5, // 50% loss biasing SFQ circuits, pessimistic
	}, nil
}

func (d *DLMPassive) Info() estimator.Info { return DLMPassiveInfo }

func (d *DLMPassive) Energy(a estimator.Action) (float64, error) {
	switch a {
	case estimator.Read:
		// output is available whether queried or not; addressing logic not counted
		return 0, nil
	case estimator.Write:
		// B0 and B3 of the extra DRO switch: 277 uA + 188 uA
		return 9.57e-19 * d.biasOverhead * float64(d.LineCount), nil
	case estimator.Update:
		return 0, nil
	}
	return 0, estimator.Unsupported(DLMPassiveInfo, a)
}

// Leak returns the per-cycle cost of recirculating every pulse: first DRO2R
// 1.478 aJ, merge 1.319 aJ, second DRO2R averaged over data, plus rank
// matching and receiving JTLs.
func (d *DLMPassive) Leak() float64 {
	const pulseProp = 6.19e-18
	overclock := d.GlobalCycleSeconds / d.TimeBin
	return pulseProp * d.biasOverhead * float64(d.LineCount) * overclock
}

func (d *DLMPassive) Area() float64 {
	pulseSpeed := d.cell.LightFraction * speedOfLight
	pitch := d.cell.PitchNM * 1e-9
	return d.TimeBin * pulseSpeed * pitch * float64(d.LineDepth) * float64(d.LineCount)
}
