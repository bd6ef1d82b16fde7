package memory

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ja7ad/superloop/pkg/estimator"
)

// CMOSCell is one row of Table II in
//
//	R. Damsteegt et al., "A Benchmark of Cryo-CMOS Embedded SRAM/DRAMs in
//	40-nm CMOS", https://doi.org/10.1109/JSSC.2024.3385696
//
// Energies are per bit at 4.2 K with LVT transistors, averaged over the
// reported range, measured on a 32x32 array including drivers and addressing.
type CMOSCell struct {
	ReadFJ    float64
	WriteFJ   float64
	RefreshFJ float64 // zero for static cells
	AreaUM2   float64 // per bit
	LatencyNS float64
}

var dramCells = map[string]CMOSCell{
	"2T_NW-PR": {ReadFJ: 346, WriteFJ: 153.5, RefreshFJ: 22, AreaUM2: 0.084, LatencyNS: 2.21},
	"3T_NW-PR": {ReadFJ: 410, WriteFJ: 156.5, RefreshFJ: 23.5, AreaUM2: 0.242, LatencyNS: 1.22},
	"3T_PW-PR": {ReadFJ: 262, WriteFJ: 212, RefreshFJ: 22.2, AreaUM2: 0.254, LatencyNS: 2.37},
}

var sramCells = map[string]CMOSCell{
	"6T_static": {ReadFJ: 618, WriteFJ: 473, AreaUM2: 0.435, LatencyNS: 1.18},
}

// DefaultDRAMCell is used when no DRAM cell type is given.
const DefaultDRAMCell = "3T_PW-PR"

// DRAMCellTypes returns the supported DRAM cells, sorted.
func DRAMCellTypes() []string { return slices.Sorted(maps.Keys(dramCells)) }

// SRAMCellTypes returns the supported SRAM cells, sorted.
func SRAMCellTypes() []string { return slices.Sorted(maps.Keys(sramCells)) }

type cryoCMOS struct {
	Array
	CellType string

	info estimator.Info
	cell CMOSCell
}

func newCryoCMOS(info estimator.Info, table map[string]CMOSCell, cellType string, a Array) (cryoCMOS, error) {
	cell, ok := table[cellType]
	if !ok {
		return cryoCMOS{}, fmt.Errorf("%q not in %v: %w", cellType, slices.Sorted(maps.Keys(table)), ErrUnsupportedCellType)
	}
	if err := a.validate(); err != nil {
		return cryoCMOS{}, err
	}
	return cryoCMOS{Array: a, CellType: cellType, info: info, cell: cell}, nil
}

func (c *cryoCMOS) Info() estimator.Info { return c.info }

func (c *cryoCMOS) Energy(a estimator.Action) (float64, error) {
	w := float64(c.Width)
	switch a {
	case estimator.Read:
		return c.cell.ReadFJ * 1e-15 * w, nil
	case estimator.Write:
		return c.cell.WriteFJ * 1e-15 * w, nil
	case estimator.Update:
		if c.info.Supports(estimator.Update) {
			return c.cell.RefreshFJ * 1e-15 * w, nil
		}
	}
	return 0, estimator.Unsupported(c.info, a)
}

// Leak is negligible at 4.2 K.
func (c *cryoCMOS) Leak() float64 { return 0 }

func (c *cryoCMOS) Area() float64 {
	return c.cell.AreaUM2 * 1e-12 * float64(c.Bits())
}

// Latency returns the access latency in seconds.
func (c *cryoCMOS) Latency() float64 { return c.cell.LatencyNS * 1e-9 }

// CryoDRAM is 40 nm cryoCMOS embedded DRAM. Update is a refresh.
type CryoDRAM struct{ cryoCMOS }

var CryoDRAMInfo = estimator.Info{
	Name:     "cryo_DRAM",
	Aliases:  []string{"cryoDRAM"},
	Accuracy: 80,
	Actions:  storageActions,
}

// NewCryoDRAM builds the array; an empty cellType selects DefaultDRAMCell.
func NewCryoDRAM(cellType string, a Array) (*CryoDRAM, error) {
	if cellType == "" {
		cellType = DefaultDRAMCell
	}
	c, err := newCryoCMOS(CryoDRAMInfo, dramCells, cellType, a)
	if err != nil {
		return nil, err
	}
	return &CryoDRAM{c}, nil
}

// CryoSRAM is 40 nm cryoCMOS embedded SRAM. Static cells have no refresh,
// so update is not modelled.
type CryoSRAM struct{ cryoCMOS }

var CryoSRAMInfo = estimator.Info{
	Name:     "cryo_SRAM",
	Aliases:  []string{"cryoSRAM"},
	Accuracy: 80,
	Actions:  []estimator.Action{estimator.Read, estimator.Write},
}

func NewCryoSRAM(cellType string, a Array) (*CryoSRAM, error) {
	c, err := newCryoCMOS(CryoSRAMInfo, sramCells, cellType, a)
	if err != nil {
		return nil, err
	}
	return &CryoSRAM{c}, nil
}
