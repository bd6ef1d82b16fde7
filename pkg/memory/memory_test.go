package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/superloop/pkg/estimator"
)

const cycle = 2e-10

var arr = Array{GlobalCycleSeconds: cycle, Width: 64, Depth: 1024}

// VTcellRAM and AQFP_Dlatch have no model yet; pin the zeros so a future
// model is a visible change.
func TestPlaceholders_AlwaysZero(t *testing.T) {
	vt, err := NewVTcellRAM(arr)
	require.NoError(t, err)
	dl, err := NewAQFPDlatch(arr)
	require.NoError(t, err)

	for _, e := range []estimator.Estimator{vt, dl} {
		for _, a := range storageActions {
			v, err := e.Energy(a)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v, "%s %s", e.Info().Name, a)
		}
		assert.Equal(t, 0.0, e.Leak())
		assert.Equal(t, 0.0, e.Area())
	}
	assert.Equal(t, "AQFP_Dlatch", dl.Info().Name)
	assert.Equal(t, []string{"VTcellRAM", "VTcell_RAM"}, vt.Info().Names())
}

func TestArray_Validation(t *testing.T) {
	_, err := NewNMem(Array{GlobalCycleSeconds: cycle, Width: 0, Depth: 4})
	require.ErrorIs(t, err, ErrBadGeometry)
	_, err = NewVTcellRAM(Array{Width: 4, Depth: 4})
	require.ErrorIs(t, err, ErrBadClock)
}

func TestNMem(t *testing.T) {
	n, err := NewNMem(arr)
	require.NoError(t, err)

	r, err := n.Energy(estimator.Read)
	require.NoError(t, err)
	assert.InDelta(t, 31e-15*64+185e-6*67.5*64, r, 1e-12)

	w, err := n.Energy(estimator.Write)
	require.NoError(t, err)
	assert.InDelta(t, 46e-15*64+460e-6*67.5*64, w, 1e-12)

	u, err := n.Energy(estimator.Update)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u)

	assert.Equal(t, 0.0, n.Leak())
	assert.InDelta(t, 64*1024/2.6e10, n.Area(), 1e-18)
}

func TestDLMPassive(t *testing.T) {
	for _, cell := range DLMCellTypes() {
		_, err := NewDLMPassive(cycle, 128, 16, 0, cell)
		require.NoError(t, err, cell)
	}
	_, err := NewDLMPassive(cycle, 128, 16, 0, "Al_cheap")
	require.ErrorIs(t, err, ErrUnsupportedCellType)

	d, err := NewDLMPassive(cycle, 128, 16, 0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDLMCell, d.CellType)
	assert.Equal(t, cycle, d.TimeBin)

	r, err := d.Energy(estimator.Read)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)

	w, err := d.Energy(estimator.Write)
	require.NoError(t, err)
	assert.InDelta(t, 9.57e-19*1.5*16, w, 1e-30)

	assert.InDelta(t, 6.19e-18*1.5*16, d.Leak(), 1e-30)
	assert.InDelta(t, cycle*0.007*3e8*135e-9*128*16, d.Area(), 1e-18)

	_, err = d.Energy(estimator.Add)
	require.ErrorIs(t, err, estimator.ErrUnsupportedAction)
}

func TestDLMPassive_FasterTimeBin(t *testing.T) {
	d, err := NewDLMPassive(cycle, 128, 16, cycle/4, "Nb_mature")
	require.NoError(t, err)
	// four recirculations per global cycle
	assert.InDelta(t, 4*6.19e-18*1.5*16, d.Leak(), 1e-30)
	assert.InDelta(t, cycle/4*0.298*3e8*500e-9*128*16, d.Area(), 1e-18)
}

func TestCryoDRAM(t *testing.T) {
	want := map[string][3]float64{
		"2T_NW-PR": {346, 153.5, 22},
		"3T_NW-PR": {410, 156.5, 23.5},
		"3T_PW-PR": {262, 212, 22.2},
	}
	for cell, e := range want {
		d, err := NewCryoDRAM(cell, arr)
		require.NoError(t, err, cell)
		for i, a := range storageActions {
			v, err := d.Energy(a)
			require.NoError(t, err)
			assert.InEpsilon(t, e[i]*1e-15*64, v, 1e-12, "%s %s", cell, a)
		}
		assert.Equal(t, 0.0, d.Leak())
	}

	d, err := NewCryoDRAM("", arr)
	require.NoError(t, err)
	assert.Equal(t, DefaultDRAMCell, d.CellType)
	assert.InEpsilon(t, 0.254e-12*64*1024, d.Area(), 1e-12)
	assert.InDelta(t, 2.37e-9, d.Latency(), 1e-18)

	_, err = NewCryoDRAM("1T1C", arr)
	require.ErrorIs(t, err, ErrUnsupportedCellType)
}

func TestCryoSRAM(t *testing.T) {
	s, err := NewCryoSRAM("6T_static", arr)
	require.NoError(t, err)

	r, err := s.Energy(estimator.Read)
	require.NoError(t, err)
	assert.InEpsilon(t, 618e-15*64, r, 1e-12)

	w, err := s.Energy(estimator.Write)
	require.NoError(t, err)
	assert.InEpsilon(t, 473e-15*64, w, 1e-12)

	_, err = s.Energy(estimator.Update)
	require.ErrorIs(t, err, estimator.ErrUnsupportedAction)

	assert.InEpsilon(t, 0.435e-12*64*1024, s.Area(), 1e-12)
	assert.InDelta(t, 1.18e-9, s.Latency(), 1e-18)

	_, err = NewCryoSRAM("", arr)
	require.ErrorIs(t, err, ErrUnsupportedCellType)
}

func TestRegister(t *testing.T) {
	r := estimator.NewRegistry()
	require.NoError(t, Register(r))

	base := estimator.Attributes{"global_cycle_seconds": cycle, "width": 32, "depth": 32}
	for _, class := range []string{"VTcellRAM", "VTcell_RAM", "AQFP_Dlatch", "nMem", "cryo_DRAM", "cryoDRAM"} {
		_, err := r.New(class, base)
		require.NoError(t, err, class)
	}

	sram := base.Clone()
	sram["cell_type"] = "6T_static"
	_, err := r.New("cryoSRAM", sram)
	require.NoError(t, err)

	_, err = r.New("cryo_SRAM", base)
	require.ErrorIs(t, err, estimator.ErrMissingAttribute)

	est, err := r.New("dlm_ptl", estimator.Attributes{
		"global_cycle_seconds": cycle,
		"line_depth":           64,
		"line_count":           8,
		"cell_type":            "Nb_aggressive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nb_aggressive", est.(*DLMPassive).CellType)
}
