package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/superloop/pkg/estimator"
)

func TestDefault_Classes(t *testing.T) {
	r := Default()
	var names []string
	for _, info := range r.Classes() {
		names = append(names, info.Name)
		assert.GreaterOrEqual(t, info.Accuracy, 0)
		assert.LessOrEqual(t, info.Accuracy, 100)
		assert.NotEmpty(t, info.Actions, info.Name)
	}
	assert.ElementsMatch(t, []string{
		"aqfp_reg_sr", "aqfp_intadder_rcsa", "aqfp_intmult",
		"rql_intmult",
		"VTcellRAM", "AQFP_Dlatch", "nMem", "cryo_DRAM", "cryo_SRAM", "dlm_ptl",
		"hot2cold_network", "cold2hot_network", "cold_chip2chip_network",
		"cryo_cable",
	}, names)

	for _, alias := range []string{"VTcell_RAM", "cryoDRAM", "cryoSRAM"} {
		_, ok := r.Lookup(alias)
		assert.True(t, ok, alias)
	}
}

func TestDefault_UnknownClass(t *testing.T) {
	_, err := Default().New("josephson_laser", nil)
	require.ErrorIs(t, err, estimator.ErrUnknownClass)
}

func TestQuery_Deterministic(t *testing.T) {
	r := Default()
	attrs := estimator.Attributes{
		"cell_node":            "v1.0",
		"global_cycle_seconds": 2e-10,
		"depth":                16,
	}
	a, err := r.New("aqfp_intmult", attrs)
	require.NoError(t, err)
	b, err := r.New("aqfp_intmult", attrs)
	require.NoError(t, err)

	ra, err := estimator.Query(a)
	require.NoError(t, err)
	rb, err := estimator.Query(b)
	require.NoError(t, err)
	assert.Equal(t, ra.Leak, rb.Leak)
	assert.Equal(t, ra.Area, rb.Area)
	assert.Equal(t, ra.Actions, rb.Actions)
}
