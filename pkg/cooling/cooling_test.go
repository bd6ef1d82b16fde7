package cooling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/superloop/pkg/archspec"
	"github.com/ja7ad/superloop/pkg/result"
)

// one second of runtime so energy in J reads as average power in W
func newResult(energies map[string]float64) *result.Result {
	r := result.New(1, 1)
	for k, v := range energies {
		r.PerComponentEnergy[k] = v
	}
	r.Recompute()
	return r
}

func TestApply_SecondStage(t *testing.T) {
	m := New(nil)
	r := newResult(map[string]float64{"qubit_ctrl": 2.0})
	o := m.Apply(r, map[string]float64{"qubit_ctrl": 5})

	assert.InDelta(t, 2000.0, r.PerComponentEnergy["qubit_ctrl"], 1e-9)
	assert.Equal(t, 1000.0, o.Factors["qubit_ctrl"])
	assert.Equal(t, SecondStage, o.Stages["qubit_ctrl"])
	assert.True(t, o.SecondStage)
	assert.InDelta(t, 1998.0, o.AddedJ, 1e-9)
	assert.InDelta(t, 2000.0, r.Energy, 1e-9)
}

func TestApply_RoomTemperatureUnchanged(t *testing.T) {
	m := New(nil)
	r := newResult(map[string]float64{"host": 3.0, "dram": 1.0})
	o := m.Apply(r, map[string]float64{"host": 300, "dram": 250})

	assert.Equal(t, 3.0, r.PerComponentEnergy["host"])
	assert.Equal(t, 1.0, r.PerComponentEnergy["dram"])
	assert.Empty(t, o.Factors)
	assert.Equal(t, Unbanded, o.Stages["host"])
	assert.Equal(t, Room, o.Stages["dram"])
	assert.InDelta(t, 4.0, r.Energy, 1e-12)
}

func TestApply_FirstStageWithoutSecondStage(t *testing.T) {
	m := New(nil)
	cases := []struct {
		name   string
		energy float64 // J over 1 s, i.e. W
		want   float64
	}{
		{"below_budget", 10, 10},
		{"just_below", 79.9, 79.9},
		{"at_budget", 80, 80 * 93.75},
		{"above_budget", 120, 120 * 93.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newResult(map[string]float64{"buf": tc.energy})
			o := m.Apply(r, map[string]float64{"buf": 50})
			assert.False(t, o.SecondStage)
			assert.InDelta(t, tc.want, r.PerComponentEnergy["buf"], 1e-9)
			assert.InDelta(t, tc.want, r.Energy, 1e-9)
			t.Logf("%.1f W at 50 K -> %.3f J", tc.energy, r.PerComponentEnergy["buf"])
		})
	}
}

func TestApply_FirstStageWithSecondStage(t *testing.T) {
	m := New(nil)
	r := newResult(map[string]float64{"buf": 10, "core": 1})
	o := m.Apply(r, map[string]float64{"buf": 50, "core": 4})

	assert.True(t, o.SecondStage)
	assert.InDelta(t, 10*93.75, r.PerComponentEnergy["buf"], 1e-9)
	assert.InDelta(t, 1000.0, r.PerComponentEnergy["core"], 1e-9)
	assert.InDelta(t, 10*93.75+1000, r.Energy, 1e-9)
}

func TestApply_BandEdgesAndMissing(t *testing.T) {
	m := New(nil)
	r := newResult(map[string]float64{"a": 1, "b": 1, "c": 1, "d": 1, "untracked": 1})
	o := m.Apply(r, map[string]float64{"a": 10, "b": 80, "c": 200, "d": 150, "ghost": 4})

	for _, k := range []string{"a", "b", "c", "d", "untracked"} {
		assert.Equal(t, 1.0, r.PerComponentEnergy[k], k)
	}
	// ghost is below 10 K, so a second stage exists even though ghost has no energy
	assert.True(t, o.SecondStage)
	_, ok := r.PerComponentEnergy["ghost"]
	assert.False(t, ok)
	assert.InDelta(t, 5.0, r.Energy, 1e-12)
}

func TestApply_ZeroRuntimeStaysUnderBudget(t *testing.T) {
	m := New(nil)
	r := result.New(0, 0)
	r.PerComponentEnergy["buf"] = 1e6
	m.Apply(r, map[string]float64{"buf": 50})
	assert.Equal(t, 1e6, r.PerComponentEnergy["buf"])
}

func TestNew_MergesOverrides(t *testing.T) {
	m := New(&Config{SecondStageFactor: 3750, FirstStageBudgetW: -1})
	c := m.Config()
	assert.Equal(t, 3750.0, c.SecondStageFactor)
	assert.Equal(t, 80.0, c.FirstStageBudgetW)
	assert.Equal(t, 93.75, c.FirstStageFactor)

	r := newResult(map[string]float64{"core": 1})
	m.Apply(r, map[string]float64{"core": 4})
	assert.InDelta(t, 3750.0, r.PerComponentEnergy["core"], 1e-9)

	// overlapping bands are widened, not inverted
	c = New(&Config{SecondStageMaxK: 100}).Config()
	assert.Equal(t, 100.0, c.FirstStageMaxK)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "room", Room.String())
	assert.Equal(t, "first", FirstStage.String())
	assert.Equal(t, "second", SecondStage.String())
	assert.Equal(t, "unbanded", Unbanded.String())
}

func TestAddOverhead_FromSpec(t *testing.T) {
	spec, err := archspec.Parse(strings.NewReader(`
architecture:
  nodes:
    - {name: core, class: aqfp_intmult, attributes: {temperature: 4}}
    - {name: buf, class: cryo_SRAM, attributes: {temperature: 50}}
    - {name: host, class: cold_chip2chip_network}
`), nil)
	require.NoError(t, err)

	r := newResult(map[string]float64{"core": 1, "buf": 2, "host": 3})
	o := AddOverhead(r, spec)

	assert.InDelta(t, 1000.0, r.PerComponentEnergy["core"], 1e-9)
	assert.InDelta(t, 2*93.75, r.PerComponentEnergy["buf"], 1e-9)
	assert.Equal(t, 3.0, r.PerComponentEnergy["host"])
	assert.InDelta(t, 1000+2*93.75+3, r.Energy, 1e-9)
	assert.Len(t, o.Factors, 2)
}
