package archspec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specYAML = `
variables:
  GLOBAL_CYCLE_SECONDS: 2e-10
  BATCH_SIZE: 2
cycles: 1000
architecture:
  nodes:
    - name: dram
      class: cryo_DRAM
      attributes: {width: 64, depth: 1024, temperature: 4}
      actions: {read: 100, write: 10}
    - name: link
      class: cold2hot_network
      attributes: {datawidth: 64, hot_temp: 300, cold_temp: 4, temperature: 50}
      actions: {read: 100}
    - name: host
      class: cold_chip2chip_network
    - name: probe
      class: cold_chip2chip_network
      attributes: {temperature: null}
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(specYAML), nil)
	require.NoError(t, err)

	require.Len(t, s.Architecture.Nodes, 4)
	assert.InDelta(t, 2e-10, s.CycleSeconds(), 1e-24)
	assert.Equal(t, 2.0, s.BatchSize())
	assert.Equal(t, 1000.0, s.Cycles)

	n, ok := s.Node("dram")
	require.True(t, ok)
	assert.Equal(t, "cryo_DRAM", n.Class)
	assert.Equal(t, 100.0, n.Actions["read"])
	w, err := n.Attributes.Int("width")
	require.NoError(t, err)
	assert.Equal(t, 64, w)

	_, ok = s.Node("missing")
	assert.False(t, ok)
}

func TestTemperatures(t *testing.T) {
	s, err := Parse(strings.NewReader(specYAML), nil)
	require.NoError(t, err)

	temps := s.Temperatures([]string{"dram", "link", "host", "probe", "not_in_spec"})
	assert.Equal(t, map[string]float64{
		"dram": 4,
		"link": 50,
		"host": RoomTemperature,
	}, temps)

	// only requested keys
	assert.Equal(t, map[string]float64{"dram": 4}, s.Temperatures([]string{"dram"}))
}

func TestParse_Template(t *testing.T) {
	tpl := `
variables:
  GLOBAL_CYCLE_SECONDS: {{ div 1 .freq }}
cycles: {{ mul 10 .batch }}
architecture:
  nodes:
    - name: {{ .sub_architecture }}_buf
      class: cryo_SRAM
      attributes: {cell_type: 6T_static, width: 64, depth: {{ .depth }}}
`
	s, err := Parse(strings.NewReader(tpl), map[string]any{
		"sub_architecture": "aqfp",
		"freq":             5e9,
		"batch":            4,
		"depth":            256,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2e-10, s.CycleSeconds(), 1e-24)
	assert.Equal(t, 40.0, s.Cycles)
	assert.Equal(t, "aqfp_buf", s.Architecture.Nodes[0].Name)

	_, err = Parse(strings.NewReader(tpl), map[string]any{"sub_architecture": "x"})
	require.Error(t, err, "missing template keys must fail")
}

func TestParse_Validation(t *testing.T) {
	_, err := Parse(strings.NewReader("cycles: 1\n"), nil)
	require.ErrorIs(t, err, ErrNoNodes)

	dup := `
architecture:
  nodes:
    - {name: a, class: nMem}
    - {name: a, class: nMem}
`
	_, err = Parse(strings.NewReader(dup), nil)
	require.ErrorIs(t, err, ErrDuplicateNode)

	_, err = Parse(strings.NewReader("architecture: {nodes: [{name: a}]}"), nil)
	require.ErrorIs(t, err, ErrBadNode)

	_, err = Parse(strings.NewReader("architecture: [1, 2"), nil)
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	s, err := Parse(strings.NewReader("architecture: {nodes: [{name: a, class: nMem}]}"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.CycleSeconds())
	assert.Equal(t, 1.0, s.BatchSize())
	assert.NotNil(t, s.Variables)
}

func TestLoad_AndMarshal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "top.yaml")
	require.NoError(t, os.WriteFile(path, []byte(specYAML), 0o644))

	s, err := Load(path, nil)
	require.NoError(t, err)

	b, err := s.Marshal()
	require.NoError(t, err)
	again, err := Parse(strings.NewReader(string(b)), nil)
	require.NoError(t, err)
	assert.Equal(t, len(s.Architecture.Nodes), len(again.Architecture.Nodes))
	assert.Equal(t, s.Temperatures([]string{"dram", "host"}), again.Temperatures([]string{"dram", "host"}))

	_, err = Load(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
}
