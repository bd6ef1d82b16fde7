package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arch = `
variables:
  GLOBAL_CYCLE_SECONDS: 2e-10
cycles: 1000
architecture:
  nodes:
    - name: buffer
      class: cryo_SRAM
      attributes: {cell_type: 6T_static, width: 64, depth: {{ .depth }}, temperature: 4}
      actions: {read: 100}
    - name: host
      class: cold2hot_network
      attributes: {datawidth: 8, hot_temp: 300, cold_temp: 4}
      actions: {read: 10}
`

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"width=64", "cycle=2e-10", "cell_node=v1.0", "cell_type=3T_PW-PR", "empty="})
	require.NoError(t, err)
	assert.Equal(t, 64, got["width"])
	assert.Equal(t, 2e-10, got["cycle"])
	assert.Equal(t, "v1.0", got["cell_node"])
	assert.Equal(t, "3T_PW-PR", got["cell_type"])
	assert.Equal(t, "", got["empty"])

	_, err = parseAssignments([]string{"novalue"})
	require.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "arch.yaml")
	require.NoError(t, os.WriteFile(spec, []byte(arch), 0o644))

	var out bytes.Buffer
	cmd := runCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{spec, "--var", "depth=128",
		"--csv", filepath.Join(dir, "r", "run.csv"),
		"--json", filepath.Join(dir, "r", "run.json"),
		"--html", filepath.Join(dir, "r", "run.html"),
	})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "COMPONENT")
	assert.Contains(t, out.String(), "second")
	assert.Contains(t, out.String(), "x1000")

	csvB, err := os.ReadFile(filepath.Join(dir, "r", "run.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(csvB), "buffer,4,second,1000,")
	assert.Contains(t, string(csvB), "host,300,unbanded,1,")

	var rep report
	jsonB, err := os.ReadFile(filepath.Join(dir, "r", "run.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(jsonB, &rep))
	require.Len(t, rep.Rows, 2)
	assert.True(t, rep.Cooling)
	assert.InDelta(t, 100*618e-15*64*1000, float64(rep.Rows[0].Energy), 1e-15)

	htmlB, err := os.ReadFile(filepath.Join(dir, "r", "run.html"))
	require.NoError(t, err)
	assert.Contains(t, string(htmlB), "<td>buffer</td>")
	assert.Contains(t, string(htmlB), "<td>4</td>")
}

func TestRunCommand_NoCooling(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "arch.yaml")
	require.NoError(t, os.WriteFile(spec, []byte(arch), 0o644))

	var out bytes.Buffer
	cmd := runCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{spec, "--var", "depth=16", "--no-cooling", "--json", filepath.Join(dir, "run.json")})
	require.NoError(t, cmd.Execute())

	var rep report
	b, err := os.ReadFile(filepath.Join(dir, "run.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &rep))
	assert.False(t, rep.Cooling)
	assert.Equal(t, 1.0, rep.Rows[0].Factor)
}

func TestSweepCommand(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "top.yaml")
	require.NoError(t, os.WriteFile(tpl, []byte(arch), 0o644))

	var out bytes.Buffer
	cmd := sweepCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{tpl, "--sub-arch", "a,b", "--batch", "1,2", "--var", "depth=32",
		"--out", filepath.Join(dir, "outputs"), "--csv", filepath.Join(dir, "sweep.csv")})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "SUB-ARCH")
	b, err := os.ReadFile(filepath.Join(dir, "sweep.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Label,a/1,a/2,b/1,b/2\n")
}

func TestListAndEstimate(t *testing.T) {
	var out bytes.Buffer
	cmd := listCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "cryo_DRAM")
	assert.Contains(t, out.String(), "aqfp_intmult")

	out.Reset()
	cmd = estimateCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cryo_DRAM", "--attr", "width=64", "--attr", "depth=1024", "--attr", "global_cycle_seconds=2e-10"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "16.77 pJ")
	assert.Contains(t, out.String(), "leak/cycle")
}
