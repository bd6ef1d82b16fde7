// Package result holds the outcome of evaluating one architecture mapping.
package result

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ja7ad/superloop/pkg/util"
)

// Result holds per-component and aggregate energy and area.
//
// Units:
//   - energies: joules over the whole run
//   - areas: square metres
//   - CycleSeconds: seconds per cycle
type Result struct {
	PerComponentEnergy map[string]float64 `yaml:"per_component_energy" json:"per_component_energy"`
	PerComponentArea   map[string]float64 `yaml:"per_component_area,omitempty" json:"per_component_area,omitempty"`
	Energy             float64            `yaml:"energy" json:"energy"`
	Area               float64            `yaml:"area" json:"area"`
	Cycles             float64            `yaml:"cycles" json:"cycles"`
	CycleSeconds       float64            `yaml:"cycle_seconds" json:"cycle_seconds"`
}

// New returns an empty result for a run of cycles at cycleSeconds.
func New(cycles, cycleSeconds float64) *Result {
	return &Result{
		PerComponentEnergy: map[string]float64{},
		PerComponentArea:   map[string]float64{},
		Cycles:             cycles,
		CycleSeconds:       cycleSeconds,
	}
}

// Runtime returns the run duration in seconds.
func (r *Result) Runtime() float64 { return r.Cycles * r.CycleSeconds }

// Power returns the average power of component name in watts, or 0 when
// the runtime is zero.
func (r *Result) Power(name string) float64 {
	return util.SafeDiv(r.PerComponentEnergy[name], r.Runtime())
}

// Components returns the component names, sorted.
func (r *Result) Components() []string {
	out := make([]string, 0, len(r.PerComponentEnergy))
	for k := range r.PerComponentEnergy {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ClearZeroEnergies drops components with no energy.
func (r *Result) ClearZeroEnergies() {
	for k, v := range r.PerComponentEnergy {
		if v == 0 {
			delete(r.PerComponentEnergy, k)
		}
	}
}

// ClearZeroAreas drops components with no area.
func (r *Result) ClearZeroAreas() {
	for k, v := range r.PerComponentArea {
		if v == 0 {
			delete(r.PerComponentArea, k)
		}
	}
}

// Recompute sets both aggregates to the sum of the per-component values.
func (r *Result) Recompute() {
	r.RecomputeEnergy()
	r.Area = sum(r.PerComponentArea)
}

// RecomputeEnergy sets Energy to the sum of the per-component energies.
func (r *Result) RecomputeEnergy() {
	r.Energy = sum(r.PerComponentEnergy)
}

func sum(m map[string]float64) float64 {
	// sorted for a reproducible rounding order
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var s float64
	for _, k := range keys {
		s += m[k]
	}
	return s
}

// Clone returns a deep copy.
func (r *Result) Clone() *Result {
	c := *r
	c.PerComponentEnergy = cloneMap(r.PerComponentEnergy)
	c.PerComponentArea = cloneMap(r.PerComponentArea)
	return &c
}

func cloneMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Load reads a YAML result file.
func Load(path string) (*Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("result: %w", err)
	}
	var r Result
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("result: %s: %w", path, err)
	}
	if r.PerComponentEnergy == nil {
		r.PerComponentEnergy = map[string]float64{}
	}
	return &r, nil
}

// Save writes r as YAML.
func (r *Result) Save(path string) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("result: %w", err)
	}
	return nil
}
