// Package rql holds reciprocal quantum logic (RQL) processing components.
//
// Values come from the Stony Brook University RQL cell library tuned for the
// MITLL 10 kA/cm² 248 nm process:
//
//	M. Dorojevets et al., "Towards 32-bit Energy-Efficient Superconductor RQL
//	Processors: The Cell-Level Design and Analysis of Key Processing and
//	On-Chip Storage Units", https://doi.org/10.1109/TASC.2014.2368354
//
// The paper reports combined static and dynamic dissipation; dynamic power
// separates as P = (2/3)·Σ Ic(i)·Φ0·f.
package rql

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ja7ad/superloop/pkg/estimator"
)

var (
	// ErrUnsupportedProcess indicates a process node without RQL cell data.
	ErrUnsupportedProcess = errors.New("rql: unsupported process node")

	// ErrBadDepth indicates a non-positive bit depth.
	ErrBadDepth = errors.New("rql: bit depth must be > 0")
)

// DefaultProcess is the only characterised process node.
const DefaultProcess = "MITLL_SFQ5ee_10kA"

// Processes lists the supported process nodes.
var Processes = []string{DefaultProcess}

// IntMult is the integer multiplier of Table 1. The model is not filled in
// yet: every output is 0.
type IntMult struct {
	Depth   int
	Process string
}

var IntMultInfo = estimator.Info{
	Name:     "rql_intmult",
	Accuracy: 80,
	Actions:  []estimator.Action{estimator.Mult},
}

// NewIntMult builds a depth-bit multiplier on process (DefaultProcess when empty).
func NewIntMult(depth int, process string) (*IntMult, error) {
	if process == "" {
		process = DefaultProcess
	}
	if !slices.Contains(Processes, process) {
		return nil, fmt.Errorf("%q, must be one of %v: %w", process, Processes, ErrUnsupportedProcess)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrBadDepth)
	}
	slog.Debug("rql intmult initialized", "depth", depth, "process", process)
	return &IntMult{Depth: depth, Process: process}, nil
}

func (m *IntMult) Info() estimator.Info { return IntMultInfo }

func (m *IntMult) Energy(a estimator.Action) (float64, error) {
	if a != estimator.Mult {
		return 0, estimator.Unsupported(IntMultInfo, a)
	}
	return 0, nil
}

func (m *IntMult) Leak() float64 { return 0 }

func (m *IntMult) Area() float64 { return 0 }

// Register adds the RQL classes to r.
func Register(r *estimator.Registry) error {
	return r.Register(IntMultInfo, func(attrs estimator.Attributes) (estimator.Estimator, error) {
		depth, err := attrs.Int("depth")
		if err != nil {
			return nil, err
		}
		process, err := attrs.StringOr("process", DefaultProcess)
		if err != nil {
			return nil, err
		}
		return NewIntMult(depth, process)
	})
}
