// Package mapper turns an architecture specification into a Result.
package mapper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sync"

	"github.com/ja7ad/superloop/pkg/archspec"
	"github.com/ja7ad/superloop/pkg/estimator"
	"github.com/ja7ad/superloop/pkg/plugin"
	"github.com/ja7ad/superloop/pkg/result"
)

const (
	SpecFile   = "spec.yaml"
	ResultFile = "result.yaml"
	LogFile    = "log.txt"
)

// ErrNoResult indicates that an external mapper exited without writing a result.
var ErrNoResult = errors.New("mapper: no result produced")

// Mapper evaluates spec, writing any artefacts into outDir.
type Mapper interface {
	Map(ctx context.Context, spec *archspec.Specification, outDir string) (*result.Result, error)
}

// Evaluator computes results directly from the estimators: each node is
// charged its action counts times the action energies, plus leakage for
// every cycle. Action counts and cycles are per batch element.
// Map only reads the Evaluator, so one value may serve concurrent sweeps.
type Evaluator struct {
	Registry *estimator.Registry // plugin.Default() when nil
}

// NewEvaluator returns an Evaluator over reg, or over the default plug-ins
// when reg is nil.
func NewEvaluator(reg *estimator.Registry) *Evaluator {
	if reg == nil {
		reg = defaultRegistry()
	}
	return &Evaluator{Registry: reg}
}

var defaultRegistry = sync.OnceValue(plugin.Default)

func (e *Evaluator) registry() *estimator.Registry {
	if e.Registry == nil {
		return defaultRegistry()
	}
	return e.Registry
}

func (e *Evaluator) Map(ctx context.Context, spec *archspec.Specification, outDir string) (*result.Result, error) {
	reg := e.registry()
	cycle := spec.CycleSeconds()
	batch := spec.BatchSize()
	res := result.New(spec.Cycles*batch, cycle)

	for _, n := range spec.Architecture.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		energy, area, err := evalNode(reg, n, cycle, batch, res.Cycles)
		if err != nil {
			return nil, fmt.Errorf("mapper: %s: %w", n.Name, err)
		}
		res.PerComponentEnergy[n.Name] = energy
		res.PerComponentArea[n.Name] = area
	}
	res.Recompute()

	if outDir != "" {
		if err := res.Save(filepath.Join(outDir, ResultFile)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func evalNode(reg *estimator.Registry, n archspec.Node, cycle, batch, cycles float64) (energy, area float64, err error) {
	attrs := n.Attributes.Clone()
	if !attrs.Has("global_cycle_seconds") && cycle > 0 {
		attrs["global_cycle_seconds"] = cycle
	}
	est, err := reg.New(n.Class, attrs)
	if err != nil {
		return 0, 0, err
	}

	actions := make([]string, 0, len(n.Actions))
	for a := range n.Actions {
		actions = append(actions, a)
	}
	slices.Sort(actions)

	for _, a := range actions {
		count := n.Actions[a]
		if count == 0 {
			continue
		}
		v, err := est.Energy(estimator.Action(a))
		if err != nil {
			return 0, 0, err
		}
		energy += count * batch * v
	}
	energy += est.Leak() * cycles
	return energy, est.Area(), nil
}

// Exec runs an external mapper. The rendered specification is written to
// outDir/spec.yaml and passed as the last argument. The command runs in
// outDir with its output captured in log.txt and must leave a result.yaml.
type Exec struct {
	Command string
	Args    []string
}

func (x *Exec) Map(ctx context.Context, spec *archspec.Specification, outDir string) (*result.Result, error) {
	b, err := spec.Marshal()
	if err != nil {
		return nil, fmt.Errorf("mapper: encode spec: %w", err)
	}
	specPath := filepath.Join(outDir, SpecFile)
	if err := os.WriteFile(specPath, b, 0o644); err != nil {
		return nil, fmt.Errorf("mapper: %w", err)
	}

	logF, err := os.Create(filepath.Join(outDir, LogFile))
	if err != nil {
		return nil, fmt.Errorf("mapper: %w", err)
	}
	defer logF.Close()

	args := append(slices.Clone(x.Args), specPath)
	cmd := exec.CommandContext(ctx, x.Command, args...)
	cmd.Dir = outDir
	cmd.Stdout = logF
	cmd.Stderr = logF

	slog.Debug("running mapper", "cmd", x.Command, "dir", outDir)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("mapper: %s: %w (see %s)", x.Command, err, logF.Name())
	}

	resPath := filepath.Join(outDir, ResultFile)
	if _, err := os.Stat(resPath); err != nil {
		return nil, fmt.Errorf("%s: %w", resPath, ErrNoResult)
	}
	return result.Load(resPath)
}
