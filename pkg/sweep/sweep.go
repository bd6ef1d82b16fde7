// Package sweep evaluates a templated architecture over many
// sub-architectures and batch sizes.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/ja7ad/superloop/pkg/archspec"
	"github.com/ja7ad/superloop/pkg/cooling"
	"github.com/ja7ad/superloop/pkg/mapper"
	"github.com/ja7ad/superloop/pkg/result"
)

// Point is one configuration to evaluate.
type Point struct {
	SubArchitecture string
	BatchSize       int
	Vars            map[string]any // extra template data
}

func (p Point) String() string {
	return fmt.Sprintf("%s/batch=%d", p.SubArchitecture, p.BatchSize)
}

func (p Point) data() map[string]any {
	d := make(map[string]any, len(p.Vars)+2)
	for k, v := range p.Vars {
		d[k] = v
	}
	d["sub_architecture"] = p.SubArchitecture
	d["batch_size"] = p.BatchSize
	return d
}

var taskSeq atomic.Uint64

// RunDir creates an empty output directory for one run of subArch under
// root. Names are unique within the process and across processes.
func RunDir(root, subArch string) (string, error) {
	dir := filepath.Join(root, fmt.Sprintf("%s_%d_%d", subArch, taskSeq.Add(1), os.Getpid()))
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("sweep: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("sweep: %w", err)
	}
	return dir, nil
}

// Runner evaluates points of one template.
type Runner struct {
	Template   string
	OutputRoot string
	Mapper     mapper.Mapper  // mapper.Evaluator when nil
	Cooling    *cooling.Model // default model when nil
	AddCooling bool

	// ReturnNilOnFail makes Generate log failures and return a nil result
	// instead of an error.
	ReturnNilOnFail bool
}

// Generate renders the template for p, maps it and post-processes the
// result: zero energies and areas are dropped and, with AddCooling, the
// cooling overhead is added.
func (r *Runner) Generate(ctx context.Context, p Point) (*result.Result, error) {
	res, err := r.generate(ctx, p)
	if err != nil {
		if !r.ReturnNilOnFail {
			return nil, fmt.Errorf("sweep: %s: %w", p, err)
		}
		slog.Warn("failed to generate result", "sub_architecture", p.SubArchitecture, "batch_size", p.BatchSize, "err", err)
		return nil, nil
	}
	return res, nil
}

func (r *Runner) generate(ctx context.Context, p Point) (*result.Result, error) {
	spec, err := archspec.Load(r.Template, p.data())
	if err != nil {
		return nil, err
	}
	spec.Variables[archspec.VarBatchSize] = p.BatchSize

	dir, err := RunDir(r.OutputRoot, p.SubArchitecture)
	if err != nil {
		return nil, err
	}

	m := r.Mapper
	if m == nil {
		m = mapper.NewEvaluator(nil)
	}
	res, err := m.Map(ctx, spec, dir)
	if err != nil {
		return nil, err
	}
	res.ClearZeroEnergies()
	res.ClearZeroAreas()

	if r.AddCooling {
		model := r.Cooling
		if model == nil {
			model = cooling.New(nil)
		}
		o := model.ApplySpec(res, spec)
		slog.Debug("cooling overhead", "point", p.String(), "added_j", o.AddedJ, "second_stage", o.SecondStage)
	}
	return res, nil
}

// Jobs returns one job per point.
func (r *Runner) Jobs(points []Point) []Job[*result.Result] {
	jobs := make([]Job[*result.Result], len(points))
	for i, p := range points {
		jobs[i] = func(ctx context.Context) (*result.Result, error) {
			return r.Generate(ctx, p)
		}
	}
	return jobs
}

// Grid returns every combination of subArchs and batches, sub-architecture
// major.
func Grid(subArchs []string, batches []int, vars map[string]any) []Point {
	out := make([]Point, 0, len(subArchs)*len(batches))
	for _, s := range subArchs {
		for _, b := range batches {
			out = append(out, Point{SubArchitecture: s, BatchSize: b, Vars: vars})
		}
	}
	return out
}
