package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ja7ad/superloop/pkg/archspec"
	"github.com/ja7ad/superloop/pkg/cooling"
	"github.com/ja7ad/superloop/pkg/mapper"
	"github.com/ja7ad/superloop/pkg/plots"
	"github.com/ja7ad/superloop/pkg/result"
	"github.com/ja7ad/superloop/pkg/sweep"
)

type mapperOpts struct {
	command string
	args    []string
}

func (m mapperOpts) mapper() mapper.Mapper {
	if m.command == "" {
		return mapper.NewEvaluator(nil)
	}
	return &mapper.Exec{Command: m.command, Args: m.args}
}

func (m *mapperOpts) flags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.command, "mapper", "", "external mapper command (default: built-in evaluator)")
	cmd.Flags().StringArrayVar(&m.args, "mapper-arg", nil, "argument passed to the external mapper before the spec path (repeatable)")
}

type runOpts struct {
	vars      []string
	noCooling bool
	outDir    string
	mapper    mapperOpts

	csvPath  string
	jsonPath string
	htmlPath string
	plotPath string
	logY     bool
}

func runCmd() *cobra.Command {
	var o runOpts
	cmd := &cobra.Command{
		Use:   "run SPEC",
		Short: "Evaluate one architecture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cmd, o, args[0])
		},
	}
	cmd.Flags().StringArrayVar(&o.vars, "var", nil, "template variable as key=value (repeatable); enables templating")
	cmd.Flags().BoolVar(&o.noCooling, "no-cooling", false, "do not add cryocooler overhead")
	cmd.Flags().StringVarP(&o.outDir, "out", "o", "", "directory for mapper artefacts")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write per-component rows to CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write the report to JSON file")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "write the report to HTML file")
	cmd.Flags().StringVar(&o.plotPath, "plot", "", "save a per-component energy chart (png, svg, pdf)")
	cmd.Flags().BoolVar(&o.logY, "log-y", false, "log scale for the chart y axis")
	o.mapper.flags(cmd)
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, o runOpts, path string) error {
	var data map[string]any
	if len(o.vars) > 0 {
		var err error
		if data, err = parseAssignments(o.vars); err != nil {
			return err
		}
	}
	spec, err := archspec.Load(path, data)
	if err != nil {
		return err
	}

	outDir := o.outDir
	if outDir == "" && o.mapper.command != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if outDir, err = sweep.RunDir(filepath.Join(os.TempDir(), "superloop"), name); err != nil {
			return err
		}
	} else if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	res, err := o.mapper.mapper().Map(ctx, spec, outDir)
	if err != nil {
		return err
	}

	model := cooling.New(nil)
	temps := spec.Temperatures(res.Components())
	var ov *cooling.Overhead
	if !o.noCooling {
		x := model.Apply(res, temps)
		ov = &x
	}

	rep := newReport(path, res, temps, model, ov)
	printReport(cmd.OutOrStdout(), rep)

	if err := writeOutputs(rep, o.csvPath, o.jsonPath, o.htmlPath); err != nil {
		return err
	}
	if o.plotPath != "" {
		t := plots.NewTable().Add(filepath.Base(path), plots.SeriesOf(res.PerComponentEnergy))
		_, err := plots.BarSideBySide(nil, t, plots.Options{
			Title: filepath.Base(path), YLabel: "Energy (J)", MissingOK: true,
			LabelBars: true, YScale: scale(o.logY), Path: o.plotPath,
		})
		return err
	}
	return nil
}

type sweepOpts struct {
	subArchs   []string
	batches    []int
	vars       []string
	outRoot    string
	noCooling  bool
	ignoreFail bool
	parallel   bool
	mapper     mapperOpts

	csvPath  string
	plotPath string
	area     bool
	logY     bool
}

func sweepCmd() *cobra.Command {
	var o sweepOpts
	cmd := &cobra.Command{
		Use:   "sweep TEMPLATE",
		Short: "Evaluate a templated architecture over sub-architectures and batch sizes",
		Long: `sweep renders TEMPLATE once per (sub-architecture, batch size) pair. The
template sees .sub_architecture, .batch_size and every --var; BATCH_SIZE
is set in the variables of each rendered specification. Each point gets
its own output directory under --out; points run concurrently unless
--parallel=false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runSweep(ctx, cmd, o, args[0])
		},
	}
	cmd.Flags().StringSliceVar(&o.subArchs, "sub-arch", nil, "sub-architectures to evaluate")
	cmd.Flags().IntSliceVar(&o.batches, "batch", []int{1}, "batch sizes to evaluate")
	cmd.Flags().StringArrayVar(&o.vars, "var", nil, "template variable as key=value (repeatable)")
	cmd.Flags().StringVarP(&o.outRoot, "out", "o", "outputs", "root directory for per-point outputs")
	cmd.Flags().BoolVar(&o.noCooling, "no-cooling", false, "do not add cryocooler overhead")
	cmd.Flags().BoolVar(&o.ignoreFail, "ignore-fail", false, "log failed points and continue")
	cmd.Flags().BoolVar(&o.parallel, "parallel", true, "evaluate points concurrently")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write the per-component table to CSV file")
	cmd.Flags().StringVar(&o.plotPath, "plot", "", "save a stacked per-component chart (png, svg, pdf)")
	cmd.Flags().BoolVar(&o.area, "area", false, "tabulate area instead of energy")
	cmd.Flags().BoolVar(&o.logY, "log-y", false, "log scale for the chart y axis")
	o.mapper.flags(cmd)
	_ = cmd.MarkFlagRequired("sub-arch")
	return cmd
}

func runSweep(ctx context.Context, cmd *cobra.Command, o sweepOpts, tpl string) error {
	vars, err := parseAssignments(o.vars)
	if err != nil {
		return err
	}
	r := &sweep.Runner{
		Template:        tpl,
		OutputRoot:      o.outRoot,
		Mapper:          o.mapper.mapper(),
		AddCooling:      !o.noCooling,
		ReturnNilOnFail: o.ignoreFail,
	}
	points := sweep.Grid(o.subArchs, o.batches, vars)
	jobs := r.Jobs(points)
	var results []*result.Result
	if o.parallel {
		results, err = sweep.Parallel(ctx, jobs)
	} else {
		results, err = sweep.Serial(ctx, jobs)
	}
	if err != nil {
		return err
	}

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.SubArchitecture + "/" + strconv.Itoa(p.BatchSize)
	}
	printSweep(cmd.OutOrStdout(), points, results)

	t, ylabel := plots.EnergyTable(labels, results), "Energy (J)"
	if o.area {
		t, ylabel = plots.AreaTable(labels, results), "Area (m²)"
	}
	if o.csvPath != "" {
		f, err := create(o.csvPath)
		if err != nil {
			return err
		}
		if err := plots.OutputCSV(f, t); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if o.plotPath != "" {
		_, err := plots.BarStacked(nil, t, plots.Options{
			Title: filepath.Base(tpl), XLabel: "sub-architecture/batch", YLabel: ylabel,
			MissingOK: true, YScale: scale(o.logY), Path: o.plotPath,
		})
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}
	return nil
}

func scale(log bool) plots.Scale {
	if log {
		return plots.Log
	}
	return plots.Linear
}
