package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/superloop/pkg/estimator"
	"github.com/ja7ad/superloop/pkg/plugin"
	"github.com/ja7ad/superloop/pkg/types"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:   "superloop",
		Short: "Cryogenic accelerator energy and area estimation",
		Long: `superloop estimates the energy and area of superconducting and
cryogenic CMOS accelerators. Components are described in a YAML
architecture file; each names an estimator class (AQFP and RQL logic,
superconducting and cryoCMOS memories, cold/hot links, cryogenic cables)
with its attributes, action counts and operating temperature. Results can
include the energy drawn by the cryocooler to hold each component cold.

Examples:
  superloop list
  superloop estimate cryo_DRAM --attr width=64 --attr depth=1024 --attr global_cycle_seconds=2e-10
  superloop run arch.yaml --csv out/run.csv --html out/run.html
  superloop sweep top.yaml --sub-arch aqfp,cmos --batch 1,8,64 --plot out/sweep.png`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(listCmd(), estimateCmd(), runCmd(), sweepCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered estimator classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CLASS\tALIASES\tACCURACY\tACTIONS")
			fmt.Fprintln(tw, "-----\t-------\t--------\t-------")
			for _, info := range plugin.Default().Classes() {
				actions := make([]string, len(info.Actions))
				for i, a := range info.Actions {
					actions[i] = string(a)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\n",
					info.Name, orDash(strings.Join(info.Aliases, ",")), info.Accuracy, strings.Join(actions, ","))
			}
			return tw.Flush()
		},
	}
}

func estimateCmd() *cobra.Command {
	var attrs []string
	cmd := &cobra.Command{
		Use:   "estimate CLASS",
		Short: "Query one estimator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAssignments(attrs)
			if err != nil {
				return err
			}
			est, err := plugin.Default().New(args[0], estimator.Attributes(a))
			if err != nil {
				return err
			}
			rep, err := estimator.Query(est)

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "%s\t(accuracy %d%%)\n", rep.Info.Name, rep.Info.Accuracy)
			fmt.Fprintln(tw, "OUTPUT\tVALUE\tRAW")
			fmt.Fprintln(tw, "------\t-----\t---")
			for _, act := range rep.Info.Actions {
				v, ok := rep.Actions[act]
				if !ok {
					fmt.Fprintf(tw, "%s\tunsupported\t-\n", act)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%g J\n", act, types.Energy(v).Humanized(), v)
			}
			fmt.Fprintf(tw, "leak/cycle\t%s\t%g J\n", types.Energy(rep.Leak).Humanized(), rep.Leak)
			fmt.Fprintf(tw, "area\t%s\t%g m²\n", types.Area(rep.Area).Humanized(), rep.Area)
			if ferr := tw.Flush(); ferr != nil {
				return ferr
			}
			if err != nil {
				slog.Warn("some actions are not modelled", "err", err)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "estimator attribute as key=value (repeatable)")
	return cmd
}

// parseAssignments turns key=value pairs into a map. Values are decoded as
// YAML scalars so numbers and booleans keep their type.
func parseAssignments(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%q: expected key=value", p)
		}
		var val any
		if err := yaml.Unmarshal([]byte(v), &val); err != nil || val == nil {
			val = v
		}
		out[k] = val
	}
	return out, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
