package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/ja7ad/superloop/pkg/cooling"
	"github.com/ja7ad/superloop/pkg/result"
	"github.com/ja7ad/superloop/pkg/sweep"
	"github.com/ja7ad/superloop/pkg/types"
)

type row struct {
	Component   string       `json:"component"`
	Temperature *float64     `json:"temperature_k,omitempty"`
	Stage       string       `json:"stage"`
	Factor      float64      `json:"cooling_factor"`
	Energy      types.Energy `json:"energy_j"`
	Area        types.Area   `json:"area_m2"`
}

type report struct {
	Spec     string       `json:"spec"`
	Cycles   float64      `json:"cycles"`
	Runtime  float64      `json:"runtime_s"`
	Energy   types.Energy `json:"energy_j"`
	Area     types.Area   `json:"area_m2"`
	Power    float64      `json:"power_w"`
	Cooling  bool         `json:"cooling"`
	AddedJ   types.Energy `json:"cooling_added_j"`
	Rows     []row        `json:"components"`
	Warnings []string     `json:"warnings,omitempty"`
}

// TempK formats the temperature, "-" when unknown.
func (r row) TempK() string {
	if r.Temperature == nil {
		return "-"
	}
	return fmtFloat(*r.Temperature)
}

func newReport(spec string, res *result.Result, temps map[string]float64, m *cooling.Model, ov *cooling.Overhead) report {
	rep := report{
		Spec:    spec,
		Cycles:  res.Cycles,
		Runtime: res.Runtime(),
		Energy:  types.Energy(res.Energy),
		Area:    types.Area(res.Area),
		Power:   types.Energy(res.Energy).Power(res.Runtime()),
		Cooling: ov != nil,
	}
	if ov != nil {
		rep.AddedJ = types.Energy(ov.AddedJ)
	}
	for _, k := range res.Components() {
		r := row{
			Component: k,
			Stage:     "-",
			Factor:    1,
			Energy:    types.Energy(res.PerComponentEnergy[k]),
			Area:      types.Area(res.PerComponentArea[k]),
		}
		if t, ok := temps[k]; ok {
			r.Temperature = &t
			r.Stage = m.Stage(t).String()
		}
		if ov != nil {
			if f, ok := ov.Factors[k]; ok {
				r.Factor = f
			}
		}
		rep.Rows = append(rep.Rows, r)
	}
	if res.CycleSeconds == 0 {
		rep.Warnings = append(rep.Warnings, "GLOBAL_CYCLE_SECONDS is not set; power and first stage budget checks are disabled")
	}
	return rep
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printReport(w io.Writer, rep report) {
	tw := newTable(w)
	fmt.Fprintln(tw, "COMPONENT\tTEMP (K)\tSTAGE\tCOOLING\tENERGY\tAREA")
	fmt.Fprintln(tw, "---------\t--------\t-----\t-------\t------\t----")
	for _, r := range rep.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\tx%g\t%s\t%s\n",
			r.Component, r.TempK(), r.Stage, r.Factor, r.Energy.Humanized(), r.Area.Humanized())
	}
	_ = tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%g cycles, %.3g s):\n", rep.Spec, rep.Cycles, rep.Runtime)
	fmt.Fprintf(w, "- energy:  %s\n", rep.Energy.Humanized())
	fmt.Fprintf(w, "- power:   %.3g W\n", rep.Power)
	fmt.Fprintf(w, "- area:    %s\n", rep.Area.Humanized())
	if rep.Cooling {
		fmt.Fprintf(w, "- cooling: %s added\n", rep.AddedJ.Humanized())
	}
	for _, warn := range rep.Warnings {
		fmt.Fprintf(w, "! %s\n", warn)
	}
	fmt.Fprintln(w)
}

func printSweep(w io.Writer, points []sweep.Point, results []*result.Result) {
	tw := newTable(w)
	fmt.Fprintln(tw, "SUB-ARCH\tBATCH\tENERGY\tENERGY/ITEM\tAREA")
	fmt.Fprintln(tw, "--------\t-----\t------\t-----------\t----")
	for i, p := range points {
		r := results[i]
		if r == nil {
			fmt.Fprintf(tw, "%s\t%d\tfailed\t-\t-\n", p.SubArchitecture, p.BatchSize)
			continue
		}
		perItem := types.Energy(r.Energy / float64(max(p.BatchSize, 1)))
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", p.SubArchitecture, p.BatchSize,
			types.Energy(r.Energy).Humanized(), perItem.Humanized(), types.Area(r.Area).Humanized())
	}
	_ = tw.Flush()
}

func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func writeOutputs(rep report, csvPath, jsonPath, htmlPath string) error {
	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error { return writeCSV(w, rep) }); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}
	if htmlPath != "" {
		if err := writeFile(htmlPath, func(w io.Writer) error { return writeHTML(w, rep) }); err != nil {
			return fmt.Errorf("html: %w", err)
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func writeCSV(w io.Writer, rep report) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"component", "temperature_k", "stage", "cooling_factor", "energy_j", "area_m2"})
	for _, r := range rep.Rows {
		temp := ""
		if r.Temperature != nil {
			temp = fmtFloat(*r.Temperature)
		}
		_ = cw.Write([]string{
			r.Component, temp, r.Stage, fmtFloat(r.Factor),
			fmtFloat(float64(r.Energy)), fmtFloat(float64(r.Area)),
		})
	}
	cw.Flush()
	return cw.Error()
}

func writeHTML(w io.Writer, rep report) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, rep); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Superloop Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.warn{color:#a40}
</style>

<h1>Superloop Report</h1>

<p class="small">
Spec: <code>{{.Spec}}</code> &nbsp;|&nbsp;
Cycles: {{printf "%g" .Cycles}} &nbsp;|&nbsp;
Runtime: {{printf "%.3g" .Runtime}} s
</p>

<h2>Summary</h2>
<ul>
<li>Energy: {{.Energy.Humanized}}</li>
<li>Power: {{printf "%.3g" .Power}} W</li>
<li>Area: {{.Area.Humanized}}</li>
{{if .Cooling}}<li>Cooling overhead: {{.AddedJ.Humanized}}</li>{{end}}
</ul>
{{range .Warnings}}<p class="warn">{{.}}</p>{{end}}

<h2>Components</h2>
<table>
<thead>
<tr><th>component</th><th>T (K)</th><th>stage</th><th>cooling</th><th>energy</th><th>area</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Component}}</td>
<td>{{.TempK}}</td>
<td>{{.Stage}}</td>
<td>x{{printf "%g" .Factor}}</td>
<td>{{.Energy.Humanized}}</td>
<td>{{.Area.Humanized}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
