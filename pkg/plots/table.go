package plots

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ja7ad/superloop/pkg/result"
)

// ErrMissingKey is returned when a row lacks a key another row has.
var ErrMissingKey = errors.New("plots: key missing from row")

// Series maps keys to values, remembering insertion order.
type Series struct {
	keys []string
	vals map[string]float64
}

func NewSeries() *Series {
	return &Series{vals: map[string]float64{}}
}

// SeriesOf builds a series from m with keys sorted.
func SeriesOf(m map[string]float64) *Series {
	s := NewSeries()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		s.Set(k, m[k])
	}
	return s
}

// Set stores v under k. New keys go last.
func (s *Series) Set(k string, v float64) *Series {
	if _, ok := s.vals[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.vals[k] = v
	return s
}

func (s *Series) Get(k string) (float64, bool) {
	v, ok := s.vals[k]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s *Series) Keys() []string { return slices.Clone(s.keys) }

func (s *Series) Len() int { return len(s.keys) }

func (s *Series) Sum() float64 {
	var t float64
	for _, k := range s.keys {
		t += s.vals[k]
	}
	return t
}

// Max returns the largest value, or 0 for an empty series.
func (s *Series) Max() float64 {
	if len(s.keys) == 0 {
		return 0
	}
	m := math.Inf(-1)
	for _, v := range s.vals {
		m = max(m, v)
	}
	return m
}

// Table maps x-axis labels to series, remembering insertion order.
type Table struct {
	labels []string
	rows   map[string]*Series
}

func NewTable() *Table {
	return &Table{rows: map[string]*Series{}}
}

// Add stores s under label. New labels go last.
func (t *Table) Add(label string, s *Series) *Table {
	if _, ok := t.rows[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.rows[label] = s
	return t
}

func (t *Table) Row(label string) *Series { return t.rows[label] }

// Labels returns the labels in insertion order.
func (t *Table) Labels() []string { return slices.Clone(t.labels) }

func (t *Table) Len() int { return len(t.labels) }

// Rows returns the series in label order.
func (t *Table) Rows() []*Series {
	out := make([]*Series, len(t.labels))
	for i, l := range t.labels {
		out[i] = t.rows[l]
	}
	return out
}

// Value returns the value at (label, key), 0 when absent.
func (t *Table) Value(label, key string) float64 {
	s := t.rows[label]
	if s == nil {
		return 0
	}
	v, _ := s.Get(key)
	return v
}

// Scalars builds a table with one unnamed key per label.
func Scalars(labels []string, values []float64) *Table {
	t := NewTable()
	for i, l := range labels {
		var v float64
		if i < len(values) {
			v = values[i]
		}
		t.Add(l, NewSeries().Set("", v))
	}
	return t
}

// EnergyTable tabulates per-component energy, one row per result. Nil
// results (failed sweep points) are skipped.
func EnergyTable(labels []string, rs []*result.Result) *Table {
	t := NewTable()
	for i, r := range rs {
		if r == nil || i >= len(labels) {
			continue
		}
		t.Add(labels[i], SeriesOf(r.PerComponentEnergy))
	}
	return t
}

// AreaTable tabulates per-component area, one row per result.
func AreaTable(labels []string, rs []*result.Result) *Table {
	t := NewTable()
	for i, r := range rs {
		if r == nil || i >= len(labels) {
			continue
		}
		t.Add(labels[i], SeriesOf(r.PerComponentArea))
	}
	return t
}

// ConsolidateKeys returns the union of the row keys in first-seen order.
// Unless missingOK, every row must hold every key.
func ConsolidateKeys(rows []*Series, missingOK bool) ([]string, error) {
	var all []string
	seen := map[string]struct{}{}
	for _, r := range rows {
		for _, k := range r.keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				all = append(all, k)
			}
		}
	}
	if missingOK {
		return all, nil
	}
	for _, k := range all {
		for i, r := range rows {
			if _, ok := r.vals[k]; !ok {
				return nil, fmt.Errorf("%q not in row %d %v, all keys %v: %w", k, i, r.keys, all, ErrMissingKey)
			}
		}
	}
	return all, nil
}
