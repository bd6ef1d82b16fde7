// Package archspec loads architecture specifications: a list of named
// components, each with an estimator class, physical attributes, action
// counts and an optional operating temperature.
//
// Files are YAML. When template data is supplied the file is first
// rendered with text/template, so one file can describe a family of
// sub-architectures:
//
//	variables:
//	  GLOBAL_CYCLE_SECONDS: 2e-10
//	cycles: 1000
//	architecture:
//	  nodes:
//	    - name: buffer
//	      class: cryo_SRAM
//	      attributes: {cell_type: 6T_static, width: 64, depth: {{ .depth }}, temperature: 4}
//	      actions: {read: 4096, write: 1024}
package archspec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/ja7ad/superloop/pkg/estimator"
)

const (
	// RoomTemperature is assumed for components without a temperature attribute.
	RoomTemperature = 300.0

	VarCycleSeconds = "GLOBAL_CYCLE_SECONDS"
	VarBatchSize    = "BATCH_SIZE"
)

// Node is one component of the architecture.
type Node struct {
	Name       string               `yaml:"name" json:"name"`
	Class      string               `yaml:"class" json:"class"`
	Attributes estimator.Attributes `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Actions    map[string]float64   `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// Architecture is the ordered component list.
type Architecture struct {
	Nodes []Node `yaml:"nodes" json:"nodes"`
}

// Specification is a parsed architecture specification.
type Specification struct {
	Variables    map[string]any `yaml:"variables,omitempty" json:"variables,omitempty"`
	Cycles       float64        `yaml:"cycles" json:"cycles"`
	Architecture Architecture   `yaml:"architecture" json:"architecture"`
}

// Load reads and parses the file at path. See Parse for data.
func Load(path string, data map[string]any) (*Specification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archspec: open: %w", err)
	}
	defer f.Close()

	s, err := Parse(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a specification from r. A non-nil data renders r as a
// text/template with data before decoding.
func Parse(r io.Reader, data map[string]any) (*Specification, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("archspec: read: %w", err)
	}
	if data != nil {
		raw, err = render(raw, data)
		if err != nil {
			return nil, err
		}
	}

	var s Specification
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("archspec: decode: %w", err)
	}
	if s.Variables == nil {
		s.Variables = map[string]any{}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func render(raw []byte, data map[string]any) ([]byte, error) {
	tpl, err := template.New("spec").Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("archspec: template: %w", err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("archspec: render: %w", err)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"mul": func(a, b any) (float64, error) {
		x, y, err := floats(a, b)
		return x * y, err
	},
	"div": func(a, b any) (float64, error) {
		x, y, err := floats(a, b)
		if err == nil && y == 0 {
			err = fmt.Errorf("archspec: division by zero")
		}
		if err != nil {
			return 0, err
		}
		return x / y, nil
	},
	"add": func(a, b any) (float64, error) {
		x, y, err := floats(a, b)
		return x + y, err
	},
}

func floats(a, b any) (float64, float64, error) {
	attrs := estimator.Attributes{"a": a, "b": b}
	x, err := attrs.Float("a")
	if err != nil {
		return 0, 0, err
	}
	y, err := attrs.Float("b")
	return x, y, err
}

// Validate checks node names and classes.
func (s *Specification) Validate() error {
	if len(s.Architecture.Nodes) == 0 {
		return ErrNoNodes
	}
	seen := make(map[string]struct{}, len(s.Architecture.Nodes))
	for i, n := range s.Architecture.Nodes {
		if n.Name == "" || n.Class == "" {
			return fmt.Errorf("node %d: %w", i, ErrBadNode)
		}
		if _, ok := seen[n.Name]; ok {
			return fmt.Errorf("%s: %w", n.Name, ErrDuplicateNode)
		}
		seen[n.Name] = struct{}{}
	}
	return nil
}

// Node returns the node called name.
func (s *Specification) Node(name string) (Node, bool) {
	for _, n := range s.Architecture.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Temperatures returns the operating temperature of every node whose name
// is in keys. Nodes without a temperature attribute run at room
// temperature; an explicit null leaves the node out.
func (s *Specification) Temperatures(keys []string) map[string]float64 {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	out := make(map[string]float64)
	for _, n := range s.Architecture.Nodes {
		if _, ok := want[n.Name]; !ok {
			continue
		}
		v, present := n.Attributes["temperature"]
		if !present {
			out[n.Name] = RoomTemperature
			continue
		}
		if v == nil {
			continue
		}
		t, err := n.Attributes.Float("temperature")
		if err != nil {
			continue
		}
		out[n.Name] = t
	}
	return out
}

// CycleSeconds returns GLOBAL_CYCLE_SECONDS, or 0 when unset.
func (s *Specification) CycleSeconds() float64 {
	v, err := estimator.Attributes(s.Variables).FloatOr(VarCycleSeconds, 0)
	if err != nil {
		return 0
	}
	return v
}

// BatchSize returns BATCH_SIZE, or 1 when unset.
func (s *Specification) BatchSize() float64 {
	v, err := estimator.Attributes(s.Variables).FloatOr(VarBatchSize, 1)
	if err != nil || v <= 0 {
		return 1
	}
	return v
}

// Marshal encodes the specification as YAML.
func (s *Specification) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
