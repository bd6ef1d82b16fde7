package estimator

import (
	"errors"
	"fmt"
)

// Action is a named operation whose dynamic energy an estimator reports.
type Action string

const (
	Read   Action = "read"
	Write  Action = "write"
	Update Action = "update"
	Add    Action = "add"
	Mult   Action = "mult"
)

// Info describes an estimator class to the host.
type Info struct {
	Name     string
	Aliases  []string
	Accuracy int // percent, 0..100
	Actions  []Action
}

// Names returns the primary name followed by the aliases.
func (i Info) Names() []string {
	return append([]string{i.Name}, i.Aliases...)
}

// Supports reports whether a is one of the declared actions.
func (i Info) Supports(a Action) bool {
	for _, x := range i.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Estimator models one hardware primitive. Parameters are fixed at
// construction; every query is a pure function of them.
//
// Units:
//   - Energy: joules per action
//   - Leak: joules per cycle
//   - Area: square metres
type Estimator interface {
	Info() Info
	Energy(a Action) (float64, error)
	Leak() float64
	Area() float64
}

// Unsupported returns the error for an action the estimator does not model.
func Unsupported(i Info, a Action) error {
	return fmt.Errorf("%s %q: %w", i.Name, a, ErrUnsupportedAction)
}

// Report is the full set of outputs of one estimator.
type Report struct {
	Info    Info
	Actions map[Action]float64
	Leak    float64
	Area    float64
}

// Query evaluates every declared action plus leak and area.
func Query(e Estimator) (Report, error) {
	info := e.Info()
	r := Report{
		Info:    info,
		Actions: make(map[Action]float64, len(info.Actions)),
		Leak:    e.Leak(),
		Area:    e.Area(),
	}
	var errs []error
	for _, a := range info.Actions {
		v, err := e.Energy(a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Actions[a] = v
	}
	return r, errors.Join(errs...)
}
