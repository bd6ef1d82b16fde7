// Package plugin assembles the registry of every estimator class.
package plugin

import (
	"github.com/ja7ad/superloop/pkg/aqfp"
	"github.com/ja7ad/superloop/pkg/cable"
	"github.com/ja7ad/superloop/pkg/estimator"
	"github.com/ja7ad/superloop/pkg/memory"
	"github.com/ja7ad/superloop/pkg/network"
	"github.com/ja7ad/superloop/pkg/rql"
)

// Default returns a registry holding every built-in estimator.
func Default() *estimator.Registry {
	r := estimator.NewRegistry()
	for _, register := range []func(*estimator.Registry) error{
		aqfp.Register,
		rql.Register,
		memory.Register,
		network.Register,
		cable.Register,
	} {
		if err := register(r); err != nil {
			// class names are fixed at compile time
			panic(err)
		}
	}
	return r
}
