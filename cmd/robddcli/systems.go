// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/symbexec/robdd/bdd"
	"github.com/symbexec/robdd/reach"
)

// system describes one of the small catalog of named transition systems
// used by the CLI, directly lifted from the reachability scenarios of
// spec.md §8 (in turn adapted from dalzilio-rudd/milner_test.go's pattern
// of building a named parametric symbolic system).
type system struct {
	name        string
	description string
	stateSize   int
	inputSize   int
	build       func(a *reach.Analyzer) error
}

var catalog = map[string]system{
	"inverting-latch": {
		name:        "inverting-latch",
		description: "two bits, each negated every step; init (0,0)",
		stateSize:   2,
		inputSize:   0,
		build: func(a *reach.Analyzer) error {
			m := a.Manager()
			s := a.GetStates()
			if err := a.SetTransitionFunctions([]bdd.NodeID{m.Neg(s[0]), m.Neg(s[1])}); err != nil {
				return err
			}
			return a.SetInitState([]bool{false, false})
		},
	},
	"shift-register": {
		name:        "shift-register",
		description: "two-bit shift register; init (0,0)",
		stateSize:   2,
		inputSize:   0,
		build: func(a *reach.Analyzer) error {
			m := a.Manager()
			s := a.GetStates()
			if err := a.SetTransitionFunctions([]bdd.NodeID{m.Neg(s[1]), s[0]}); err != nil {
				return err
			}
			return a.SetInitState([]bool{false, false})
		},
	},
	"input-toggle": {
		name:        "input-toggle",
		description: "one state bit toggled by one input; init s0=0",
		stateSize:   1,
		inputSize:   1,
		build: func(a *reach.Analyzer) error {
			m := a.Manager()
			s := a.GetStates()
			x := a.GetInputs()
			if err := a.SetTransitionFunctions([]bdd.NodeID{m.And2(m.Neg(s[0]), x[0])}); err != nil {
				return err
			}
			return a.SetInitState([]bool{false})
		},
	},
}

func buildSystem(name string) (*reach.Analyzer, system, error) {
	sys, ok := catalog[name]
	if !ok {
		return nil, system{}, fmt.Errorf("unknown system %q (known: %s)", name, knownSystemNames())
	}
	a, err := reach.New(sys.stateSize, sys.inputSize)
	if err != nil {
		return nil, system{}, err
	}
	if err := sys.build(a); err != nil {
		return nil, system{}, err
	}
	return a, sys, nil
}

func knownSystemNames() string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	return fmt.Sprint(names)
}
