// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"fmt"

	"github.com/symbexec/robdd/bdd"
)

// Analyzer computes and queries the set of states reachable by a
// synchronous finite-state machine with stateSize state bits and
// inputSize (free) input bits, represented symbolically over a private
// bdd.Manager.
type Analyzer struct {
	mgr *bdd.Manager

	stateSize int
	inputSize int

	states     []bdd.NodeID // s_0 .. s_{k-1}, present-state variables
	nextStates []bdd.NodeID // s'_0 .. s'_{k-1}, next-state variables
	inputs     []bdd.NodeID // x_0 .. x_{m-1}, input variables

	delta []bdd.NodeID // delta_i: next-state function for bit i, over states+inputs

	init bdd.NodeID // I: the initial-state set

	reachable      bdd.NodeID // R: the last computed reachable-state set
	reachableValid bool       // whether reachable reflects the current delta/init
}

// New constructs an Analyzer for a machine with stateSize state bits and
// inputSize input bits. Present-state variables are created first, then
// their next-state shadows, then the input variables, all on a fresh,
// privately owned bdd.Manager (spec.md §4.2: "two contiguous blocks,
// present-state first"). The default transition function is the identity
// (delta_i = s_i), so absent further configuration only the initial state
// is reachable; the default initial state is the all-zero vector.
//
// New fails with ErrConfiguration if stateSize is not strictly positive.
func New(stateSize, inputSize int) (*Analyzer, error) {
	if stateSize <= 0 {
		return nil, fmt.Errorf("%w: stateSize must be > 0, got %d", ErrConfiguration, stateSize)
	}
	if inputSize < 0 {
		return nil, fmt.Errorf("%w: inputSize must be >= 0, got %d", ErrConfiguration, inputSize)
	}

	mgr := bdd.NewManager(bdd.WithNodeHint(2*(2*stateSize+inputSize) + 2))

	a := &Analyzer{
		mgr:       mgr,
		stateSize: stateSize,
		inputSize: inputSize,
	}

	a.states = make([]bdd.NodeID, stateSize)
	for i := range a.states {
		a.states[i] = mgr.CreateVar(fmt.Sprintf("s%d", i))
	}
	a.nextStates = make([]bdd.NodeID, stateSize)
	for i := range a.nextStates {
		a.nextStates[i] = mgr.CreateVar(fmt.Sprintf("s%d'", i))
	}
	a.inputs = make([]bdd.NodeID, inputSize)
	for i := range a.inputs {
		a.inputs[i] = mgr.CreateVar(fmt.Sprintf("x%d", i))
	}

	// Default transition: identity (delta_i = s_i).
	a.delta = make([]bdd.NodeID, stateSize)
	copy(a.delta, a.states)

	// Default initial state: all-zero vector.
	a.init = mgr.True()
	for _, s := range a.states {
		a.init = mgr.And2(a.init, mgr.Neg(s))
	}

	a.reachableValid = false

	return a, nil
}

// Manager returns the private bdd.Manager backing this Analyzer. Exposed so
// callers can build arbitrary transition functions over the present-state
// and input variables returned by GetStates/GetInputs before calling
// SetTransitionFunctions.
func (a *Analyzer) Manager() *bdd.Manager {
	return a.mgr
}

// GetStates returns the ordered sequence of present-state variable
// identifiers, s_0 .. s_{k-1}.
func (a *Analyzer) GetStates() []bdd.NodeID {
	out := make([]bdd.NodeID, len(a.states))
	copy(out, a.states)
	return out
}

// GetInputs returns the ordered sequence of input variable identifiers,
// x_0 .. x_{m-1}.
func (a *Analyzer) GetInputs() []bdd.NodeID {
	out := make([]bdd.NodeID, len(a.inputs))
	copy(out, a.inputs)
	return out
}

// SetTransitionFunctions replaces the stored transition-function vector.
// delta must have exactly stateSize entries, all identifiers known to the
// Analyzer's Manager. It fails with ErrConfiguration otherwise, leaving the
// Analyzer unchanged. It does not eagerly recompute the reachable set; that
// happens lazily on the next IsReachable/StateDistance call.
func (a *Analyzer) SetTransitionFunctions(delta []bdd.NodeID) error {
	if len(delta) != a.stateSize {
		return fmt.Errorf("%w: expected %d transition functions, got %d", ErrConfiguration, a.stateSize, len(delta))
	}
	for i, f := range delta {
		if int(f) >= a.mgr.UniqueTableSize() {
			return fmt.Errorf("%w: transition function %d (id %d) is unknown to the manager", ErrConfiguration, i, f)
		}
	}
	newDelta := make([]bdd.NodeID, a.stateSize)
	copy(newDelta, delta)
	a.delta = newDelta
	a.reachableValid = false
	return nil
}

// SetInitState builds I = AND_i (v_i ? s_i : !s_i) and stores it as the
// initial-state set. v must have exactly stateSize entries.
func (a *Analyzer) SetInitState(v []bool) error {
	if len(v) != a.stateSize {
		return fmt.Errorf("%w: expected %d initial-state bits, got %d", ErrConfiguration, a.stateSize, len(v))
	}
	init := a.mgr.True()
	for i, bit := range v {
		if bit {
			init = a.mgr.And2(init, a.states[i])
		} else {
			init = a.mgr.And2(init, a.mgr.Neg(a.states[i]))
		}
	}
	a.init = init
	a.reachableValid = false
	return nil
}
