// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"fmt"

	"github.com/symbexec/robdd/bdd"
)

// evaluateAt cofactors f successively on each variable in vars with the
// polarity given by v, returning the resulting (necessarily constant)
// identifier. Used to evaluate a Boolean function at a fully-specified
// point.
func evaluateAt(m *bdd.Manager, f bdd.NodeID, vars []bdd.NodeID, v []bool) bdd.NodeID {
	for i, x := range vars {
		if v[i] {
			f = m.CofactorTrue(f, x)
		} else {
			f = m.CofactorFalse(f, x)
		}
	}
	return f
}

// IsReachable reports whether the state v is in the currently computed
// reachable set, triggering computation if it is not current. v must have
// exactly stateSize entries.
func (a *Analyzer) IsReachable(v []bool) (bool, error) {
	if len(v) != a.stateSize {
		return false, fmt.Errorf("%w: expected %d bits, got %d", ErrInputShape, a.stateSize, len(v))
	}
	a.computeReachableStates()
	return evaluateAt(a.mgr, a.reachable, a.states, v) == a.mgr.True(), nil
}

// StateDistance returns the minimum number of transitions needed to first
// enter state v from the initial state, or -1 if v is never reached. It
// re-runs the fixed-point loop from scratch, testing membership of v in
// each frontier before advancing, so the initial state itself has distance
// 0. v must have exactly stateSize entries.
func (a *Analyzer) StateDistance(v []bool) (int, error) {
	if len(v) != a.stateSize {
		return 0, fmt.Errorf("%w: expected %d bits, got %d", ErrInputShape, a.stateSize, len(v))
	}
	m := a.mgr
	tau := a.buildTransitionRelation()

	c := a.init
	d := 0
	for {
		if evaluateAt(m, c, a.states, v) == m.True() {
			return d, nil
		}
		next := m.Or2(c, a.image(c, tau))
		if next == c {
			return -1, nil
		}
		c = next
		d++
	}
}
