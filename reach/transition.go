// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import "github.com/symbexec/robdd/bdd"

// buildTransitionRelation builds the monolithic transition relation
//
//	tau(s, s') = AND_i (s'_i <-> delta_i(s, x))
//
// by repeated Xnor2/And2, grounded in milner_test.go's construction of its
// transition relation as a disjunction/conjunction of per-component BDDs.
// Inputs x remain free in tau; they are existentially quantified during
// image computation, not here.
func (a *Analyzer) buildTransitionRelation() bdd.NodeID {
	m := a.mgr
	tau := m.True()
	for i := 0; i < a.stateSize; i++ {
		conjunct := m.Xnor2(a.nextStates[i], a.delta[i])
		tau = m.And2(tau, conjunct)
	}
	return tau
}
