// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import "github.com/symbexec/robdd/bdd"

// existVar implements existential quantification of a single variable,
// exactly as spec.md's glossary defines it: exists y. f = f|_{y=1} | f|_{y=0}.
func existVar(m *bdd.Manager, f, y bdd.NodeID) bdd.NodeID {
	return m.Or2(m.CofactorTrue(f, y), m.CofactorFalse(f, y))
}

// existVars existentially quantifies f over every variable in ys, in order.
func existVars(m *bdd.Manager, f bdd.NodeID, ys []bdd.NodeID) bdd.NodeID {
	for _, y := range ys {
		f = existVar(m, f, y)
	}
	return f
}

// image computes the set of states reachable in exactly one step from the
// states in c, given the transition relation tau. This follows the
// "fullest variant" resolution of spec.md §9's Open Question: quantify out
// both present-state and input variables, rename next-state to
// present-state variables via a biconditional conjunction followed by
// quantifying out the next-state variables (a stand-in for explicit
// substitution/relational composition), rather than the teacher's
// single-pass AndExist+Replace shortcut.
func (a *Analyzer) image(c bdd.NodeID, tau bdd.NodeID) bdd.NodeID {
	m := a.mgr

	// exists s, x . (c(s) & tau(s,x,s'))
	f := m.And2(c, tau)
	f = existVars(m, f, a.states)
	f = existVars(m, f, a.inputs)

	// rename s' -> s: conjoin with AND_i (s_i <-> s'_i), then quantify s'
	// out (relational composition).
	rename := m.True()
	for i := 0; i < a.stateSize; i++ {
		rename = m.And2(rename, m.Xnor2(a.states[i], a.nextStates[i]))
	}
	g := m.And2(f, rename)
	g = existVars(m, g, a.nextStates)

	return g
}
