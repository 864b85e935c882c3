// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

// computeReachableStates iterates C_{k+1} = C_k | Img(C_k), starting from
// C_0 = I, until C_{k+1} = C_k (NodeID equality suffices, by canonicity).
// Termination is guaranteed: the state space has at most 2^stateSize
// elements and the sequence is monotonically increasing. The result is
// memoized in a.reachable until the next SetTransitionFunctions/
// SetInitState call invalidates it.
func (a *Analyzer) computeReachableStates() {
	if a.reachableValid {
		return
	}
	m := a.mgr
	tau := a.buildTransitionRelation()

	c := a.init
	for {
		next := m.Or2(c, a.image(c, tau))
		if next == c {
			break
		}
		c = next
	}
	a.reachable = c
	a.reachableValid = true
}
