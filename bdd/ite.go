// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// iteKey is the ITE memo-table lookup key: the input triple (i, t, e).
type iteKey struct {
	i, t, e NodeID
}

// ITE (if-then-else) returns the identifier of the function
// (i & t) | (!i & e), the universal ternary Boolean connective. It is the
// only operation in this package that allocates internal nodes; every
// derived connective (And2, Or2, ...) is a one-line reduction to ITE.
func (m *Manager) ITE(i, t, e NodeID) NodeID {
	return m.ite(i, t, e)
}

func (m *Manager) ite(i, t, e NodeID) NodeID {
	// Terminal simplifications (spec.md §4.1 step 1), checked in order.
	switch {
	case i == True:
		return t
	case i == False:
		return e
	case t == True && e == False:
		return i
	case t == e:
		return t
	}

	// Argument-normalizing rewrites (step 2): each maps an equivalent call
	// onto a simpler one, so that equivalent calls share a memo key.
	switch {
	case i == t:
		return m.ite(i, True, e)
	case i == e:
		return m.ite(i, t, False)
	case i == m.Neg(e):
		return m.ite(i, t, True)
	case i == m.Neg(t):
		return m.ite(i, False, e)
	}

	// Memo lookup (step 3).
	key := iteKey{i: i, t: t, e: e}
	if res, ok := m.memo[key]; ok {
		return res
	}

	// Shannon expansion on the minimal top variable among i, t, e (step 4).
	// Constants contribute +infinity, so they never become the splitting
	// variable.
	x := m.minTopVar(i, t, e)
	iHigh, iLow := m.restrict(i, x)
	tHigh, tLow := m.restrict(t, x)
	eHigh, eLow := m.restrict(e, x)

	rHigh := m.ite(iHigh, tHigh, eHigh)
	rLow := m.ite(iLow, tLow, eLow)

	// Reduction (step 5) and unique-table lookup / node creation (steps 6-7)
	// both happen inside makenode.
	res := m.makenode(x, rLow, rHigh)
	m.memo[key] = res
	return res
}

// minTopVar returns the smallest topVar among f, g, h, treating constants as
// +infinity (they never determine the splitting variable).
func (m *Manager) minTopVar(f, g, h NodeID) NodeID {
	best := NodeID(0)
	found := false
	for _, n := range [3]NodeID{f, g, h} {
		if m.IsConstant(n) {
			continue
		}
		tv := m.TopVar(n)
		if !found || tv < best {
			best = tv
			found = true
		}
	}
	return best
}

// restrict returns the (high, low) cofactors of f with respect to variable
// x: if f does not depend on x (f is constant, or its topVar is not x),
// both cofactors equal f unchanged.
func (m *Manager) restrict(f, x NodeID) (high, low NodeID) {
	if m.IsConstant(f) || m.TopVar(f) != x {
		return f, f
	}
	n := m.node(f)
	return n.high, n.low
}
