// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// CofactorTrue returns f restricted to x=1 (f|_{x=1}). If f is constant, or
// x does not appear in f (topVar(f) > x), or x is itself constant, it
// returns f unchanged.
func (m *Manager) CofactorTrue(f, x NodeID) NodeID {
	if m.IsConstant(f) || m.IsConstant(x) || m.TopVar(f) > m.TopVar(x) {
		return f
	}
	if m.TopVar(f) == m.TopVar(x) {
		return m.node(f).high
	}
	n := m.node(f)
	high := m.CofactorTrue(n.high, x)
	low := m.CofactorTrue(n.low, x)
	return m.ite(n.topVar, high, low)
}

// CofactorFalse returns f restricted to x=0 (f|_{x=0}), symmetric to
// CofactorTrue.
func (m *Manager) CofactorFalse(f, x NodeID) NodeID {
	if m.IsConstant(f) || m.IsConstant(x) || m.TopVar(f) > m.TopVar(x) {
		return f
	}
	if m.TopVar(f) == m.TopVar(x) {
		return m.node(f).low
	}
	n := m.node(f)
	high := m.CofactorFalse(n.high, x)
	low := m.CofactorFalse(n.low, x)
	return m.ite(n.topVar, high, low)
}
