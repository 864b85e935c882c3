// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Neg returns the negation (!a) of a.
func (m *Manager) Neg(a NodeID) NodeID {
	return m.ite(a, False, True)
}

// And2 returns the logical and of a and b.
func (m *Manager) And2(a, b NodeID) NodeID {
	return m.ite(a, b, False)
}

// Or2 returns the logical or of a and b.
func (m *Manager) Or2(a, b NodeID) NodeID {
	return m.ite(a, True, b)
}

// Xor2 returns the logical exclusive-or of a and b.
func (m *Manager) Xor2(a, b NodeID) NodeID {
	return m.ite(a, m.Neg(b), b)
}

// Nand2 returns the negation of the logical and of a and b.
func (m *Manager) Nand2(a, b NodeID) NodeID {
	return m.ite(a, m.Neg(b), True)
}

// Nor2 returns the negation of the logical or of a and b.
func (m *Manager) Nor2(a, b NodeID) NodeID {
	return m.ite(a, False, m.Neg(b))
}

// Xnor2 returns the logical bi-implication (equivalence) of a and b.
func (m *Manager) Xnor2(a, b NodeID) NodeID {
	return m.ite(a, b, m.Neg(b))
}

// Implies returns the logical implication a -> b.
func (m *Manager) Implies(a, b NodeID) NodeID {
	return m.ite(a, b, True)
}

// And returns the conjunction of a sequence of nodes (True if empty).
func (m *Manager) And(ns ...NodeID) NodeID {
	res := True
	for _, n := range ns {
		res = m.And2(res, n)
	}
	return res
}

// Or returns the disjunction of a sequence of nodes (False if empty).
func (m *Manager) Or(ns ...NodeID) NodeID {
	res := False
	for _, n := range ns {
		res = m.Or2(res, n)
	}
	return res
}
