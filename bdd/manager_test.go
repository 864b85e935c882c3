// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symbexec/robdd/bdd"
)

func TestConstants(t *testing.T) {
	m := bdd.NewManager()
	assert.Equal(t, bdd.NodeID(0), m.False())
	assert.Equal(t, bdd.NodeID(1), m.True())
	assert.True(t, m.IsConstant(m.True()))
	assert.True(t, m.IsConstant(m.False()))
	assert.False(t, m.IsVariable(m.True()))
	assert.False(t, m.IsVariable(m.False()))
}

func TestCreateVarInvariant(t *testing.T) {
	m := bdd.NewManager()
	before := m.UniqueTableSize()
	v := m.CreateVar("x")
	assert.True(t, m.IsVariable(v))
	assert.Equal(t, v, m.TopVar(v))
	assert.Equal(t, m.True(), m.High(v))
	assert.Equal(t, m.False(), m.Low(v))
	assert.Greater(t, m.UniqueTableSize(), before, "UniqueTableSize must strictly increase after CreateVar")
}

func TestUniqueTableSizeMonotone(t *testing.T) {
	m := bdd.NewManager()
	prev := m.UniqueTableSize()
	for i := 0; i < 10; i++ {
		m.CreateVar("")
		cur := m.UniqueTableSize()
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestCommutativity(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")

	assert.Equal(t, m.And2(a, b), m.And2(b, a))
	assert.Equal(t, m.Or2(a, b), m.Or2(b, a))
	assert.Equal(t, m.Xor2(a, b), m.Xor2(b, a))
	assert.Equal(t, m.Xnor2(a, b), m.Xnor2(b, a))
	assert.Equal(t, m.Nand2(a, b), m.Nand2(b, a))
	assert.Equal(t, m.Nor2(a, b), m.Nor2(b, a))
}

func TestInvolution(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	f := m.Xor2(a, b)
	assert.Equal(t, f, m.Neg(m.Neg(f)))
	assert.Equal(t, m.True(), m.Neg(m.False()))
	assert.Equal(t, m.False(), m.Neg(m.True()))
}

func TestConstantTruthTables(t *testing.T) {
	m := bdd.NewManager()
	T, F := m.True(), m.False()

	type binop func(a, b bdd.NodeID) bdd.NodeID
	ops := map[string]binop{
		"and":  m.And2,
		"or":   m.Or2,
		"xor":  m.Xor2,
		"xnor": m.Xnor2,
	}
	expected := map[string][2][2]bdd.NodeID{
		"and":  {{F, F}, {F, T}},
		"or":   {{F, T}, {T, T}},
		"xor":  {{F, T}, {T, F}},
		"xnor": {{T, F}, {F, T}},
	}
	inputs := [2]bdd.NodeID{F, T}
	for name, op := range ops {
		want := expected[name]
		for i, a := range inputs {
			for j, b := range inputs {
				got := op(a, b)
				assert.Equalf(t, want[i][j], got, "%s(%v,%v)", name, a == T, b == T)
			}
		}
	}
}

func TestIteReductionLaws(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")

	assert.Equal(t, b, m.ITE(a, b, b))
	assert.Equal(t, b, m.ITE(m.True(), b, c))
	assert.Equal(t, c, m.ITE(m.False(), b, c))
	assert.Equal(t, a, m.ITE(a, m.True(), m.False()))
}

func TestCanonicity(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")

	// (a & b) | (a & c) == a & (b | c), built via two different derivations.
	lhs := m.Or2(m.And2(a, b), m.And2(a, c))
	rhs := m.And2(a, m.Or2(b, c))
	assert.Equal(t, lhs, rhs)

	// De Morgan: !(a & b) == !a | !b
	lhs2 := m.Neg(m.And2(a, b))
	rhs2 := m.Or2(m.Neg(a), m.Neg(b))
	assert.Equal(t, lhs2, rhs2)
}

func TestFindNodesAndVars(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	f := m.And2(a, b)

	nodes := make(map[bdd.NodeID]struct{})
	m.FindNodes(f, nodes)
	require.Contains(t, nodes, m.True())
	require.Contains(t, nodes, m.False())
	require.Contains(t, nodes, f)

	vars := make(map[bdd.NodeID]struct{})
	m.FindVars(f, vars)
	assert.Subset(t, keys(nodes), keys(vars))
	for v := range vars {
		assert.Equal(t, v, m.TopVar(v))
		assert.False(t, m.IsConstant(v))
	}
	// a is f's top variable but not itself a node of f's DAG, so only b is
	// collected.
	assert.NotContains(t, vars, a)
	assert.Contains(t, vars, b)
}

func keys(m map[bdd.NodeID]struct{}) []bdd.NodeID {
	ks := make([]bdd.NodeID, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}
