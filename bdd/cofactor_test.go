// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/symbexec/robdd/bdd"
)

func TestCofactorOnOwnVariable(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	f := m.And2(a, b)

	assert.Equal(t, b, m.CofactorTrue(f, a))
	assert.Equal(t, m.False(), m.CofactorFalse(f, a))
}

func TestCofactorAbsentVariable(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")
	f := m.And2(a, b)

	// c does not appear in f, so both cofactors return f unchanged.
	assert.Equal(t, f, m.CofactorTrue(f, c))
	assert.Equal(t, f, m.CofactorFalse(f, c))
}

func TestCofactorOnConstant(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")

	assert.Equal(t, m.True(), m.CofactorTrue(m.True(), a))
	assert.Equal(t, m.False(), m.CofactorFalse(m.False(), a))
}

func TestShannonExpansionIdentity(t *testing.T) {
	m := bdd.NewManager()
	a := m.CreateVar("a")
	b := m.CreateVar("b")
	c := m.CreateVar("c")
	f := m.Or2(m.And2(a, b), m.Neg(c))

	// f == ite(a, f|a=1, f|a=0)
	rebuilt := m.ITE(a, m.CofactorTrue(f, a), m.CofactorFalse(f, a))
	assert.Equal(t, f, rebuilt)
}
