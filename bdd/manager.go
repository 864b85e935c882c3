// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Manager owns a node store and the caches used to build Reduced Ordered
// Binary Decision Diagrams. It is the sole authority on node identity: two
// calls that build the same Boolean function, by any derivation path,
// return the same NodeID (strong canonicity). A Manager is not safe for
// concurrent use from multiple goroutines; callers wanting parallelism
// should shard by Manager instance.
type Manager struct {
	nodes  []node             // dense node store, indexed by NodeID
	unique map[nodeKey]NodeID // hash-consing table: (high,low,topVar) -> id
	memo   map[iteKey]NodeID  // ITE memoization table, never evicted
	nvars  int                // number of variables created so far
}

// NewManager returns a fresh Manager with the two constant nodes already
// allocated and no variables.
func NewManager(opts ...Option) *Manager {
	c := defaultConfig()
	for _, o := range opts {
		o(c)
	}
	m := &Manager{
		nodes:  make([]node, 2, max(2, c.nodeHint)),
		unique: make(map[nodeKey]NodeID, c.nodeHint),
		memo:   make(map[iteKey]NodeID, c.memoHint),
	}
	// Constants: all three fields point back to the node's own identifier,
	// the sentinel encoding "terminal" (spec.md §3).
	m.nodes[False] = node{high: False, low: False, topVar: False, label: "False"}
	m.nodes[True] = node{high: True, low: True, topVar: True, label: "True"}
	return m
}

// True returns the identifier of the constant true function.
func (m *Manager) True() NodeID { return True }

// False returns the identifier of the constant false function.
func (m *Manager) False() NodeID { return False }

// From returns a constant NodeID from a boolean value.
func (m *Manager) From(v bool) NodeID {
	if v {
		return True
	}
	return False
}

// CreateVar allocates a fresh variable node and returns its identifier.
// Variables must be created in the order the caller wants them to appear in
// the diagram: earlier-created variables are higher (nearer the root).
// label is optional metadata, unused for correctness, and need not be
// unique.
func (m *Manager) CreateVar(label string) NodeID {
	id := NodeID(len(m.nodes))
	m.nodes = append(m.nodes, node{high: True, low: False, topVar: id, label: label})
	// Register the variable's own triple so that ITE results equal to the
	// bare variable resolve to this identifier instead of a duplicate.
	m.unique[nodeKey{high: True, low: False, topVar: id}] = id
	m.nvars++
	return id
}

// IsConstant returns true iff f is one of the two terminal nodes.
func (m *Manager) IsConstant(f NodeID) bool {
	return f == False || f == True
}

// IsVariable returns true iff f is an internal node whose topVar equals f
// itself, i.e. a variable created by CreateVar.
func (m *Manager) IsVariable(f NodeID) bool {
	if m.IsConstant(f) {
		return false
	}
	n := m.node(f)
	return n.topVar == f
}

// TopVar returns the stored top-variable field of f.
func (m *Manager) TopVar(f NodeID) NodeID {
	return m.node(f).topVar
}

// Label returns the optional label attached to f at creation, or "" if none
// was given or f is an internal node built by ITE. The two constants are
// labelled "False" and "True".
func (m *Manager) Label(f NodeID) string {
	return m.node(f).label
}

// High returns the literal high (true-branch) field of f, without
// recursing: callers must already know f's top variable is the variable
// they intend to cofactor on.
func (m *Manager) High(f NodeID) NodeID {
	return m.node(f).high
}

// Low returns the literal low (false-branch) field of f, without
// recursing.
func (m *Manager) Low(f NodeID) NodeID {
	return m.node(f).low
}

// UniqueTableSize returns the number of allocated nodes (including the two
// constants).
func (m *Manager) UniqueTableSize() int {
	return len(m.nodes)
}

// Varnum returns the number of variables created so far.
func (m *Manager) Varnum() int {
	return m.nvars
}

func (m *Manager) node(f NodeID) node {
	if int(f) >= len(m.nodes) {
		panic(fmt.Sprintf("bdd: unknown node identifier %d", f))
	}
	return m.nodes[f]
}

// makenode applies the reduction rule (return low directly when high==low)
// and otherwise performs hash-consing: looks up (high, low, topVar) in the
// unique table, returning the existing identifier if found, or allocating a
// fresh one and inserting it. This is the only function that allocates
// internal nodes (spec.md §4.1, step 7).
func (m *Manager) makenode(topVar NodeID, low, high NodeID) NodeID {
	if low == high {
		return low
	}
	key := nodeKey{high: high, low: low, topVar: topVar}
	if id, ok := m.unique[key]; ok {
		return id
	}
	id := NodeID(len(m.nodes))
	m.nodes = append(m.nodes, node{high: high, low: low, topVar: topVar})
	m.unique[key] = id
	return id
}
