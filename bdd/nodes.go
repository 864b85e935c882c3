// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// NodeID is an opaque identifier for a node in a Manager. Identifiers are
// dense, monotonically assigned, and never reused within a Manager's
// lifetime. The two smallest identifiers are fixed: False is 0, True is 1.
type NodeID uint32

// False is the identifier of the constant false function.
const False NodeID = 0

// True is the identifier of the constant true function.
const True NodeID = 1

// node is the record stored for every allocated identifier: the cofactor
// when its top variable is 1 (high), when it is 0 (low), and the identifier
// of its decision variable (topVar). For the two constants all three fields
// equal the node's own identifier. For a freshly created variable, high is
// True, low is False, and topVar equals the node's own identifier; this is
// the invariant distinguishing a raw variable from an internal node.
type node struct {
	high   NodeID
	low    NodeID
	topVar NodeID
	label  string
}

// nodeKey is the unique-table lookup key: the triple (high, low, topVar).
// The invariant maintained by Manager is that, for any key with high != low,
// there is at most one identifier mapped to it.
type nodeKey struct {
	high   NodeID
	low    NodeID
	topVar NodeID
}
