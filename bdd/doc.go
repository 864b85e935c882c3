// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams (ROBDD), a
data structure for representing Boolean functions over a fixed, ordered set
of variables as a shared, canonical directed acyclic graph.

Each Manager owns its own node store and caches; variables are created with
CreateVar in the order the caller wants them to appear in the diagram
(earlier-created variables sit closer to the root). Most operations return a
NodeID, an opaque dense identifier with the fixed convention that 0 is the
constant False and 1 is the constant True.

Unlike the BuDDy-inspired implementation this package descends from, there is
no garbage collection, no dynamic variable reordering, and no complemented
edges: nodes live for the lifetime of the Manager and identifiers are never
reused. This keeps the manager a single, non-cooperative, single-goroutine
component, at the cost of memory that only grows.
*/
package bdd
