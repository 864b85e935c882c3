// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package reach implements symbolic reachability analysis for synchronous
finite-state machines on top of package bdd. An Analyzer represents the set
of states a machine can enter from an initial state as a Boolean function
(a node in a private bdd.Manager), computed as the least fixed point of
"start state or image of the current set". It also answers the minimum
number of transitions needed to first enter a given state.

An Analyzer owns its Manager exclusively: present-state, next-state, and
input variables are all created once, at construction, and never again.
Only the transition functions, the initial state, and the memoized
reachable set are mutable.
*/
package reach
