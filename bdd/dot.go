// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT description of the DAG rooted at root to
// w: one line per node giving its identifier, a label, and a shape hint
// distinguishing terminals, variables, and internal nodes, then two lines
// per non-terminal node for the high ("1") and low ("0") edges. This is a
// thin collaborator, out of the ROBDD engine's core scope (spec.md §1,
// §6), kept for the benefit of external tooling that wants to visualize a
// function built with this package.
func (m *Manager) WriteDOT(w io.Writer, root NodeID) error {
	acc := make(map[NodeID]struct{})
	m.FindNodes(root, acc)

	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	for id := range acc {
		switch {
		case m.IsConstant(id):
			if _, err := fmt.Fprintf(w, "%d [shape=box, label=\"%s\"];\n", id, m.constLabel(id)); err != nil {
				return err
			}
		case m.IsVariable(id):
			if _, err := fmt.Fprintf(w, "%d [shape=ellipse, label=\"%s\"];\n", id, m.nodeLabel(id)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%d [shape=circle, label=\"%s\"];\n", id, m.nodeLabel(id)); err != nil {
				return err
			}
		}
		if m.IsConstant(id) {
			continue
		}
		n := m.node(id)
		if _, err := fmt.Fprintf(w, "%d -> %d [label=\"1\"];\n", id, n.high); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d -> %d [label=\"0\", style=dotted];\n", id, n.low); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func (m *Manager) constLabel(id NodeID) string {
	if id == True {
		return "True"
	}
	return "False"
}

func (m *Manager) nodeLabel(id NodeID) string {
	n := m.node(id)
	if n.label != "" {
		return n.label
	}
	return fmt.Sprintf("v%d", n.topVar)
}
