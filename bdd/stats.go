// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Stats returns a short human-readable report about the Manager's tables,
// grounded in the teacher library's own Stats() report but trimmed of the
// free-list/garbage-collection fields that do not apply here (spec.md's
// non-goals exclude GC).
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Variables:  %d\n", m.nvars)
	res += fmt.Sprintf("Allocated:  %d\n", len(m.nodes))
	res += fmt.Sprintf("Unique:     %d\n", len(m.unique))
	res += fmt.Sprintf("ITE memo:   %d\n", len(m.memo))
	return res
}
