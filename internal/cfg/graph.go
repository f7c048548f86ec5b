// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Package cfg resolves a block map into a control-flow graph and renders it.
package cfg

// Edge is a directed edge between two block addresses (spec §6).
type Edge struct {
	From uint64
	To   uint64
}

// Graph is the abstract output value described in spec §6: per-block
// normalized text, the resolved edge list, and the set of blocks whose
// outgoing edge could not be resolved statically ("anywhere").
type Graph struct {
	Nodes    map[uint64]string
	Edges    []Edge
	Anywhere map[uint64]bool
}

// HasAnywhere reports whether the graph needs an `[anywhere]` sink node.
func (g *Graph) HasAnywhere() bool { return len(g.Anywhere) > 0 }
