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

package cfg

import (
	"fmt"
	"sort"

	"github.com/emicklei/dot"
)

const anywhereLabel = "[anywhere]"

// RenderDOT serializes g as a Graphviz DOT document (spec §6: "the consumer
// chooses a serialization (DOT is the expected one)").
func RenderDOT(g *Graph) string {
	out := dot.NewGraph(dot.Directed)
	out.Attr("rankdir", "TB")

	nodes := make(map[uint64]dot.Node, len(g.Nodes))
	for _, addr := range sortedAddrs(g.Nodes) {
		n := out.Node(fmt.Sprintf("block_%x", addr))
		n.Attr("shape", "box").Attr("label", g.Nodes[addr])
		nodes[addr] = n
	}

	var anywhere dot.Node
	var anywhereCreated bool
	if g.HasAnywhere() {
		anywhere = out.Node("anywhere")
		anywhere.Attr("shape", "diamond").Attr("label", anywhereLabel)
		anywhereCreated = true
	}

	for _, e := range g.Edges {
		from, ok := nodes[e.From]
		if !ok {
			continue
		}
		to, ok := nodes[e.To]
		if !ok {
			continue
		}
		out.Edge(from, to)
	}

	if anywhereCreated {
		for _, addr := range sortedAnywhere(g.Anywhere) {
			if from, ok := nodes[addr]; ok {
				out.Edge(from, anywhere)
			}
		}
	}

	return out.String()
}

func sortedAddrs(m map[uint64]string) []uint64 {
	addrs := make([]uint64, 0, len(m))
	for a := range m {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

func sortedAnywhere(m map[uint64]bool) []uint64 {
	addrs := make([]uint64, 0, len(m))
	for a := range m {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
