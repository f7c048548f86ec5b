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
	"encoding/binary"
	"sort"

	"github.com/theblockbrain/ai-safeguard/internal/evmasm"
	"github.com/theblockbrain/ai-safeguard/internal/evmasm/num"
)

// worklistItem is one pending (caller_stack, path) pair from spec §4.F.
type worklistItem struct {
	stack []evmasm.StackSlot
	path  []uint64
}

// resolverState threads the mutable sets the worklist loop reads and writes;
// kept as a struct rather than closures over named returns so addSuccessor
// stays a small, self-contained step function.
type resolverState struct {
	blocks     map[uint64]*evmasm.Block
	edges      map[Edge]bool
	anywhere   map[uint64]bool
	registered map[string]bool
	pending    []worklistItem
}

// Resolve runs the worklist CFG resolver of spec §4.F over blocks and
// renders the result as the abstract Graph value of spec §6. Resolve is
// total: an empty block map yields an empty Graph, and a block map with no
// block at address 0 yields a Graph whose Nodes hold every block but which
// has no edges and no anywhere entries (spec §7).
func Resolve(blocks map[uint64]*evmasm.Block) *Graph {
	g := &Graph{Nodes: make(map[uint64]string), Anywhere: make(map[uint64]bool)}
	for addr, b := range blocks {
		g.Nodes[addr] = b.NormalizedText()
	}

	if _, ok := blocks[0]; !ok {
		return g
	}

	st := &resolverState{
		blocks:     blocks,
		edges:      make(map[Edge]bool),
		anywhere:   make(map[uint64]bool),
		registered: make(map[string]bool),
	}
	entryPath := []uint64{0}
	st.registered[pathKey(entryPath)] = true
	st.pending = append(st.pending, worklistItem{path: entryPath})

	for len(st.pending) > 0 {
		item := st.pending[len(st.pending)-1]
		st.pending = st.pending[:len(st.pending)-1]
		st.step(item)
	}

	g.Anywhere = st.anywhere
	for e := range st.edges {
		g.Edges = append(g.Edges, e)
	}
	sort.Slice(g.Edges, func(i, j int) bool {
		if g.Edges[i].From != g.Edges[j].From {
			return g.Edges[i].From < g.Edges[j].From
		}
		return g.Edges[i].To < g.Edges[j].To
	})
	return g
}

// step implements one iteration of the worklist's "Step" rule (spec §4.F).
func (st *resolverState) step(item worklistItem) {
	addr := item.path[len(item.path)-1]
	b := st.blocks[addr]
	if b == nil {
		return
	}

	if b.CanJump {
		st.resolveJump(item, b)
	}
	if b.CanFallthrough {
		if _, ok := st.blocks[b.FallthroughAddr]; ok {
			st.addSuccessor(item.path, b, b.FallthroughAddr, item.stack)
		}
	}
}

func (st *resolverState) resolveJump(item worklistItem, b *evmasm.Block) {
	addr := item.path[len(item.path)-1]

	switch {
	case b.JumpDest != nil:
		if _, ok := st.blocks[*b.JumpDest]; ok {
			st.addSuccessor(item.path, b, *b.JumpDest, item.stack)
			return
		}

	case b.JumpDestStackIndex != nil:
		i := *b.JumpDestStackIndex
		if i < len(item.stack) {
			slot := item.stack[len(item.stack)-1-i]
			if slot.Kind == evmasm.KindLiteral {
				target := num.ToUint64Saturating(slot.Literal)
				if _, ok := st.blocks[target]; ok {
					st.addSuccessor(item.path, b, target, item.stack)
					return
				}
			}
		}
	}

	st.anywhere[addr] = true
}

// addSuccessor implements spec §4.F's add_successor.
func (st *resolverState) addSuccessor(path []uint64, from *evmasm.Block, to uint64, stack []evmasm.StackSlot) {
	st.edges[Edge{From: path[len(path)-1], To: to}] = true

	for _, a := range path {
		if a != to {
			continue
		}
		singleton := []uint64{to}
		key := pathKey(singleton)
		if !st.registered[key] {
			st.registered[key] = true
			st.pending = append(st.pending, worklistItem{path: singleton})
		}
		return
	}

	newPath := append(append([]uint64(nil), path...), to)
	key := pathKey(newPath)
	if st.registered[key] {
		return
	}
	st.registered[key] = true
	newStack := from.Mapping.ApplyMapping(stack)
	st.pending = append(st.pending, worklistItem{stack: newStack, path: newPath})
}

// pathKey renders a path as a fixed-width binary string suitable for use as
// a hash-set key (spec §4.F: "implementations should use hash-based set
// membership for registered_paths").
func pathKey(path []uint64) string {
	buf := make([]byte, 0, 8*len(path))
	var tmp [8]byte
	for _, addr := range path {
		binary.BigEndian.PutUint64(tmp[:], addr)
		buf = append(buf, tmp[:]...)
	}
	return string(buf)
}
