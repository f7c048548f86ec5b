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

package evmasm

import "github.com/theblockbrain/ai-safeguard/internal/evmasm/num"

// Block is a maximal straight-line basic block, produced once by
// SegmentBlocks and immutable thereafter (spec §3).
type Block struct {
	StartAddr       uint64
	Ops             []Op
	FallthroughAddr uint64
	CanJump         bool
	CanFallthrough  bool
	Mapping         *StackMapping

	// JumpDest is the statically known jump target, if any.
	JumpDest *uint64

	// JumpDestStackIndex is set when the jump target is not statically
	// known but is known to sit at a fixed depth (0 = topmost) in the
	// caller's stack as it enters this block (spec §4.E).
	JumpDestStackIndex *int
}

// SegmentBlocks partitions a flat Op stream into basic blocks keyed by
// start address (spec §4.C). Each Block's StackMapping is computed
// immediately, so the result is fully immutable on return.
func SegmentBlocks(ops []Op) map[uint64]*Block {
	blocks := make(map[uint64]*Block)

	var curOps []Op
	var curStart uint64
	var pos uint64

	finalize := func() {
		blocks[curStart] = newBlock(curStart, curOps)
		curOps = nil
	}

	for _, op := range ops {
		if op.Name == "JUMPDEST" && len(curOps) != 0 {
			finalize()
			curStart = pos
		}
		curOps = append(curOps, op)
		pos += uint64(op.Size)
		if IsTerminator(op.Name) {
			finalize()
			curStart = pos
		}
	}
	if len(curOps) > 0 {
		finalize()
	}
	return blocks
}

func newBlock(startAddr uint64, ops []Op) *Block {
	b := &Block{StartAddr: startAddr, Ops: ops}

	last := ops[len(ops)-1].Name
	b.CanFallthrough = CanFallthrough(last)
	b.CanJump = CanJump(last)

	ft := startAddr
	for _, op := range ops {
		ft += uint64(op.Size)
	}
	b.FallthroughAddr = ft

	b.Mapping = NewStackMapping(ops)

	if b.CanJump {
		deriveJumpTarget(b, ops)
	}
	return b
}

// deriveJumpTarget computes JumpDest / JumpDestStackIndex from a
// StackMapping over everything but the block's final JUMP/JUMPI (spec
// §3, §4.E): with that instruction excluded, the topmost remaining slot is
// exactly the value the jump will consume.
func deriveJumpTarget(b *Block, ops []Op) {
	aux := NewStackMapping(ops[:len(ops)-1])

	if len(aux.Pushed) == 0 {
		idx := aux.NumPopped
		b.JumpDestStackIndex = &idx
		return
	}

	top := aux.Pushed[len(aux.Pushed)-1]
	switch top.Kind {
	case KindBackRef:
		k := top.BackRef
		b.JumpDestStackIndex = &k
	case KindLiteral:
		addr := num.ToUint64Saturating(top.Literal)
		b.JumpDest = &addr
	case KindUnknown:
		// Neither field set: the destination is genuinely unresolvable
		// statically (spec §4.E).
	}
}
