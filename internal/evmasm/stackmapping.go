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

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/theblockbrain/ai-safeguard/internal/evmasm/num"
)

// SlotKind tags the three-way variant a stack slot can hold (spec §9:
// "implementations should use a tagged sum"; avoided a sentinel value by
// giving Unknown its own Kind instead of overloading Literal/BackRef).
type SlotKind int

const (
	KindUnknown SlotKind = iota
	KindLiteral
	KindBackRef
)

// StackSlot is one element of a StackMapping's Pushed sequence: a known
// 256-bit literal, a back-reference into the caller's preexisting stack, or
// an unknown value (spec §3).
type StackSlot struct {
	Kind    SlotKind
	Literal []byte // valid iff Kind == KindLiteral; big-endian, <= 32 bytes
	BackRef int    // valid iff Kind == KindBackRef
}

func LiteralSlot(b []byte) StackSlot { return StackSlot{Kind: KindLiteral, Literal: b} }
func BackRefSlot(k int) StackSlot    { return StackSlot{Kind: KindBackRef, BackRef: k} }
func UnknownSlot() StackSlot         { return StackSlot{Kind: KindUnknown} }

// UsageTag categorizes why a PUSHed value was consumed, for the operand
// normalization described in spec §4.D / §4.G.
type UsageTag string

const (
	ArithData UsageTag = "ArithData"
	BlockData UsageTag = "BlockData"
	LogicData UsageTag = "LogicData"
	MemData   UsageTag = "MemData"
	StorData  UsageTag = "StorData"
	BitData   UsageTag = "BitData"
)

type categoryRule struct {
	tag UsageTag
	ops map[string]bool
}

// categoryRules is iterated in a fixed order so that value_usage_type
// construction (and hence renderer output) is deterministic regardless of
// Go's randomized map iteration.
var categoryRules = []categoryRule{
	{ArithData, setOf("ADD", "MUL", "SUB", "EXP", "SIGNEXTEND")},
	{BlockData, setOf("BLOCKHASH", "COINBASE", "TIMESTAMP", "NUMBER")},
	{LogicData, setOf("LT", "GT", "SLT", "SGT", "EQ", "ISZERO")},
	{MemData, setOf("MLOAD")},
	{StorData, setOf("SLOAD")},
	{BitData, setOf("BYTE", "SHL", "SHR", "SAR", "AND", "OR", "XOR", "NOT")},
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// StackMapping is the per-block abstract-interpretation summary described
// in spec §3/§4.D. It is built once, by NewStackMapping, and is read-only
// thereafter.
type StackMapping struct {
	// NumPopped counts preexisting stack slots consumed beyond what the
	// block itself produces.
	NumPopped int

	// Pushed is the ordered sequence of slots this block leaves on top of
	// the stack, after NumPopped pops.
	Pushed []StackSlot

	// CreationOpIdx runs parallel to Pushed: the index into the block's Op
	// list that produced the slot, or nil if the slot is a carried-over
	// preexisting value (DUP/SWAP never "create" a value, spec §3).
	CreationOpIdx []*int

	// ValueUsageType maps an op index (one that created a Pushed slot) to
	// the deduplicated set of usage categories of its consumers.
	ValueUsageType map[int][]UsageTag
}

// NewStackMapping simulates ops over a symbolic stack and returns the
// resulting summary (spec §4.D).
func NewStackMapping(ops []Op) *StackMapping {
	sm := &StackMapping{ValueUsageType: make(map[int][]UsageTag)}
	for idx, op := range ops {
		sm.categorize(op)

		switch {
		case strings.HasPrefix(op.Name, "PUSH"):
			sm.pushCreated(LiteralSlot(op.Imm), idx)
		case op.Name == "POP":
			sm.pop()
		case strings.HasPrefix(op.Name, "DUP"):
			sm.dupN(parseSuffixInt(op.Name, "DUP"))
		case strings.HasPrefix(op.Name, "SWAP"):
			sm.swapN(parseSuffixInt(op.Name, "SWAP"))
		default:
			sm.miscOp(op, idx)
		}
	}
	return sm
}

func parseSuffixInt(s, prefix string) int {
	n := 0
	for _, c := range s[len(prefix):] {
		n = n*10 + int(c-'0')
	}
	return n
}

// categorize tags the creators of this op's input slots with the usage
// categories it matches, reading CreationOpIdx *before* this op's stack
// effect is simulated (its current top `op.Pops` entries are exactly the
// values this op is about to consume).
func (sm *StackMapping) categorize(op Op) {
	for _, rule := range categoryRules {
		if !rule.ops[op.Name] {
			continue
		}
		n := op.Pops
		if n > len(sm.CreationOpIdx) {
			n = len(sm.CreationOpIdx)
		}
		start := len(sm.CreationOpIdx) - n
		for i := start; i < len(sm.CreationOpIdx); i++ {
			if creator := sm.CreationOpIdx[i]; creator != nil {
				sm.addUsage(*creator, rule.tag)
			}
		}
	}
}

func (sm *StackMapping) addUsage(opIdx int, tag UsageTag) {
	for _, existing := range sm.ValueUsageType[opIdx] {
		if existing == tag {
			return
		}
	}
	sm.ValueUsageType[opIdx] = append(sm.ValueUsageType[opIdx], tag)
}

// pushCreated appends a slot that op opIdx produced itself.
func (sm *StackMapping) pushCreated(v StackSlot, opIdx int) {
	idx := opIdx
	sm.Pushed = append(sm.Pushed, v)
	sm.CreationOpIdx = append(sm.CreationOpIdx, &idx)
}

// pushCarried appends a slot sourced from the preexisting stack (no
// creator within this block).
func (sm *StackMapping) pushCarried(v StackSlot) {
	sm.Pushed = append(sm.Pushed, v)
	sm.CreationOpIdx = append(sm.CreationOpIdx, nil)
}

func (sm *StackMapping) pop() {
	if len(sm.Pushed) == 0 {
		sm.NumPopped++
		return
	}
	sm.Pushed = sm.Pushed[:len(sm.Pushed)-1]
	sm.CreationOpIdx = sm.CreationOpIdx[:len(sm.CreationOpIdx)-1]
}

func (sm *StackMapping) dupN(n int) {
	if n <= len(sm.Pushed) {
		v := sm.Pushed[len(sm.Pushed)-n]
		c := sm.CreationOpIdx[len(sm.CreationOpIdx)-n]
		sm.Pushed = append(sm.Pushed, v)
		sm.CreationOpIdx = append(sm.CreationOpIdx, c)
		return
	}
	k := n - len(sm.Pushed) - 1 + sm.NumPopped
	sm.pushCarried(BackRefSlot(k))
}

func (sm *StackMapping) swapN(n int) {
	if len(sm.Pushed) < n+1 {
		need := (n + 1) - len(sm.Pushed)
		for x := 0; x < need; x++ {
			sm.Pushed = append([]StackSlot{BackRefSlot(sm.NumPopped)}, sm.Pushed...)
			sm.CreationOpIdx = append([]*int{nil}, sm.CreationOpIdx...)
			sm.NumPopped++
		}
	}
	last := len(sm.Pushed) - 1
	other := last - n
	sm.Pushed[last], sm.Pushed[other] = sm.Pushed[other], sm.Pushed[last]
	sm.CreationOpIdx[last], sm.CreationOpIdx[other] = sm.CreationOpIdx[other], sm.CreationOpIdx[last]
}

// literalAt returns the k-th-from-top entry of Pushed as a 256-bit integer,
// iff it exists and is a Literal.
func (sm *StackMapping) literalAt(k int) (*uint256.Int, bool) {
	idx := len(sm.Pushed) - 1 - k
	if idx < 0 {
		return nil, false
	}
	slot := sm.Pushed[idx]
	if slot.Kind != KindLiteral {
		return nil, false
	}
	return num.FromBigEndian(slot.Literal), true
}

func (sm *StackMapping) miscOp(op Op, opIdx int) {
	folded, ok := sm.tryFold(op)
	for i := 0; i < op.Pops; i++ {
		sm.pop()
	}
	if ok {
		sm.pushCreated(LiteralSlot(folded), opIdx)
		return
	}
	for i := 0; i < op.Pushes; i++ {
		sm.pushCreated(UnknownSlot(), opIdx)
	}
}
