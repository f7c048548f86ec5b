// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package evmasm

import "testing"

// TestSegmentBlocksStopOnly covers a lone STOP block: a lone STOP
// forms a single block with no jump and no fallthrough.
func TestSegmentBlocksStopOnly(t *testing.T) {
	ops := Disassemble([]byte{0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b, ok := blocks[0]
	if !ok {
		t.Fatal("missing block at address 0")
	}
	if len(b.Ops) != 1 || b.Ops[0].Name != "STOP" {
		t.Errorf("block ops = %+v, want [STOP]", b.Ops)
	}
	if b.CanJump || b.CanFallthrough {
		t.Errorf("CanJump=%v CanFallthrough=%v, want both false", b.CanJump, b.CanFallthrough)
	}
}

// TestSegmentBlocksUnresolvedJump covers half of an unresolved-jump case:
// PUSH1 3; JUMP forms a single block whose jump_dest is statically known
// (3) even though no block happens to start there.
func TestSegmentBlocksUnresolvedJump(t *testing.T) {
	ops := Disassemble([]byte{0x60, 0x03, 0x56}, DefaultFork)
	blocks := SegmentBlocks(ops)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if !b.CanJump || b.CanFallthrough {
		t.Errorf("CanJump=%v CanFallthrough=%v, want true/false", b.CanJump, b.CanFallthrough)
	}
	if b.JumpDest == nil || *b.JumpDest != 3 {
		t.Fatalf("JumpDest = %v, want 3", b.JumpDest)
	}
	if b.FallthroughAddr != 3 {
		t.Errorf("FallthroughAddr = %d, want 3", b.FallthroughAddr)
	}
}

// TestSegmentBlocksResolvedJump is the other half of scenario 2: adding a
// JUMPDEST; STOP tail splits the stream into two blocks, {0, 3}.
func TestSegmentBlocksResolvedJump(t *testing.T) {
	ops := Disassemble([]byte{0x60, 0x03, 0x56, 0x5b, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %v", len(blocks), keysOf(blocks))
	}
	if _, ok := blocks[0]; !ok {
		t.Error("missing block at 0")
	}
	if _, ok := blocks[3]; !ok {
		t.Error("missing block at 3")
	}
	tail := blocks[3]
	if len(tail.Ops) != 2 || tail.Ops[0].Name != "JUMPDEST" || tail.Ops[1].Name != "STOP" {
		t.Errorf("tail ops = %+v, want [JUMPDEST, STOP]", tail.Ops)
	}
}

// TestSegmentBlocksJumpiFallsThrough covers PUSH1 1 (condition); PUSH1 5
// (destination); JUMPI; JUMPDEST; STOP. JUMPI both jumps (when the literal
// destination 5 matches the JUMPDEST's address) and falls through.
func TestSegmentBlocksJumpiFallsThrough(t *testing.T) {
	ops := Disassemble([]byte{0x60, 0x01, 0x60, 0x05, 0x57, 0x5b, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %v", len(blocks), keysOf(blocks))
	}
	head, ok := blocks[0]
	if !ok {
		t.Fatal("missing block at 0")
	}
	if !head.CanJump || !head.CanFallthrough {
		t.Errorf("CanJump=%v CanFallthrough=%v, want both true", head.CanJump, head.CanFallthrough)
	}
	if head.JumpDest == nil || *head.JumpDest != 5 {
		t.Fatalf("JumpDest = %v, want 5", head.JumpDest)
	}
	if head.FallthroughAddr != 5 {
		t.Errorf("FallthroughAddr = %d, want 5", head.FallthroughAddr)
	}
	if _, ok := blocks[5]; !ok {
		t.Error("missing block at 5")
	}
}

// TestSegmentBlocksSelfLoop covers a JUMPDEST that jumps to its own
// address.
func TestSegmentBlocksSelfLoop(t *testing.T) {
	ops := Disassemble([]byte{0x5b, 0x60, 0x00, 0x56}, DefaultFork)
	blocks := SegmentBlocks(ops)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.JumpDest == nil || *b.JumpDest != 0 {
		t.Fatalf("JumpDest = %v, want 0", b.JumpDest)
	}
	if b.CanFallthrough {
		t.Error("CanFallthrough = true, want false (block ends with JUMP)")
	}
}

func TestSegmentBlocksJumpdestSplitsOnlyWhenBufferNonempty(t *testing.T) {
	// A leading JUMPDEST must not spuriously finalize an empty block.
	ops := Disassemble([]byte{0x5b, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1: %v", len(blocks), keysOf(blocks))
	}
	if len(blocks[0].Ops) != 2 {
		t.Errorf("block 0 ops = %+v, want [JUMPDEST, STOP]", blocks[0].Ops)
	}
}

func TestSegmentBlocksUnresolvableJumpDestIndex(t *testing.T) {
	// JUMPDEST; JUMP: the block never pushes anything of its own, so the
	// destination is whatever sits at depth 0 of the caller's stack -- a
	// JumpDestStackIndex rather than a literal JumpDest.
	ops := Disassemble([]byte{0x5b, 0x56}, DefaultFork)
	blocks := SegmentBlocks(ops)
	b, ok := blocks[0]
	if !ok {
		t.Fatal("missing block at 0")
	}
	if b.JumpDest != nil {
		t.Errorf("JumpDest = %v, want nil", b.JumpDest)
	}
	if b.JumpDestStackIndex == nil || *b.JumpDestStackIndex != 0 {
		t.Fatalf("JumpDestStackIndex = %v, want pointer to 0", b.JumpDestStackIndex)
	}
}

func keysOf(blocks map[uint64]*Block) []uint64 {
	out := make([]uint64, 0, len(blocks))
	for k := range blocks {
		out = append(out, k)
	}
	return out
}
