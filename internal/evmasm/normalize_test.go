// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package evmasm

import "testing"

// TestNormalizedTextUnfoldedAdd covers an ADD that is not folded because only
// one of its operands is a literal.
func TestNormalizedTextUnfoldedAdd(t *testing.T) {
	ops := Disassemble([]byte{0x5b, 0x60, 0x01, 0x01, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)
	b, ok := blocks[0]
	if !ok {
		t.Fatal("missing block at 0")
	}

	want := "# 0x0\nJUMPDEST\nPUSHX ArithData\nADD\nSTOP\n"
	if got := b.NormalizedText(); got != want {
		t.Errorf("NormalizedText() = %q, want %q", got, want)
	}
}

// TestNormalizedTextFoldedAdd covers an ADD folded from two literal operands: both
// operand PUSHes are tagged ArithData even after folding.
func TestNormalizedTextFoldedAdd(t *testing.T) {
	ops := Disassemble([]byte{0x60, 0x01, 0x60, 0x02, 0x01, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)
	b, ok := blocks[0]
	if !ok {
		t.Fatal("missing block at 0")
	}

	want := "# 0x0\nPUSHX ArithData\nPUSHX ArithData\nADD\nSTOP\n"
	if got := b.NormalizedText(); got != want {
		t.Errorf("NormalizedText() = %q, want %q", got, want)
	}
}

func TestNormalizedTextDropsDupSwapPop(t *testing.T) {
	// PUSH1 1; DUP1; SWAP1; POP; STOP
	ops := Disassemble([]byte{0x60, 0x01, 0x80, 0x90, 0x50, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)
	b := blocks[0]

	want := "# 0x0\nPUSHX Data\nSTOP\n"
	if got := b.NormalizedText(); got != want {
		t.Errorf("NormalizedText() = %q, want %q", got, want)
	}
}

func TestNormalizedTextCollapsesLog(t *testing.T) {
	// PUSH1 0; PUSH1 0; LOG0; STOP
	ops := Disassemble([]byte{0x60, 0x00, 0x60, 0x00, 0xa0, 0x00}, DefaultFork)
	blocks := SegmentBlocks(ops)
	b := blocks[0]

	want := "# 0x0\nPUSHX Data\nPUSHX Data\nLOGX\nSTOP\n"
	if got := b.NormalizedText(); got != want {
		t.Errorf("NormalizedText() = %q, want %q", got, want)
	}
}

func TestPushCategoryAmbiguousIsData(t *testing.T) {
	sm := &StackMapping{ValueUsageType: map[int][]UsageTag{0: {ArithData, BitData}}}
	if got := pushCategory(0, sm); got != "Data" {
		t.Errorf("pushCategory with 2 tags = %q, want Data", got)
	}
}

func TestPushCategoryNoTagsIsData(t *testing.T) {
	sm := &StackMapping{ValueUsageType: map[int][]UsageTag{}}
	if got := pushCategory(0, sm); got != "Data" {
		t.Errorf("pushCategory with 0 tags = %q, want Data", got)
	}
}
