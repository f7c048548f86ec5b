// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package cfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderDOTContainsBlockNodes(t *testing.T) {
	g := resolve(t, []byte{0x60, 0x03, 0x56, 0x5b, 0x00})
	out := RenderDOT(g)

	require.Contains(t, out, "digraph")
	require.Contains(t, out, "block_0")
	require.Contains(t, out, "block_3")
	require.NotContains(t, out, "anywhere")
}

func TestRenderDOTIncludesAnywhereSink(t *testing.T) {
	g := resolve(t, []byte{0x60, 0x03, 0x56})
	out := RenderDOT(g)

	require.Contains(t, out, anywhereLabel)
	require.Contains(t, out, "block_0")
}

func TestRenderDOTSkipsEdgesToMissingNodes(t *testing.T) {
	g := &Graph{
		Nodes: map[uint64]string{0: "# 0x0\nSTOP\n"},
		Edges: []Edge{{From: 0, To: 99}},
	}
	out := RenderDOT(g)
	require.NotContains(t, out, "block_63", "99 in hex; should not reference an undeclared node")
}

func TestRenderDOTEmptyGraph(t *testing.T) {
	out := RenderDOT(&Graph{Nodes: map[uint64]string{}, Anywhere: map[uint64]bool{}})
	require.Contains(t, out, "digraph", "even an empty graph renders a valid digraph shell")
}

// TestRenderDOTRoundTripsScenarios renders the JUMPI and self-loop scenarios
// and checks the output parses back as well-formed DOT source (balanced
// braces, a digraph header) rather than asserting on emicklei/dot internals.
func TestRenderDOTRoundTripsScenarios(t *testing.T) {
	scenarios := map[string][]byte{
		"jumpi":    {0x60, 0x01, 0x60, 0x05, 0x57, 0x5b, 0x00},
		"selfloop": {0x5b, 0x60, 0x00, 0x56},
	}
	for name, code := range scenarios {
		code := code
		t.Run(name, func(t *testing.T) {
			g := resolve(t, code)
			require.NotPanics(t, func() { RenderDOT(g) })
			out := RenderDOT(g)
			require.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
			require.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
		})
	}
}

func TestHasAnywhere(t *testing.T) {
	g := &Graph{Anywhere: map[uint64]bool{}}
	require.False(t, g.HasAnywhere())

	g.Anywhere[5] = true
	require.True(t, g.HasAnywhere())
}
