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
	"fmt"
	"strings"
)

// NormalizedText renders b's body per spec §4.G: a "# <start_addr>" header
// line followed by one line per op, with PUSH/LOG collapsed to their
// family name and DUP/SWAP/POP dropped entirely. The result is what
// component H uses as a CFG node's label.
func (b *Block) NormalizedText() string {
	buf := getBuffer()
	defer putBuffer(buf)

	fmt.Fprintf(buf, "# 0x%x\n", b.StartAddr)
	for idx, op := range b.Ops {
		line, ok := normalizeOp(op, idx, b.Mapping)
		if !ok {
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// normalizeOp implements the per-op rewrite rules of spec §4.G.
func normalizeOp(op Op, idx int, sm *StackMapping) (string, bool) {
	switch {
	case strings.HasPrefix(op.Name, "LOG"):
		return "LOGX", true

	case strings.HasPrefix(op.Name, "PUSH"):
		return "PUSHX " + pushCategory(idx, sm), true

	case strings.HasPrefix(op.Name, "DUP"),
		strings.HasPrefix(op.Name, "SWAP"),
		op.Name == "POP":
		return "", false

	default:
		return op.Name, true
	}
}

// pushCategory resolves the <cat> placeholder of "PUSHX <cat>": the sole
// usage tag recorded for this op index if unambiguous, else "Data".
func pushCategory(opIdx int, sm *StackMapping) string {
	tags := sm.ValueUsageType[opIdx]
	if len(tags) == 1 {
		return string(tags[0])
	}
	return "Data"
}
