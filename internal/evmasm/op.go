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

import "fmt"

// Op is one decoded instruction, immutable once produced by Disassemble.
type Op struct {
	Addr   uint64
	Opcode byte
	Name   string
	Imm    []byte
	Size   int
	Pops   int
	Pushes int
}

// Disassemble decodes code into a flat instruction stream. It never fails:
// a truncated PUSH immediate at the end of the input is emitted as a
// best-effort partial Op and decoding halts there (spec §4.B); unassigned
// opcode bytes, and opcodes not yet introduced as of fork, decode to a
// zero-cost INVALID. The byte layout of the ops that do decode
// (PUSHn/DUPn/SWAPn/LOGn) never changes across forks -- only which bytes
// are recognized at all does.
func Disassemble(code []byte, fork Fork) []Op {
	var ops []Op
	pos := 0
	for pos < len(code) {
		addr := uint64(pos)
		b := code[pos]
		info := lookupOp(b, fork)

		if info.immSize > 0 {
			end := pos + 1 + info.immSize
			if end > len(code) {
				// Truncated PUSH: take what remains and halt (spec §4.B).
				imm := append([]byte(nil), code[pos+1:]...)
				ops = append(ops, Op{
					Addr:   addr,
					Opcode: b,
					Name:   info.name,
					Imm:    imm,
					Size:   1 + len(imm),
					Pops:   info.pops,
					Pushes: info.pushes,
				})
				break
			}
			imm := append([]byte(nil), code[pos+1:end]...)
			ops = append(ops, Op{
				Addr:   addr,
				Opcode: b,
				Name:   info.name,
				Imm:    imm,
				Size:   info.immSize + 1,
				Pops:   info.pops,
				Pushes: info.pushes,
			})
			pos = end
			continue
		}

		ops = append(ops, Op{
			Addr:   addr,
			Opcode: b,
			Name:   info.name,
			Size:   1,
			Pops:   info.pops,
			Pushes: info.pushes,
		})
		pos++
	}
	return ops
}

// FormatListing renders a flat, one-line-per-op disassembly text, the
// supplemented feature from original_source/CFG_Builder/main.py's optional
// disassembly output.
func FormatListing(ops []Op) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for _, op := range ops {
		fmt.Fprintf(buf, "%06x: %s", op.Addr, op.Name)
		if len(op.Imm) > 0 {
			fmt.Fprintf(buf, " 0x%x", op.Imm)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
