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
	"github.com/holiman/uint256"

	"github.com/theblockbrain/ai-safeguard/internal/evmasm/num"
)

var binaryFoldable = setOf(
	"ADD", "MUL", "SUB", "DIV", "SDIV", "MOD", "SMOD", "EXP", "SIGNEXTEND",
	"AND", "OR", "XOR", "BYTE", "SHL", "SHR", "SAR",
)

var ternaryFoldable = setOf("ADDMOD", "MULMOD")

// tryFold attempts constant folding for op against the current top of the
// symbolic stack, per spec §4.D. It never mutates sm; the caller pops the
// consumed operands itself regardless of the outcome.
func (sm *StackMapping) tryFold(op Op) ([]byte, bool) {
	switch {
	case op.Name == "NOT":
		x, ok := sm.literalAt(0)
		if !ok {
			return nil, false
		}
		return num.ToBigEndian32(num.Not(x)), true

	case binaryFoldable[op.Name]:
		lhs, ok1 := sm.literalAt(0) // top: first popped
		rhs, ok2 := sm.literalAt(1) // second: second popped
		if !ok1 || !ok2 {
			return nil, false
		}
		return foldBinary(op.Name, lhs, rhs), true

	case ternaryFoldable[op.Name]:
		a, ok1 := sm.literalAt(0)
		b, ok2 := sm.literalAt(1)
		c, ok3 := sm.literalAt(2)
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return foldTernary(op.Name, a, b, c), true
	}
	return nil, false
}

func foldBinary(name string, lhs, rhs *uint256.Int) []byte {
	var result *uint256.Int
	switch name {
	case "ADD":
		result = num.Add(lhs, rhs)
	case "MUL":
		result = num.Mul(lhs, rhs)
	case "SUB":
		result = num.Sub(lhs, rhs)
	case "DIV":
		result = num.Div(lhs, rhs)
	case "SDIV":
		result = num.SDiv(lhs, rhs)
	case "MOD":
		result = num.Mod(lhs, rhs)
	case "SMOD":
		result = num.SMod(lhs, rhs)
	case "EXP":
		result = num.Exp(lhs, rhs)
	case "SIGNEXTEND":
		result = num.SignExtend(lhs, rhs)
	case "AND":
		result = num.And(lhs, rhs)
	case "OR":
		result = num.Or(lhs, rhs)
	case "XOR":
		result = num.Xor(lhs, rhs)
	case "BYTE":
		result = num.Byte(lhs, rhs)
	case "SHL":
		result = num.Shl(lhs, rhs)
	case "SHR":
		result = num.Shr(lhs, rhs)
	case "SAR":
		result = num.Sar(lhs, rhs)
	default:
		return nil
	}
	return num.ToBigEndian32(result)
}

func foldTernary(name string, a, b, c *uint256.Int) []byte {
	var result *uint256.Int
	switch name {
	case "ADDMOD":
		result = num.AddMod(a, b, c)
	case "MULMOD":
		result = num.MulMod(a, b, c)
	default:
		return nil
	}
	return num.ToBigEndian32(result)
}

// ApplyMapping transforms a caller's stack into the stack after this
// block executes, per spec §4.D. It is deterministic and side-effect-free.
func (sm *StackMapping) ApplyMapping(stack []StackSlot) []StackSlot {
	s := stack
	if len(s) < sm.NumPopped {
		padded := make([]StackSlot, sm.NumPopped-len(s))
		for i := range padded {
			padded[i] = UnknownSlot()
		}
		s = append(padded, s...)
	}

	newStack := append([]StackSlot(nil), s[:len(s)-sm.NumPopped]...)
	for _, item := range sm.Pushed {
		if item.Kind == KindBackRef {
			if item.BackRef < len(s) {
				newStack = append(newStack, s[len(s)-1-item.BackRef])
			} else {
				newStack = append(newStack, UnknownSlot())
			}
			continue
		}
		newStack = append(newStack, item)
	}
	return newStack
}
