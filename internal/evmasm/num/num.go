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

// Package num implements the exact 256-bit modular arithmetic that
// evmasm's constant-folding rules require (spec §4.D, §5, §9: "implementations
// must use a big-integer type ... fixed-width native integers are
// insufficient"). It is a thin, EVM-semantics layer over holiman/uint256,
// adapted from N42's internal/vm/safemath.go and internal/vm/pool.go.
package num

import (
	"math"
	"sync"

	"github.com/holiman/uint256"
)

// intPool backs Get/Put, the same shape as N42's Uint256Pool. The operator
// helpers below do not draw from it: each allocates its result with new.
var intPool = sync.Pool{
	New: func() interface{} {
		return new(uint256.Int)
	},
}

// Get returns a zeroed *uint256.Int from the pool.
func Get() *uint256.Int {
	v := intPool.Get().(*uint256.Int)
	v.Clear()
	return v
}

// Put returns v to the pool.
func Put(v *uint256.Int) {
	if v == nil {
		return
	}
	v.Clear()
	intPool.Put(v)
}

// FromBigEndian reads an unsigned, big-endian byte slice of at most 32
// bytes as a 256-bit integer (spec §3: Literal(bytes)).
func FromBigEndian(b []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(b)
}

// ToBigEndian32 renders x as the 32-byte big-endian literal that every
// folded constant must be (spec §4.D: "results are always 32-byte
// big-endian").
func ToBigEndian32(x *uint256.Int) []byte {
	arr := x.Bytes32()
	out := make([]byte, 32)
	copy(out, arr[:])
	return out
}

// Add, Mul, Sub, Div, Mod, AddMod, MulMod and Exp delegate straight to
// uint256, whose implementations already match the EVM yellow-paper
// semantics spec §4.D calls for (division/modulo by zero yields zero,
// AddMod/MulMod with modulus zero yields zero, Exp is computed mod 2^256).

func Add(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Add(a, b) }
func Mul(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Mul(a, b) }
func Sub(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Sub(a, b) }
func Div(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Div(a, b) }
func SDiv(a, b *uint256.Int) *uint256.Int {
	// uint256.SDiv already implements the MinInt256/-1 overflow case of
	// spec §4.D ("SDIV(-2^255, -1) = -2^255") without a special case here.
	return new(uint256.Int).SDiv(a, b)
}
func Mod(a, b *uint256.Int) *uint256.Int   { return new(uint256.Int).Mod(a, b) }
func SMod(a, b *uint256.Int) *uint256.Int  { return new(uint256.Int).SMod(a, b) }
func AddMod(a, b, m *uint256.Int) *uint256.Int {
	return new(uint256.Int).AddMod(a, b, m)
}
func MulMod(a, b, m *uint256.Int) *uint256.Int {
	return new(uint256.Int).MulMod(a, b, m)
}
func Exp(base, exp *uint256.Int) *uint256.Int { return new(uint256.Int).Exp(base, exp) }

func And(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).And(a, b) }
func Or(a, b *uint256.Int) *uint256.Int  { return new(uint256.Int).Or(a, b) }
func Xor(a, b *uint256.Int) *uint256.Int { return new(uint256.Int).Xor(a, b) }
func Not(a *uint256.Int) *uint256.Int    { return new(uint256.Int).Not(a) }

// Shl implements SHL: spec §4.D "SHL ... with shift >= 256 yield zero".
func Shl(shift, value *uint256.Int) *uint256.Int {
	if !shift.IsUint64() || shift.Uint64() >= 256 {
		return new(uint256.Int)
	}
	return new(uint256.Int).Lsh(value, uint(shift.Uint64()))
}

// Shr implements SHR: same >=256 rule as Shl, logical (unsigned) shift.
func Shr(shift, value *uint256.Int) *uint256.Int {
	if !shift.IsUint64() || shift.Uint64() >= 256 {
		return new(uint256.Int)
	}
	return new(uint256.Int).Rsh(value, uint(shift.Uint64()))
}

// Sar implements SAR: arithmetic (sign-preserving) shift. spec §4.D: shift
// >= 256 yields zero for a nonnegative operand, -1 (all-ones) for negative.
func Sar(shift, value *uint256.Int) *uint256.Int {
	if !shift.IsUint64() || shift.Uint64() >= 256 {
		result := new(uint256.Int)
		if value.Sign() < 0 {
			result.Not(result) // all-ones == -1 in two's complement
		}
		return result
	}
	return new(uint256.Int).SRsh(value, uint(shift.Uint64()))
}

// Byte implements BYTE: spec §4.D "BYTE(i, x) selects byte i of x counting
// from the most-significant, zero if i >= 32".
func Byte(index, value *uint256.Int) *uint256.Int {
	if !index.IsUint64() || index.Uint64() >= 32 {
		return new(uint256.Int)
	}
	arr := value.Bytes32()
	return new(uint256.Int).SetUint64(uint64(arr[index.Uint64()]))
}

// SignExtend implements SIGNEXTEND per the plain yellow-paper definition
// that spec §9's redesign flag calls for (replacing the source's off-by-one):
// given byte-width b and value x, if b >= 31 return x; else let
// t = 8*(b+1) - 1, treat bit t of x as the sign, and sign-extend to 256 bits.
func SignExtend(byteWidth, x *uint256.Int) *uint256.Int {
	if !byteWidth.IsUint64() || byteWidth.Uint64() >= 31 {
		return new(uint256.Int).Set(x)
	}
	b := byteWidth.Uint64()
	t := 8*(b+1) - 1 // index of the sign bit, 0 = least significant

	signBit := new(uint256.Int).Rsh(x, uint(t))
	signBit.And(signBit, uint256.NewInt(1))

	lowMask := maskLowBits(t + 1)
	result := new(uint256.Int).And(x, lowMask)
	if !signBit.IsZero() {
		highMask := new(uint256.Int).Not(lowMask)
		result.Or(result, highMask)
	}
	return result
}

// ToUint64Saturating interprets b as a big-endian integer and returns it as
// a uint64, saturating to math.MaxUint64 if it overflows -- mirroring
// N42's SafeUint256ToUint64 overflow-check pattern. Used when resolving a
// statically-known literal jump destination (spec §4.E): an
// out-of-range address can never match a real block's start address, so
// saturating rather than truncating avoids an accidental wraparound
// collision with a legitimate low address.
func ToUint64Saturating(b []byte) uint64 {
	v := FromBigEndian(b)
	if v.IsUint64() {
		return v.Uint64()
	}
	return math.MaxUint64
}

// maskLowBits returns a 256-bit value with the low n bits set, n in [0,256].
func maskLowBits(n uint64) *uint256.Int {
	if n >= 256 {
		return new(uint256.Int).Not(new(uint256.Int))
	}
	if n == 0 {
		return new(uint256.Int)
	}
	shifted := new(uint256.Int).Lsh(uint256.NewInt(1), uint(n))
	return new(uint256.Int).Sub(shifted, uint256.NewInt(1))
}
