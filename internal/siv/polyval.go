// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package siv

import "encoding/binary"

// fieldElement is an element of GF(2^128) in POLYVAL byte order: bit i of
// the little-endian 128-bit integer (lo, hi) is the coefficient of x^i.
type fieldElement struct {
	lo, hi uint64
}

// reduction is x^-1 applied to the low bit of the modulus
// x^128 + x^127 + x^126 + x^121 + 1, i.e. bits 127, 126, 125 and 120.
const reduction = 1<<63 | 1<<62 | 1<<61 | 1<<56

func loadElement(b []byte) fieldElement {
	return fieldElement{
		lo: binary.LittleEndian.Uint64(b[:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

func (e fieldElement) store(b []byte) {
	binary.LittleEndian.PutUint64(b[:8], e.lo)
	binary.LittleEndian.PutUint64(b[8:16], e.hi)
}

func (e fieldElement) xor(o fieldElement) fieldElement {
	return fieldElement{lo: e.lo ^ o.lo, hi: e.hi ^ o.hi}
}

// mulXInv multiplies e by x^-1. Branch free.
func (e fieldElement) mulXInv() fieldElement {
	mask := -(e.lo & 1)
	return fieldElement{
		lo: e.lo>>1 | e.hi<<63,
		hi: e.hi>>1 ^ mask&reduction,
	}
}

// dot returns a·b·x^-128, the POLYVAL product. Each set bit i of b adds a
// and the accumulator is then shifted by x^-1; after 128 rounds the term
// for bit i has been multiplied by x^(i-128).
func dot(a, b fieldElement) fieldElement {
	var r fieldElement
	for i := uint(0); i < 64; i++ {
		mask := -((b.lo >> i) & 1)
		r.lo ^= a.lo & mask
		r.hi ^= a.hi & mask
		r = r.mulXInv()
	}
	for i := uint(0); i < 64; i++ {
		mask := -((b.hi >> i) & 1)
		r.lo ^= a.lo & mask
		r.hi ^= a.hi & mask
		r = r.mulXInv()
	}
	return r
}

// polyval accumulates POLYVAL(H, X_1, ..., X_n) over 16-byte blocks.
type polyval struct {
	h fieldElement
	s fieldElement
}

func newPolyval(key []byte) *polyval {
	return &polyval{h: loadElement(key)}
}

// update absorbs data, zero padding the trailing partial block. Padding is
// applied per call, which is what AES-GCM-SIV needs for AAD and plaintext.
func (p *polyval) update(data []byte) {
	for len(data) >= blockSize {
		p.s = dot(p.s.xor(loadElement(data)), p.h)
		data = data[blockSize:]
	}
	if len(data) > 0 {
		var block [blockSize]byte
		copy(block[:], data)
		p.s = dot(p.s.xor(loadElement(block[:])), p.h)
	}
}

func (p *polyval) sum(out []byte) {
	p.s.store(out)
}
