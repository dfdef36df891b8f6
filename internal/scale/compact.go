package scale

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Compact integer modes, selected by the two low bits of the first byte.
const (
	compactSingle = 0b00
	compactTwo    = 0b01
	compactFour   = 0b10
	compactBig    = 0b11
)

func (d *Decoder) CompactU32() (uint32, error) {
	v, err := d.compactU32()
	if err != nil {
		return 0, err
	}
	d.emitUint(uint64(v), 4)
	return v, nil
}

func (d *Decoder) CompactU64() (uint64, error) {
	_, lo, err := d.compact(8)
	if err != nil {
		return 0, err
	}
	d.emitUint(lo, 8)
	return lo, nil
}

func (d *Decoder) CompactU128() (*big.Int, error) {
	hi, lo, err := d.compact(16)
	if err != nil {
		return nil, err
	}
	d.emitUint(hi, 8)
	d.emitUint(lo, 8)
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(lo)), nil
}

func (d *Decoder) compactU32() (uint32, error) {
	_, lo, err := d.compact(4)
	if err != nil {
		return 0, err
	}
	if lo > uint64(^uint32(0)) {
		return 0, fmt.Errorf("%w: overflows u32", ErrInvalidCompact)
	}
	return uint32(lo), nil
}

// compact decodes a compact integer of at most width bytes and returns it
// as a 128-bit value. Non-canonical encodings are rejected.
func (d *Decoder) compact(width int) (hi, lo uint64, err error) {
	b0, err := d.next()
	if err != nil {
		return 0, 0, err
	}
	switch b0 & 0b11 {
	case compactSingle:
		return 0, uint64(b0 >> 2), nil
	case compactTwo:
		b1, err := d.next()
		if err != nil {
			return 0, 0, err
		}
		v := uint64(b0)>>2 | uint64(b1)<<6
		if v <= 0x3f {
			return 0, 0, fmt.Errorf("%w: non-canonical two-byte value %d", ErrInvalidCompact, v)
		}
		return 0, v, nil
	case compactFour:
		rest, err := d.Bytes(3)
		if err != nil {
			return 0, 0, err
		}
		v := uint64(binary.LittleEndian.Uint32([]byte{b0, rest[0], rest[1], rest[2]})) >> 2
		if v <= 0x3fff {
			return 0, 0, fmt.Errorf("%w: non-canonical four-byte value %d", ErrInvalidCompact, v)
		}
		return 0, v, nil
	}

	n := int(b0>>2) + 4
	if n > width {
		return 0, 0, fmt.Errorf("%w: %d bytes exceeds width %d", ErrInvalidCompact, n, width)
	}
	raw, err := d.Bytes(n)
	if err != nil {
		return 0, 0, err
	}
	if raw[n-1] == 0 {
		return 0, 0, fmt.Errorf("%w: non-canonical %d-byte value", ErrInvalidCompact, n)
	}
	for i := 0; i < n; i++ {
		if i < 8 {
			lo |= uint64(raw[i]) << (8 * i)
		} else {
			hi |= uint64(raw[i]) << (8 * (i - 8))
		}
	}
	if n == 4 && lo <= 0x3fffffff {
		return 0, 0, fmt.Errorf("%w: non-canonical %d-byte value", ErrInvalidCompact, n)
	}
	return hi, lo, nil
}
