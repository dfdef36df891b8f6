package scale

import (
	"encoding/binary"
	"fmt"
)

// Decoder reads SCALE-encoded values from an in-memory buffer.
//
// Nesting is tracked explicitly with Descend/Ascend so callers decoding
// recursive types can bound depth independently of input size.
type Decoder struct {
	buf      []byte
	pos      int
	depth    int
	maxDepth int

	keying bool
	key    []byte
}

// NewDecoder returns a decoder over b. A maxDepth <= 0 disables the depth check.
func NewDecoder(b []byte, maxDepth int) *Decoder {
	return &Decoder{buf: b, maxDepth: maxDepth}
}

func (d *Decoder) Position() int {
	return d.pos
}

func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

func (d *Decoder) Depth() int {
	return d.depth
}

// Span returns a copy of the bytes consumed since start.
func (d *Decoder) Span(start int) []byte {
	if start < 0 || start > d.pos {
		return nil
	}
	out := make([]byte, d.pos-start)
	copy(out, d.buf[start:d.pos])
	return out
}

// Descend enters one nesting level.
func (d *Decoder) Descend() error {
	if d.maxDepth > 0 && d.depth >= d.maxDepth {
		return fmt.Errorf("%w: max=%d", ErrDepthLimit, d.maxDepth)
	}
	d.depth++
	return nil
}

func (d *Decoder) Ascend() {
	if d.depth > 0 {
		d.depth--
	}
}

// Finish reports ErrTrailingBytes when input remains unread.
func (d *Decoder) Finish() error {
	if n := d.Remaining(); n > 0 {
		return fmt.Errorf("%w: %d", ErrTrailingBytes, n)
	}
	return nil
}

// Bytes returns the next n bytes without copying. The bytes are not added
// to a Capture key; use Array for fixed-size values.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}
	if d.Remaining() < n {
		return nil, ErrTruncated
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

func (d *Decoder) Skip(n int) error {
	_, err := d.Bytes(n)
	return err
}

// Array reads an n-byte fixed-size array.
func (d *Decoder) Array(n int) ([]byte, error) {
	b, err := d.Bytes(n)
	if err != nil {
		return nil, err
	}
	d.emit(b...)
	return b, nil
}

func (d *Decoder) next() (byte, error) {
	if d.Remaining() < 1 {
		return 0, ErrTruncated
	}
	v := d.buf[d.pos]
	d.pos++
	return v, nil
}

func (d *Decoder) U8() (uint8, error) {
	v, err := d.next()
	if err != nil {
		return 0, err
	}
	d.emit(v)
	return v, nil
}

func (d *Decoder) U32() (uint32, error) {
	b, err := d.Bytes(4)
	if err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b)
	d.emitUint(uint64(v), 4)
	return v, nil
}

func (d *Decoder) U64() (uint64, error) {
	b, err := d.Bytes(8)
	if err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(b)
	d.emitUint(v, 8)
	return v, nil
}

func (d *Decoder) Bool() (bool, error) {
	v, err := d.next()
	if err != nil {
		return false, err
	}
	switch v {
	case 0, 1:
		d.emit(v)
		return v == 1, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrInvalidBool, v)
	}
}

// Option reads an Option tag and reports whether a value follows.
func (d *Decoder) Option() (bool, error) {
	v, err := d.next()
	if err != nil {
		return false, err
	}
	switch v {
	case 0, 1:
		d.emit(v)
		return v == 1, nil
	default:
		return false, fmt.Errorf("%w: option=%d", ErrInvalidDiscriminant, v)
	}
}

// Variant reads a u8 enum discriminant and checks it against the number of
// variants the named type defines.
func (d *Decoder) Variant(name string, variants int) (uint8, error) {
	v, err := d.next()
	if err != nil {
		return 0, err
	}
	if int(v) >= variants {
		return 0, fmt.Errorf("%w: %s=%d", ErrInvalidDiscriminant, name, v)
	}
	d.emit(v)
	return v, nil
}

// Length reads a compact collection length. Every element the callers of
// this package decode occupies at least one byte, so lengths larger than
// the remaining input are rejected before anything is allocated.
func (d *Decoder) Length() (int, error) {
	n, err := d.compactU32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidLength, n, d.Remaining())
	}
	return int(n), nil
}

// ByteVec reads a length-prefixed byte vector. A max <= 0 means unbounded.
func (d *Decoder) ByteVec(max int) ([]byte, error) {
	n, err := d.Length()
	if err != nil {
		return nil, err
	}
	if max > 0 && n > max {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, max)
	}
	b, err := d.Bytes(n)
	if err != nil {
		return nil, err
	}
	d.emitBytes(b)
	return b, nil
}
