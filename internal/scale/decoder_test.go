package scale

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestCompactU64Modes(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"single zero", []byte{0x00}, 0},
		{"single max", []byte{0xfc}, 63},
		{"two-byte min", []byte{0x01, 0x01}, 64},
		{"two-byte max", []byte{0xfd, 0xff}, 16383},
		{"four-byte min", []byte{0x02, 0x00, 0x01, 0x00}, 16384},
		{"four-byte max", []byte{0xfe, 0xff, 0xff, 0xff}, 1<<30 - 1},
		{"big four", []byte{0x03, 0x00, 0x00, 0x00, 0x40}, 1 << 30},
		{"big u64 max", []byte{0x13, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, ^uint64(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(tc.in, 0)
			got, err := d.CompactU64()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
			if d.Remaining() != 0 {
				t.Fatalf("expected input consumed, %d bytes left", d.Remaining())
			}
		})
	}
}

func TestCompactRejectsNonCanonical(t *testing.T) {
	cases := [][]byte{
		{0x01, 0x00},
		{0x02, 0x00, 0x00, 0x00},
		{0x03, 0xff, 0xff, 0xff, 0x00},
		{0x03, 0x00, 0x00, 0x00, 0x01},
	}
	for _, in := range cases {
		_, err := NewDecoder(in, 0).CompactU64()
		if !errors.Is(err, ErrInvalidCompact) {
			t.Fatalf("input %x: expected ErrInvalidCompact, got %v", in, err)
		}
	}
}

func TestCompactU32RejectsWideValues(t *testing.T) {
	in := []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x01}
	_, err := NewDecoder(in, 0).CompactU32()
	if !errors.Is(err, ErrInvalidCompact) {
		t.Fatalf("expected ErrInvalidCompact, got %v", err)
	}
}

func TestCompactU128(t *testing.T) {
	in := append([]byte{0x33}, make([]byte, 16)...)
	in[16] = 0x01
	got, err := NewDecoder(in, 0).CompactU128()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 120)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestCompactTruncated(t *testing.T) {
	_, err := NewDecoder([]byte{0x01}, 0).CompactU64()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestFixedWidthIntegersAreLittleEndian(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x00, 0x00, 0x00, 0x02, 0, 0, 0, 0, 0, 0, 0x80}, 0)
	u32, err := d.U32()
	if err != nil || u32 != 1 {
		t.Fatalf("u32: got %d err=%v", u32, err)
	}
	u64, err := d.U64()
	if err != nil || u64 != 0x8000000000000002 {
		t.Fatalf("u64: got %x err=%v", u64, err)
	}
}

func TestLengthRejectsOversizedCollections(t *testing.T) {
	// claims 5 elements, only 2 bytes follow
	_, err := NewDecoder([]byte{0x14, 0xaa, 0xbb}, 0).Length()
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestByteVecBounds(t *testing.T) {
	in := []byte{0x0c, 'a', 'b', 'c'}
	got, err := NewDecoder(in, 0).ByteVec(0)
	if err != nil {
		t.Fatalf("unbounded: %v", err)
	}
	if !bytes.Equal(got, []byte("abc")) {
		t.Fatalf("unexpected bytes: %q", got)
	}
	_, err = NewDecoder(in, 0).ByteVec(2)
	if !errors.Is(err, ErrTooManyItems) {
		t.Fatalf("expected ErrTooManyItems, got %v", err)
	}
}

func TestVariantBoolOption(t *testing.T) {
	d := NewDecoder([]byte{0x02, 0x03}, 0)
	if v, err := d.Variant("Thing", 3); err != nil || v != 2 {
		t.Fatalf("variant: got %d err=%v", v, err)
	}
	if _, err := d.Variant("Thing", 3); !errors.Is(err, ErrInvalidDiscriminant) {
		t.Fatalf("expected ErrInvalidDiscriminant, got %v", err)
	}

	if _, err := NewDecoder([]byte{0x02}, 0).Bool(); !errors.Is(err, ErrInvalidBool) {
		t.Fatalf("expected ErrInvalidBool, got %v", err)
	}
	if some, err := NewDecoder([]byte{0x01}, 0).Option(); err != nil || !some {
		t.Fatalf("option: got %v err=%v", some, err)
	}
	if _, err := NewDecoder([]byte{0x05}, 0).Option(); !errors.Is(err, ErrInvalidDiscriminant) {
		t.Fatalf("expected ErrInvalidDiscriminant, got %v", err)
	}
}

func TestDescendEnforcesMaxDepth(t *testing.T) {
	d := NewDecoder(nil, 2)
	if err := d.Descend(); err != nil {
		t.Fatalf("depth 1: %v", err)
	}
	if err := d.Descend(); err != nil {
		t.Fatalf("depth 2: %v", err)
	}
	if err := d.Descend(); !errors.Is(err, ErrDepthLimit) {
		t.Fatalf("expected ErrDepthLimit, got %v", err)
	}
	d.Ascend()
	if d.Depth() != 1 {
		t.Fatalf("unexpected depth: %d", d.Depth())
	}

	unbounded := NewDecoder(nil, 0)
	for i := 0; i < 1000; i++ {
		if err := unbounded.Descend(); err != nil {
			t.Fatalf("unbounded descend %d: %v", i, err)
		}
	}
}

func TestFinishAndSpan(t *testing.T) {
	d := NewDecoder([]byte{1, 2, 3}, 0)
	if err := d.Skip(2); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if span := d.Span(0); !bytes.Equal(span, []byte{1, 2}) {
		t.Fatalf("unexpected span: %x", span)
	}
	if err := d.Finish(); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("expected ErrTrailingBytes, got %v", err)
	}
	if _, err := d.U8(); err != nil {
		t.Fatalf("u8: %v", err)
	}
	if err := d.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
}

func captureKey(t *testing.T, in []byte, step Step) []byte {
	t.Helper()
	d := NewDecoder(in, 0)
	key, err := d.Capture(step)
	if err != nil {
		t.Fatalf("capture %x: %v", in, err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("capture %x left %d bytes", in, d.Remaining())
	}
	return key
}

func TestCaptureKeysOrderLikeValues(t *testing.T) {
	named := Struct(Bytes(0), SkipU8)
	cases := []struct {
		name        string
		step        Step
		lower, high []byte
	}{
		{"compact numeric", SkipCompact32, []byte{0x08}, []byte{0x01, 0x01}},
		{"u32 numeric", SkipU32, []byte{0xff, 0, 0, 0}, []byte{0, 1, 0, 0}},
		{"u128 high word", SkipCompact128, []byte{0x13, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0x17, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{"variant first", Enum("E", SkipCompact32, nil), []byte{0x00, 0x01, 0x01}, []byte{0x01}},
		{"none before some", Optional(SkipU8), []byte{0x00}, []byte{0x01, 0x00}},
		{"prefix before longer", named, []byte{0x04, 'a', 0xff}, []byte{0x08, 'a', 0x00, 0x00}},
		{"embedded zero", named, []byte{0x08, 'a', 0x00, 0xff}, []byte{0x08, 'a', 0x01, 0x00}},
		{"vector elements", Vec(0, SkipU8), []byte{0x04, 0x05}, []byte{0x08, 0x05, 0x00}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo := captureKey(t, tc.lower, tc.step)
			hi := captureKey(t, tc.high, tc.step)
			if bytes.Compare(lo, hi) >= 0 {
				t.Fatalf("expected key %x < %x", lo, hi)
			}
		})
	}
	if !bytes.Equal(captureKey(t, []byte{0x01, 0x01}, SkipCompact32), captureKey(t, []byte{0x01, 0x01}, SkipCompact32)) {
		t.Fatalf("equal values must have equal keys")
	}
}

func TestCaptureNestsIntoOuterKey(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02}, 0)
	var inner []byte
	outer, err := d.Capture(func(d *Decoder) error {
		if err := SkipU8(d); err != nil {
			return err
		}
		k, err := d.Capture(SkipU8)
		inner = k
		return err
	})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !bytes.Equal(inner, []byte{0x02}) || !bytes.Equal(outer, []byte{0x01, 0x02}) {
		t.Fatalf("unexpected keys inner=%x outer=%x", inner, outer)
	}
}

func TestSortedVec(t *testing.T) {
	ascending := SortedVec(3, func(d *Decoder) (uint8, error) { return d.U8() }, func(prev, next uint8) bool { return prev < next })

	if err := ascending(NewDecoder([]byte{0x0c, 1, 2, 3}, 0)); err != nil {
		t.Fatalf("sorted: %v", err)
	}
	if err := ascending(NewDecoder([]byte{0x08, 2, 2}, 0)); !errors.Is(err, ErrUnordered) {
		t.Fatalf("expected ErrUnordered, got %v", err)
	}
	if err := ascending(NewDecoder([]byte{0x10, 1, 2, 3, 4}, 0)); !errors.Is(err, ErrTooManyItems) {
		t.Fatalf("expected ErrTooManyItems, got %v", err)
	}
	if err := ascending(NewDecoder([]byte{0x08, 1}, 0)); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}
