package scale

import "fmt"

// Step decodes one value and discards it. Steps let schema walkers describe
// operand layouts declaratively when only validation and length matter.
type Step func(*Decoder) error

// Sequence runs steps in order and stops at the first error.
func Sequence(d *Decoder, steps ...Step) error {
	for _, step := range steps {
		if err := step(d); err != nil {
			return err
		}
	}
	return nil
}

func SkipU8(d *Decoder) error {
	_, err := d.U8()
	return err
}

func SkipU32(d *Decoder) error {
	_, err := d.U32()
	return err
}

func SkipU64(d *Decoder) error {
	_, err := d.U64()
	return err
}

func SkipBool(d *Decoder) error {
	_, err := d.Bool()
	return err
}

func SkipCompact32(d *Decoder) error {
	_, err := d.CompactU32()
	return err
}

func SkipCompact64(d *Decoder) error {
	_, err := d.CompactU64()
	return err
}

func SkipCompact128(d *Decoder) error {
	_, err := d.CompactU128()
	return err
}

// Fixed skips an n-byte array.
func Fixed(n int) Step {
	return func(d *Decoder) error {
		_, err := d.Array(n)
		return err
	}
}

// Bytes skips a length-prefixed byte vector of at most max bytes.
func Bytes(max int) Step {
	return func(d *Decoder) error {
		_, err := d.ByteVec(max)
		return err
	}
}

// Optional skips an Option whose inner value is decoded by step.
func Optional(step Step) Step {
	return func(d *Decoder) error {
		some, err := d.Option()
		if err != nil || !some {
			return err
		}
		return step(d)
	}
}

// Vec skips a length-prefixed collection of at most max items (max <= 0
// means unbounded).
func Vec(max int, step Step) Step {
	return func(d *Decoder) error {
		n, err := d.Length()
		if err != nil {
			return err
		}
		if max > 0 && n > max {
			return fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, max)
		}
		for i := 0; i < n; i++ {
			d.emit(1)
			if err := step(d); err != nil {
				return err
			}
		}
		d.emit(0)
		return nil
	}
}

// SortedVec is Vec for collections whose items must appear in order. item
// decodes one element into a comparable form and inOrder reports whether
// next may follow prev.
func SortedVec[K any](max int, item func(*Decoder) (K, error), inOrder func(prev, next K) bool) Step {
	return func(d *Decoder) error {
		n, err := d.Length()
		if err != nil {
			return err
		}
		if max > 0 && n > max {
			return fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, max)
		}
		var prev K
		for i := 0; i < n; i++ {
			d.emit(1)
			k, err := item(d)
			if err != nil {
				return err
			}
			if i > 0 && !inOrder(prev, k) {
				return fmt.Errorf("%w: item %d", ErrUnordered, i)
			}
			prev = k
		}
		d.emit(0)
		return nil
	}
}

// Enum skips a tagged union. variants[i] decodes the payload of
// discriminant i; a nil entry means the variant carries no payload.
func Enum(name string, variants ...Step) Step {
	return func(d *Decoder) error {
		v, err := d.Variant(name, len(variants))
		if err != nil {
			return err
		}
		if step := variants[v]; step != nil {
			return step(d)
		}
		return nil
	}
}

// Struct skips the listed fields in order.
func Struct(fields ...Step) Step {
	return func(d *Decoder) error {
		return Sequence(d, fields...)
	}
}
