package scale

// Capture runs step and returns an order-preserving key for the value it
// read. Comparing two keys with bytes.Compare orders the decoded values the
// way derived orderings on their types do: enums by variant then payload,
// structs field by field, integers numerically, byte vectors
// lexicographically with a shorter prefix first.
//
// Captures nest; an inner key is also part of the enclosing one.
func (d *Decoder) Capture(step Step) ([]byte, error) {
	outerKeying, outer := d.keying, d.key
	d.keying, d.key = true, nil
	err := step(d)
	key := d.key
	d.keying, d.key = outerKeying, outer
	if err != nil {
		return nil, err
	}
	d.emit(key...)
	return key, nil
}

func (d *Decoder) emit(b ...byte) {
	if d.keying {
		d.key = append(d.key, b...)
	}
}

// emitUint writes v big-endian in width bytes.
func (d *Decoder) emitUint(v uint64, width int) {
	if !d.keying {
		return
	}
	for i := width - 1; i >= 0; i-- {
		d.key = append(d.key, byte(v>>(8*i)))
	}
}

// emitBytes writes a variable-length byte string so that keys stay
// comparable when more fields follow: 0x00 is escaped as 0x00 0xff and the
// string ends with 0x00 0x00.
func (d *Decoder) emitBytes(b []byte) {
	if !d.keying {
		return
	}
	for _, c := range b {
		if c == 0 {
			d.key = append(d.key, 0x00, 0xff)
			continue
		}
		d.key = append(d.key, c)
	}
	d.key = append(d.key, 0x00, 0x00)
}
