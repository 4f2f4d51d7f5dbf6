package ocgcore

import "encoding/binary"

// reader walks a message body. Once a read runs past the end every later
// read returns zero and short stays set.
type reader struct {
	b     []byte
	off   int
	short bool
}

func (r *reader) take(n int) []byte {
	if r.short || n < 0 || len(r.b)-r.off < n {
		r.short = true
		return nil
	}
	out := r.b[r.off : r.off+n]
	r.off += n
	return out
}

func (r *reader) u8() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) u16() uint16 {
	if b := r.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (r *reader) u32() uint32 {
	if b := r.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *reader) u64() uint64 {
	if b := r.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (r *reader) i32() int32 { return int32(r.u32()) }

func (r *reader) remaining() int { return len(r.b) - r.off }

// consumed is the byte count reported back to the stream decoder. An
// overrun reports one byte past the end.
func (r *reader) consumed() int {
	if r.short {
		return len(r.b) + 1
	}
	return r.off
}
