package replay

import "encoding/binary"

// Cursor is a forward-only little-endian reader. A failed read returns
// ErrShortRead and leaves the position unchanged.
type Cursor struct {
	b   []byte
	off int
}

func NewCursor(b []byte) *Cursor { return &Cursor{b: b} }

func (c *Cursor) Remaining() int { return len(c.b) - c.off }

func (c *Cursor) Pos() int { return c.off }

func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, ErrShortRead
	}
	out := c.b[c.off : c.off+n : c.off+n]
	c.off += n
	return out, nil
}

func (c *Cursor) Skip(n int) error {
	_, err := c.Take(n)
	return err
}

// SkipN advances count blocks of size bytes each.
func (c *Cursor) SkipN(count uint32, size int) error {
	total := uint64(count) * uint64(size)
	if total > uint64(c.Remaining()) {
		return ErrShortRead
	}
	return c.Skip(int(total))
}

func (c *Cursor) U8() (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) U16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) U32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) U64() (uint64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// Rest returns the unread bytes without advancing.
func (c *Cursor) Rest() []byte { return c.b[c.off:] }

// PatchPrev overwrites the byte just before the cursor.
func (c *Cursor) PatchPrev(v byte) error {
	if c.off == 0 {
		return ErrShortRead
	}
	c.b[c.off-1] = v
	return nil
}
