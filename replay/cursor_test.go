package replay

import (
	"errors"
	"testing"
)

func TestCursor_LittleEndianReads(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f})
	u8, _ := c.U8()
	u16, _ := c.U16()
	u32, _ := c.U32()
	u64, _ := c.U64()
	if u8 != 0x01 || u16 != 0x0302 || u32 != 0x07060504 || u64 != 0x0f0e0d0c0b0a0908 {
		t.Fatalf("unexpected values %#x %#x %#x %#x", u8, u16, u32, u64)
	}
	if c.Pos() != 15 || c.Remaining() != 0 {
		t.Fatalf("expected cursor at end, pos=%d remaining=%d", c.Pos(), c.Remaining())
	}
}

func TestCursor_ShortReadKeepsPosition(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if _, err := c.U8(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.U32(); !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected short read, got %v", err)
	}
	if c.Pos() != 1 {
		t.Fatalf("failed read moved the cursor to %d", c.Pos())
	}
	if err := c.Skip(3); !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected short skip, got %v", err)
	}
	if err := c.SkipN(0xffffffff, 40); !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected short block skip, got %v", err)
	}
	if _, err := c.Take(-1); !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected negative take to fail, got %v", err)
	}
}

func TestCursor_SignedRead(t *testing.T) {
	c := NewCursor([]byte{0xff, 0xff, 0xff, 0xff})
	v, err := c.I32()
	if err != nil || v != -1 {
		t.Fatalf("expected -1, got %d (%v)", v, err)
	}
}

func TestCursor_PatchPrev(t *testing.T) {
	b := []byte{7, 1, 0, 0, 0}
	c := NewCursor(b)
	if err := c.PatchPrev(9); !errors.Is(err, ErrShortRead) {
		t.Fatalf("patching before the start must fail, got %v", err)
	}
	c.U8()
	c.U32()
	if err := c.PatchPrev(7); err != nil {
		t.Fatal(err)
	}
	if b[4] != 7 {
		t.Fatalf("expected byte 4 rewritten, got %v", b)
	}
}
