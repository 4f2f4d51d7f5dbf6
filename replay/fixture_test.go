package replay

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/ulikunitz/xz/lzma"
)

// coreV10 packs core major version 10 the way the server writes it.
const coreV10 uint32 = 10 << 16

type builder struct{ b []byte }

func (w *builder) u8(v uint8) *builder   { w.b = append(w.b, v); return w }
func (w *builder) u16(v uint16) *builder { w.b = binary.LittleEndian.AppendUint16(w.b, v); return w }
func (w *builder) u32(v uint32) *builder { w.b = binary.LittleEndian.AppendUint32(w.b, v); return w }
func (w *builder) u64(v uint64) *builder { w.b = binary.LittleEndian.AppendUint64(w.b, v); return w }
func (w *builder) raw(p []byte) *builder { w.b = append(w.b, p...); return w }

func (w *builder) bytes() []byte { return w.b }

func (w *builder) name(s string) *builder {
	block := make([]byte, nameBlockSize)
	for i, u := range utf16.Encode([]rune(s)) {
		if 2*i+1 >= len(block) {
			break
		}
		binary.LittleEndian.PutUint16(block[2*i:], u)
	}
	return w.raw(block)
}

func (w *builder) codes(codes ...uint32) *builder {
	w.u32(uint32(len(codes)))
	for _, c := range codes {
		w.u32(c)
	}
	return w
}

// frame appends one on-disk message frame.
func (w *builder) frame(t uint8, body ...byte) *builder {
	return w.u8(t).u32(uint32(len(body))).raw(body)
}

type headerSpec struct {
	magic   uint32
	version uint32
	flags   uint32
	seed    uint32
	size    uint32
	props   [8]byte

	headerVersion uint64
	duelSeed      [4]uint64
}

func (w *builder) header(h headerSpec) *builder {
	w.u32(h.magic).u32(h.version).u32(h.flags).u32(h.seed).u32(h.size).u32(0).raw(h.props[:])
	if h.flags&FlagExtendedHeader != 0 {
		w.u64(h.headerVersion)
		for _, s := range h.duelSeed {
			w.u64(s)
		}
	}
	return w
}

// compress returns the raw LZMA1 stream of payload and the header props
// a recorder would store for it.
func compress(t *testing.T, payload []byte) ([8]byte, []byte) {
	t.Helper()
	var buf bytes.Buffer
	cfg := lzma.WriterConfig{SizeInHeader: true, Size: int64(len(payload)), EOSMarker: false}
	lw, err := cfg.NewWriter(&buf)
	if err != nil {
		t.Fatalf("lzma writer: %v", err)
	}
	if _, err := lw.Write(payload); err != nil {
		t.Fatalf("lzma write: %v", err)
	}
	if err := lw.Close(); err != nil {
		t.Fatalf("lzma close: %v", err)
	}
	raw := buf.Bytes()
	var props [8]byte
	copy(props[:5], raw[:5])
	return props, raw[lzmaHeaderSize:]
}

// wrap builds a complete replay file around payload.
func wrap(t *testing.T, h headerSpec, payload []byte, compressed bool) []byte {
	t.Helper()
	h.size = uint32(len(payload))
	body := payload
	if compressed {
		h.flags |= FlagCompressed
		h.props, body = compress(t, payload)
	}
	return (&builder{}).header(h).raw(body).bytes()
}
