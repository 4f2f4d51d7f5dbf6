package replay

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"yrp-lite/card"
	"yrp-lite/duel"
	"yrp-lite/ocgcore"
)

type recordingEncoder struct {
	seen   [][]byte
	result func(buf []byte) ocgcore.Result
}

func (e *recordingEncoder) EncodeOne(_ ocgcore.Context, buf []byte) ocgcore.Result {
	e.seen = append(e.seen, append([]byte(nil), buf...))
	if e.result != nil {
		return e.result(buf)
	}
	return ocgcore.Result{State: ocgcore.StateSwallowed, BytesRead: len(buf)}
}

func TestDecodeMessages_EncoderSeesNumberThenBody(t *testing.T) {
	buf := (&builder{}).frame(0x01, 0xaa, 0xbb, 0xcc).frame(0x02, 0x10).bytes()
	enc := &recordingEncoder{}
	msgs, err := DecodeMessages(buf, enc, duel.NewMirror())
	if err != nil {
		t.Fatalf("DecodeMessages err: %v", err)
	}
	want := [][]byte{{0x01, 0xaa, 0xbb, 0xcc}, {0x02, 0x10}}
	if diff := cmp.Diff(want, enc.seen); diff != "" {
		t.Fatalf("encoder input mismatch (-want +got):\n%s", diff)
	}
	if msgs.Frames != 2 || msgs.Inner != nil {
		t.Fatalf("expected 2 frames and no nested replay, got %+v", msgs)
	}
}

func TestDecodeMessages_SentinelEndsStream(t *testing.T) {
	inner := []byte("yrp1 nested replay bytes")
	body := append(append([]byte(nil), inner...), 0x00)
	buf := (&builder{}).
		frame(0x02, 1, 2, 3).
		frame(ocgcore.MsgOldReplayMode, body...).
		frame(0x09, 0xff).
		bytes()
	enc := &recordingEncoder{}
	msgs, err := DecodeMessages(buf, enc, duel.NewMirror())
	if err != nil {
		t.Fatalf("DecodeMessages err: %v", err)
	}
	if !bytes.Equal(msgs.Inner, inner) {
		t.Fatalf("expected nested region %q, got %q", inner, msgs.Inner)
	}
	if len(enc.seen) != 1 {
		t.Fatalf("frames after the sentinel must not be encoded, saw %d", len(enc.seen))
	}
}

func TestDecodeMessages_StreamAccountsForEveryByte(t *testing.T) {
	inner := make([]byte, 37)
	w := (&builder{}).frame(0x02, 1, 2).frame(0x03).frame(0x04, 9, 9, 9, 9)
	w.frame(ocgcore.MsgOldReplayMode, append(inner, 0)...)
	buf := w.bytes()
	enc := &recordingEncoder{}
	msgs, err := DecodeMessages(buf, enc, duel.NewMirror())
	if err != nil {
		t.Fatalf("DecodeMessages err: %v", err)
	}
	total := len(msgs.Inner) + frameHeaderSize + 1
	for _, seen := range enc.seen {
		total += len(seen) + frameHeaderSize - 1
	}
	if total != len(buf) {
		t.Fatalf("frames cover %d bytes, payload has %d", total, len(buf))
	}
}

func TestDecodeMessages_UnknownOpcode(t *testing.T) {
	buf := (&builder{}).frame(0x09, 1).bytes()
	enc := &recordingEncoder{result: func([]byte) ocgcore.Result { return ocgcore.Result{State: ocgcore.StateUnknown} }}
	_, err := DecodeMessages(buf, enc, duel.NewMirror())
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("expected unknown opcode, got %v", err)
	}
	if err.Error() != "Encountered unknown core message number: 9" {
		t.Fatalf("unexpected diagnostic %q", err.Error())
	}
}

func TestDecodeMessages_LengthMismatch(t *testing.T) {
	buf := (&builder{}).frame(0x02, 1, 2).bytes()
	enc := &recordingEncoder{result: func(b []byte) ocgcore.Result {
		return ocgcore.Result{State: ocgcore.StateSwallowed, BytesRead: len(b) - 1}
	}}
	if _, err := DecodeMessages(buf, enc, duel.NewMirror()); !errors.Is(err, ErrFrameLengthMismatch) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
}

func TestDecodeMessages_TruncatedFrame(t *testing.T) {
	buf := append((&builder{}).frame(0x02, 1).bytes(), 0x02, 0x00, 0x00)
	if _, err := DecodeMessages(buf, &recordingEncoder{}, duel.NewMirror()); !errors.Is(err, ErrTruncatedFrame) {
		t.Fatalf("expected truncated frame, got %v", err)
	}
	// A size running past the end leaves the encoder short of the body.
	buf = (&builder{}).u8(0x02).u32(10).raw([]byte{1, 2}).bytes()
	if _, err := DecodeMessages(buf, &recordingEncoder{}, duel.NewMirror()); !errors.Is(err, ErrFrameLengthMismatch) {
		t.Fatalf("expected length mismatch for oversized frame, got %v", err)
	}
	buf = (&builder{}).u8(ocgcore.MsgOldReplayMode).u32(10).raw([]byte{1, 2}).bytes()
	if _, err := DecodeMessages(buf, &recordingEncoder{}, duel.NewMirror()); !errors.Is(err, ErrTruncatedFrame) {
		t.Fatalf("expected truncated sentinel, got %v", err)
	}
}

func TestDecodeMessages_MirrorsBoardAndSuppressesRepeats(t *testing.T) {
	w := &builder{}
	w.frame(ocgcore.MsgStart, (&builder{}).u8(0).u32(8000).u32(8000).u16(3).u16(0).u16(3).u16(0).bytes()...)
	w.frame(ocgcore.MsgDraw, (&builder{}).u8(0).u32(1).u32(4242).u32(uint32(card.PositionFaceUpAttack)).bytes()...)
	update := (&builder{}).u8(0).u8(uint8(card.LocationHand)).
		u16(8).u32(ocgcore.QueryCode).u32(4242).
		u16(8).u32(ocgcore.QueryAttack).u32(1000).
		u16(4).u32(ocgcore.QueryEnd).bytes()
	w.frame(ocgcore.MsgUpdateData, update...)
	w.frame(ocgcore.MsgUpdateData, update...)
	w.frame(ocgcore.MsgHint, 1, 2, 3)

	m := duel.NewMirror()
	msgs, err := DecodeMessages(w.bytes(), ocgcore.NewEncoder(), m)
	if err != nil {
		t.Fatalf("DecodeMessages err: %v", err)
	}
	if len(msgs.Replay.Stream) != 4 {
		t.Fatalf("expected 4 archived blocks, got %d", len(msgs.Replay.Stream))
	}
	first := msgs.Replay.Stream[2].Msg.Queries[0].Data
	if first.Code == nil {
		t.Fatalf("expected the first query to keep its code")
	}
	second := msgs.Replay.Stream[3].Msg.Queries[0].Data
	if second.Code != nil || second.Atk != nil {
		t.Fatalf("expected repeated query fields cleared, got %+v", second)
	}
	if m.PileSize(0, card.LocationHand) != 1 || m.PileSize(0, card.LocationDeck) != 2 {
		t.Fatalf("unexpected pile sizes after draw")
	}
}
