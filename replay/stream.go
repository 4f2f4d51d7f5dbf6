package replay

import (
	"github.com/rs/zerolog/log"

	"yrp-lite/duel"
	"yrp-lite/ocgcore"
)

// frameHeaderSize is the u8 message number plus the u32 body size.
const frameHeaderSize = 1 + 4

// Messages is the result of walking an outer message stream.
type Messages struct {
	Replay *duel.Replay
	// Inner is the nested replay carried by the OLD_REPLAY_MODE message,
	// nil when the stream ended without one.
	Inner  []byte
	Frames int
}

// DecodeMessages walks the frames in buf, feeding each encoded message
// through m. buf is modified in place: every frame's size field has its
// last byte overwritten with the message number so that the encoder sees
// the number directly followed by the body.
func DecodeMessages(buf []byte, enc ocgcore.Encoder, m *duel.Mirror) (Messages, error) {
	var out Messages
	cur := NewCursor(buf)
	for cur.Remaining() > 0 {
		if cur.Remaining() < frameHeaderSize {
			return out, ErrTruncatedFrame
		}
		t, _ := cur.U8()
		size, _ := cur.U32()
		if err := cur.PatchPrev(t); err != nil {
			return out, err
		}

		if t == ocgcore.MsgOldReplayMode {
			inner, err := innerRegion(cur, size)
			if err != nil {
				return out, err
			}
			out.Inner = inner
			log.Debug().Int("offset", cur.Pos()).Int("size", len(inner)).Msg("nested replay found")
			break
		}

		start := cur.Pos() - 1
		end := start + min(int(size)+1, cur.Remaining()+1)
		r := enc.EncodeOne(m, buf[start:end:end])
		switch r.State {
		case ocgcore.StateOK:
			m.Parse(r.Msg)
		case ocgcore.StateSwallowed:
		default:
			return out, unknownOpcode(t)
		}
		if r.BytesRead != int(size)+1 {
			log.Debug().
				Uint8("msg", t).
				Uint32("size", size).
				Int("read", r.BytesRead).
				Msg("message length mismatch")
			return out, ErrFrameLengthMismatch
		}
		if err := cur.Skip(r.BytesRead - 1); err != nil {
			return out, err
		}
		out.Frames++
		log.Trace().Str("msg", ocgcore.MsgDictionary[t]).Stringer("state", r.State).Msg("frame")
	}
	out.Replay = m.Replay()
	snap := m.Board().Snapshot()
	log.Debug().
		Int("frames", out.Frames).
		Int("blocks", len(out.Replay.Stream)).
		Int("xyz_left", len(m.LeftPlaces())).
		Uint32("turn", snap.Turn).
		Uint32("lp0", snap.Sides[0].LP).
		Uint32("lp1", snap.Sides[1].LP).
		Bool("ended", snap.Ended).
		Msg("message stream decoded")
	return out, nil
}

// innerRegion returns the size-1 bytes following the sentinel's number byte.
func innerRegion(cur *Cursor, size uint32) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	inner, err := cur.Take(int(size - 1))
	if err != nil {
		return nil, ErrTruncatedFrame
	}
	return inner, nil
}
