package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"yrp-lite/card"
	"yrp-lite/duel"
	"yrp-lite/ocgcore"
)

var _ io.WriterTo = (*Result)(nil)

type countingSerializer struct{}

func (countingSerializer) Serialize(r *duel.Replay) ([]byte, error) {
	return []byte(fmt.Sprintf("blocks=%d", len(r.Stream))), nil
}

type mapNamer map[card.Code]string

func (m mapNamer) CardNames(codes []card.Code) (map[card.Code]string, error) {
	out := make(map[card.Code]string)
	for _, c := range codes {
		if n, ok := m[c]; ok {
			out[c] = n
		}
	}
	return out, nil
}

func innerReplay(t *testing.T) []byte {
	t.Helper()
	w := (&builder{}).u32(1).name("Alice").u32(1).name("Bob")
	w.u32(8000).u32(5).u32(1).u32(0x2a)
	w.codes(11, 12).codes(13)
	w.codes(21).codes()
	w.codes(99)
	w.u8(2).u8(1).u8(0).u8(1).u8(7)
	return wrap(t, headerSpec{
		magic:         MagicYRP1,
		version:       coreV10,
		flags:         FlagExtendedHeader,
		headerVersion: 1,
		duelSeed:      [4]uint64{0x1, 0x2, 0xabc, 0xffffffffffffffff},
	}, w.bytes(), true)
}

func outerReplay(t *testing.T, version, flags uint32, inner []byte) []byte {
	t.Helper()
	w := (&builder{}).u32(1).name("Alice").u32(1).name("Bob").u32(0x2a)
	w.frame(ocgcore.MsgStart, (&builder{}).u8(0).u32(8000).u32(8000).u16(2).u16(0).u16(1).u16(0).bytes()...)
	w.frame(ocgcore.MsgNewTurn, 0)
	w.frame(ocgcore.MsgWaiting)
	if inner != nil {
		w.frame(ocgcore.MsgOldReplayMode, append(append([]byte(nil), inner...), 0)...)
	}
	return wrap(t, headerSpec{magic: MagicYRPX, version: version, flags: flags, seed: 1700000000}, w.bytes(), true)
}

func allSections() Want {
	return WantNames | WantDate | WantDecks | WantDeckNames | WantDuelSeed | WantDuelOptions | WantDuelMsgs | WantDuelResponses
}

func TestExtract_AllSectionsInOrder(t *testing.T) {
	data := outerReplay(t, coreV10, 0, innerReplay(t))
	ex, err := Extract(data, Options{
		Want:       allSections(),
		Serializer: countingSerializer{},
		Location:   time.UTC,
		CardNamer:  mapNamer{11: "Ash Blossom", 13: "Accesscode Talker"},
	})
	if err != nil {
		t.Fatalf("Extract err: %v", err)
	}
	var out bytes.Buffer
	if _, err := ex.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo err: %v", err)
	}
	want := "Alice vs. Bob\n" +
		"Date: 2023-11-14 22:13:20\n" +
		"#main 11 12 #extra 13\n" +
		"#main 21 #extra\n" +
		"#rules 99\n" +
		"#main\nAsh Blossom\n12\n#extra\nAccesscode Talker\n" +
		"#main\n21\n#extra\n" +
		"Duel seed: 0x0000000000000001'0000000000000002'0000000000000abc'ffffffffffffffff\n" +
		"Duel options: 8000 5 1 42\n" +
		"blocks=2\n" +
		`{"responses":[[1,0],[7]]}` + "\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestExtract_NamesAndDateNeedNoStream(t *testing.T) {
	data := outerReplay(t, 9<<16, 0, nil)
	ex, err := Extract(data, Options{Want: WantNames | WantDate, Location: time.UTC})
	if err != nil {
		t.Fatalf("Extract err: %v", err)
	}
	if ex.Replay != nil {
		t.Fatalf("message stream decoded without being asked for")
	}
	if fmt.Sprint(ex.Team1, ex.Team2) != "[Alice] [Bob]" {
		t.Fatalf("unexpected names %v %v", ex.Team1, ex.Team2)
	}
}

func TestExtract_ResultIsWritable(t *testing.T) {
	data := outerReplay(t, 9<<16, 0, nil)
	res, err := Extract(data, Options{Want: WantNames, Location: time.UTC})
	if err != nil {
		t.Fatalf("Extract err: %v", err)
	}
	var out bytes.Buffer
	n, err := res.WriteTo(&out)
	if err != nil || n != int64(out.Len()) {
		t.Fatalf("WriteTo: n=%d len=%d err=%v", n, out.Len(), err)
	}
}

func TestExtract_Rejections(t *testing.T) {
	inner := innerReplay(t)
	cases := []struct {
		name string
		data []byte
		want Want
		err  error
	}{
		{"hand test", outerReplay(t, coreV10, FlagHandTest, inner), WantNames, ErrHandTestRejected},
		{"old core", outerReplay(t, 9<<16, 0, inner), WantDecks, ErrCoreTooOld},
		{"no nested replay", outerReplay(t, coreV10, 0, nil), WantDecks, ErrMissingInner},
		{"nested too small", outerReplay(t, coreV10, 0, inner[:BaseHeaderSize-1]), WantDuelSeed, ErrInnerTooSmall},
		{"not a replay", make([]byte, 8), WantNames, ErrTooSmall},
	}
	for _, tc := range cases {
		_, err := Extract(tc.data, Options{Want: tc.want, Serializer: countingSerializer{}})
		if !errors.Is(err, tc.err) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}

func TestExtract_MessagesWithoutNestedReplay(t *testing.T) {
	data := outerReplay(t, coreV10, 0, nil)
	ex, err := Extract(data, Options{Want: WantDuelMsgs, Serializer: countingSerializer{}})
	if err != nil {
		t.Fatalf("Extract err: %v", err)
	}
	if string(ex.Msgs) != "blocks=2" {
		t.Fatalf("unexpected serialized stream %q", ex.Msgs)
	}
}

func TestExtract_UncompressedNestedSizeMismatch(t *testing.T) {
	payload := (&builder{}).u32(0).u32(0).u32(8000).u32(5).u32(1).u32(0).bytes()
	inner := (&builder{}).header(headerSpec{magic: MagicYRP1, size: uint32(len(payload) + 1)}).raw(payload).bytes()
	data := outerReplay(t, coreV10, 0, inner)
	_, err := Extract(data, Options{Want: WantDuelOptions})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected size mismatch, got %v", err)
	}
	if err.Error() != "Yrp buffer size doesn't match header" {
		t.Fatalf("unexpected diagnostic %q", err.Error())
	}
}

func TestSeedLine_PlainHeader(t *testing.T) {
	got := seedLine(Header{Seed: 0xbeef})
	if got != "Duel seed: 0x000000000000beef\n" {
		t.Fatalf("unexpected seed line %q", got)
	}
}
