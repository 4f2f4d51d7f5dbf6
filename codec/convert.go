package codec

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"yrp-lite/card"
	"yrp-lite/duel"
)

func fieldOf(m protoreflect.Message, name string) protoreflect.FieldDescriptor {
	fd := m.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic(fmt.Sprintf("codec: %s has no field %s", m.Descriptor().Name(), name))
	}
	return fd
}

func setU32(m protoreflect.Message, name string, v uint32) {
	m.Set(fieldOf(m, name), protoreflect.ValueOfUint32(v))
}

func setI32(m protoreflect.Message, name string, v int32) {
	m.Set(fieldOf(m, name), protoreflect.ValueOfInt32(v))
}

func setEnum(m protoreflect.Message, name string, v uint8) {
	m.Set(fieldOf(m, name), protoreflect.ValueOfEnum(protoreflect.EnumNumber(v)))
}

func child(m protoreflect.Message, name string) protoreflect.Message {
	return m.Mutable(fieldOf(m, name)).Message()
}

func appendChild(m protoreflect.Message, name string) protoreflect.Message {
	list := m.Mutable(fieldOf(m, name)).List()
	v := list.NewElement()
	list.Append(v)
	return v.Message()
}

// optU32 sets a field with explicit presence only when the value is present.
func optU32[T ~uint8 | ~uint32](m protoreflect.Message, name string, v *T) {
	if v != nil {
		setU32(m, name, uint32(*v))
	}
}

func optI32(m protoreflect.Message, name string, v *int32) {
	if v != nil {
		setI32(m, name, *v)
	}
}

func optBool(m protoreflect.Message, name string, v *bool) {
	if v != nil {
		m.Set(fieldOf(m, name), protoreflect.ValueOfBool(*v))
	}
}

// ReplayToProto builds the dynamic message for a decoded stream.
func ReplayToProto(r *duel.Replay) *dynamicpb.Message {
	out := dynamicpb.NewMessage(messageType("Replay"))
	stream := child(out, "stream")
	if r == nil {
		return out
	}
	for i := range r.Stream {
		blockToProto(appendChild(stream, "blocks"), &r.Stream[i])
	}
	return out
}

func blockToProto(m protoreflect.Message, b *duel.Block) {
	setU32(m, "time_offset_ms", b.TimeOffsetMS)
	if b.Msg == nil {
		return
	}
	msg := child(m, "msg")
	if b.Msg.Event != nil {
		eventToProto(child(msg, "event"), b.Msg.Event)
	}
	for i := range b.Msg.Queries {
		q := &b.Msg.Queries[i]
		qm := appendChild(msg, "queries")
		placeToProto(child(qm, "place"), q.Place)
		queryDataToProto(child(qm, "data"), &q.Data)
	}
}

func placeToProto(m protoreflect.Message, p card.Place) {
	setU32(m, "con", uint32(p.Con))
	setU32(m, "loc", uint32(p.Loc))
	setU32(m, "seq", p.Seq)
	setI32(m, "oseq", p.OSeq)
}

func moveToProto(m protoreflect.Message, mv *duel.CardMove) {
	setU32(m, "code", uint32(mv.Code))
	placeToProto(child(m, "from"), mv.From)
	placeToProto(child(m, "to"), mv.To)
	setU32(m, "position", uint32(mv.Position))
	setU32(m, "reason", uint32(mv.Reason))
}

func eventToProto(m protoreflect.Message, ev duel.Event) {
	switch e := ev.(type) {
	case *duel.Start:
		s := child(m, "start")
		setU32(s, "player_type", uint32(e.PlayerType))
		for _, p := range e.Players {
			pm := appendChild(s, "players")
			setU32(pm, "lp", p.LP)
			setU32(pm, "deck_size", uint32(p.DeckSize))
			setU32(pm, "extra_size", uint32(p.ExtraSize))
		}
	case *duel.NewTurn:
		setU32(child(m, "new_turn"), "player", uint32(e.Player))
	case *duel.NewPhase:
		setU32(child(m, "new_phase"), "phase", uint32(e.Phase))
	case *duel.Draw:
		d := child(m, "draw")
		setU32(d, "player", uint32(e.Player))
		for i := range e.Moves {
			moveToProto(appendChild(d, "moves"), &e.Moves[i])
		}
	case *duel.Moves:
		mm := child(m, "moves")
		for i := range e.Moves {
			moveToProto(appendChild(mm, "moves"), &e.Moves[i])
		}
	case *duel.LPChange:
		l := child(m, "lp_change")
		setU32(l, "player", uint32(e.Player))
		setEnum(l, "type", uint8(e.Type))
		setU32(l, "amount", e.Amount)
	case *duel.Win:
		w := child(m, "win")
		setU32(w, "player", uint32(e.Player))
		setU32(w, "reason", uint32(e.Reason))
		setU32(w, "match_win_reason", e.MatchWinReason)
	case *duel.Shuffle:
		s := child(m, "shuffle")
		setU32(s, "player", uint32(e.Player))
		setU32(s, "loc", uint32(e.Loc))
		codes := s.Mutable(fieldOf(s, "codes")).List()
		for _, c := range card.Codes2uint32(e.Codes) {
			codes.Append(protoreflect.ValueOfUint32(c))
		}
	case *duel.Summon:
		s := child(m, "summon")
		setEnum(s, "type", uint8(e.Type))
		setU32(s, "code", uint32(e.Code))
		placeToProto(child(s, "place"), e.Place)
		setU32(s, "position", uint32(e.Position))
	case *duel.PosChange:
		p := child(m, "pos_change")
		setU32(p, "code", uint32(e.Code))
		placeToProto(child(p, "place"), e.Place)
		setU32(p, "prev", uint32(e.Prev))
		setU32(p, "cur", uint32(e.Cur))
	}
}

func queryDataToProto(m protoreflect.Message, d *duel.QueryData) {
	optU32(m, "owner", d.Owner)
	optBool(m, "is_public", d.IsPublic)
	optBool(m, "is_hidden", d.IsHidden)
	optU32(m, "position", d.Position)
	optU32(m, "cover", d.Cover)
	optU32(m, "status", d.Status)
	optU32(m, "code", d.Code)
	optU32(m, "alias", d.Alias)
	optU32(m, "type", d.Type)
	optU32(m, "level", d.Level)
	optU32(m, "xyz_rank", d.XyzRank)
	optU32(m, "attribute", d.Attribute)
	if d.Race != nil {
		m.Set(fieldOf(m, "race"), protoreflect.ValueOfUint64(*d.Race))
	}
	optI32(m, "base_atk", d.BaseAtk)
	optI32(m, "atk", d.Atk)
	optI32(m, "base_def", d.BaseDef)
	optI32(m, "def", d.Def)
	optU32(m, "pend_l_scale", d.PendLScale)
	optU32(m, "pend_r_scale", d.PendRScale)
	optU32(m, "link_rate", d.LinkRate)
	optU32(m, "link_arrow", d.LinkArrow)
	for _, c := range d.Counters {
		cm := appendChild(m, "counters")
		setU32(cm, "type", uint32(c.Type))
		setU32(cm, "count", uint32(c.Count))
	}
	if d.Equipped != nil {
		placeToProto(child(m, "equipped"), *d.Equipped)
	}
	for _, p := range d.Relations {
		placeToProto(appendChild(m, "relations"), p)
	}
}
