package ocgcore

import (
	"yrp-lite/card"
	"yrp-lite/duel"
)

// Query flags of the core's card query protocol.
const (
	QueryCode        uint32 = 0x1
	QueryPosition    uint32 = 0x2
	QueryAlias       uint32 = 0x4
	QueryType        uint32 = 0x8
	QueryLevel       uint32 = 0x10
	QueryRank        uint32 = 0x20
	QueryAttribute   uint32 = 0x40
	QueryRace        uint32 = 0x80
	QueryAttack      uint32 = 0x100
	QueryDefense     uint32 = 0x200
	QueryBaseAttack  uint32 = 0x400
	QueryBaseDefense uint32 = 0x800
	QueryReason      uint32 = 0x1000
	QueryReasonCard  uint32 = 0x2000
	QueryEquipCard   uint32 = 0x4000
	QueryTargetCard  uint32 = 0x8000
	QueryOverlayCard uint32 = 0x10000
	QueryCounters    uint32 = 0x20000
	QueryOwner       uint32 = 0x40000
	QueryStatus      uint32 = 0x80000
	QueryIsPublic    uint32 = 0x100000
	QueryLScale      uint32 = 0x200000
	QueryRScale      uint32 = 0x400000
	QueryLink        uint32 = 0x800000
	QueryIsHidden    uint32 = 0x1000000
	QueryCover       uint32 = 0x2000000
	QueryEnd         uint32 = 0x80000000
)

func ptr[T any](v T) *T { return &v }

// readCard decodes the query entries of one card. first is the length of
// the first entry, already consumed by the caller.
func readCard(r *reader, first uint16) duel.QueryData {
	var d duel.QueryData
	size := first
	for !r.short {
		if size < 4 {
			r.short = true
			break
		}
		flag := r.u32()
		payload := &reader{b: r.take(int(size) - 4)}
		if r.short || flag == QueryEnd {
			break
		}
		readField(payload, flag, &d)
		size = r.u16()
	}
	return d
}

func readField(r *reader, flag uint32, d *duel.QueryData) {
	switch flag {
	case QueryCode:
		d.Code = ptr(card.Code(r.u32()))
	case QueryPosition:
		d.Position = ptr(card.Position(r.u32()))
	case QueryAlias:
		d.Alias = ptr(card.Code(r.u32()))
	case QueryType:
		d.Type = ptr(r.u32())
	case QueryLevel:
		d.Level = ptr(r.u32())
	case QueryRank:
		d.XyzRank = ptr(r.u32())
	case QueryAttribute:
		d.Attribute = ptr(r.u32())
	case QueryRace:
		d.Race = ptr(r.u64())
	case QueryAttack:
		d.Atk = ptr(r.i32())
	case QueryDefense:
		d.Def = ptr(r.i32())
	case QueryBaseAttack:
		d.BaseAtk = ptr(r.i32())
	case QueryBaseDefense:
		d.BaseDef = ptr(r.i32())
	case QueryEquipCard:
		p, _ := readLocInfo(r)
		d.Equipped = &p
	case QueryTargetCard:
		n := r.u32()
		rel := make([]card.Place, 0, min(int(n), r.remaining()/10))
		for i := uint32(0); i < n && !r.short; i++ {
			p, _ := readLocInfo(r)
			rel = append(rel, p)
		}
		d.Relations = rel
	case QueryCounters:
		n := r.u32()
		counters := make([]duel.Counter, 0, min(int(n), r.remaining()/4))
		for i := uint32(0); i < n && !r.short; i++ {
			v := r.u32()
			counters = append(counters, duel.Counter{Type: uint16(v), Count: uint16(v >> 16)})
		}
		d.Counters = counters
	case QueryOwner:
		d.Owner = ptr(r.u8())
	case QueryStatus:
		d.Status = ptr(r.u32())
	case QueryIsPublic:
		d.IsPublic = ptr(r.u8() != 0)
	case QueryLScale:
		d.PendLScale = ptr(r.u32())
	case QueryRScale:
		d.PendRScale = ptr(r.u32())
	case QueryLink:
		d.LinkRate = ptr(r.u32())
		d.LinkArrow = ptr(r.u32())
	case QueryIsHidden:
		d.IsHidden = ptr(r.u8() != 0)
	case QueryCover:
		d.Cover = ptr(card.Code(r.u32()))
	}
	// QueryReason, QueryReasonCard and QueryOverlayCard have no place in
	// the mirrored card state and are skipped with their payload.
}

// readLocInfo reads a con/loc/seq/pos group. The returned position is only
// meaningful when the place is not a material.
func readLocInfo(r *reader) (card.Place, card.Position) {
	con := r.u8()
	loc := card.Location(r.u8())
	seq := r.u32()
	pos := r.u32()
	if loc.HasOverlay() {
		return card.Place{Con: con, Loc: loc, Seq: seq, OSeq: int32(pos)}, 0
	}
	return card.NewPlace(con, loc, seq), card.Position(pos)
}
