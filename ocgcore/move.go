package ocgcore

import (
	"yrp-lite/card"
	"yrp-lite/duel"
)

const materialLoc = card.LocationOverlay | card.LocationMZone

// readMove decodes MSG_MOVE. It returns false when the move only queues an
// xyz material whose host has not reached a monster zone yet.
func readMove(ctx Context, r *reader) (duel.Event, bool) {
	code := card.Code(r.u32())
	prev, _ := readLocInfo(r)
	cur, pos := readLocInfo(r)
	reason := card.Reason(r.u32())
	if r.short {
		return &duel.Moves{}, true
	}

	from := sourcePlace(ctx, prev)
	to := cur
	if cur.Loc.HasOverlay() {
		host := hostOf(cur)
		if host.Loc != card.LocationMZone {
			ctx.XyzMatDefer(from)
			return nil, false
		}
		to = host.Material(cur.OSeq)
		to.Loc = materialLoc
	} else if to.Loc.IsPile() {
		to.Seq = clampPileSeq(ctx, from, to)
	}

	hostLeaving := !from.IsMaterial() && from.Loc == card.LocationMZone &&
		to.Loc != card.LocationMZone && ctx.HasXyzMat(from)
	if hostLeaving {
		ctx.SetXyzLeft(to, from)
	}

	mv := duel.CardMove{Code: code, From: from, To: to, Position: pos, Reason: reason}
	moves := []duel.CardMove{mv}
	if to.Loc == card.LocationMZone && !to.IsMaterial() {
		for i, src := range ctx.TakeDeferredXyzMat() {
			moves = append(moves, duel.CardMove{
				From:   src,
				To:     card.Place{Con: to.Con, Loc: materialLoc, Seq: to.Seq, OSeq: int32(i)},
				Reason: card.ReasonMaterial | card.ReasonXyz,
			})
		}
	}
	return &duel.Moves{Moves: moves}, true
}

// sourcePlace resolves where a moving card is tracked. A material whose
// host left the monster zones is still kept under the zone the host left.
func sourcePlace(ctx Context, p card.Place) card.Place {
	if !p.Loc.HasOverlay() {
		return p
	}
	host := hostOf(p)
	if host.Loc == card.LocationMZone && ctx.HasXyzMat(host) {
		q := host.Material(p.OSeq)
		q.Loc = materialLoc
		return q
	}
	if src, ok := ctx.XyzLeft(host); ok {
		q := src.Material(p.OSeq)
		q.Loc = card.LocationOverlay | src.Loc
		return q
	}
	return p
}

func hostOf(p card.Place) card.Place {
	return card.NewPlace(p.Con, p.Loc.WithoutOverlay(), p.Seq)
}

func clampPileSeq(ctx Context, from, to card.Place) uint32 {
	limit := ctx.PileSize(to.Con, to.Loc)
	if !from.IsMaterial() && from.Con == to.Con && from.Loc == to.Loc && limit > 0 {
		limit--
	}
	if int(to.Seq) > limit {
		return uint32(limit)
	}
	return to.Seq
}
