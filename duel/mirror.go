package duel

import (
	"slices"

	"github.com/rs/zerolog/log"

	"yrp-lite/card"
)

// Mirror replays encoded messages onto a Board and accumulates them into a
// Replay. It also answers the questions the message encoder asks while
// translating core messages.
type Mirror struct {
	board          *Board
	replay         Replay
	matchWinReason uint32
	left           map[card.Place]card.Place
	deferred       []card.Place
}

func NewMirror() *Mirror {
	return &Mirror{
		board: NewBoard(),
		left:  make(map[card.Place]card.Place),
	}
}

func (m *Mirror) Board() *Board { return m.board }

// Replay returns the accumulated stream. It is owned by the mirror.
func (m *Mirror) Replay() *Replay { return &m.replay }

// PileSize returns the number of cards in a pile, or 0 for non-pile locations.
func (m *Mirror) PileSize(con uint8, loc card.Location) int {
	return len(m.board.frame.Pile(con, loc))
}

func (m *Mirror) MatchWinReason() uint32 { return m.matchWinReason }

func (m *Mirror) SetMatchWinReason(reason uint32) { m.matchWinReason = reason }

// HasXyzMat reports whether the zone at p holds materials.
func (m *Mirror) HasXyzMat(p card.Place) bool {
	z := m.board.frame.Zone(p)
	return z != nil && len(z.Materials) > 0
}

// XyzLeft returns the monster zone an xyz host left when it moved to p.
func (m *Mirror) XyzLeft(p card.Place) (card.Place, bool) {
	src, ok := m.left[p.Zone()]
	return src, ok
}

// SetXyzLeft records that the host now at dest left its materials at src.
func (m *Mirror) SetXyzLeft(dest, src card.Place) {
	m.left[dest.Zone()] = src.Zone()
}

// XyzMatDefer queues a material whose host has not reached the field yet.
func (m *Mirror) XyzMatDefer(p card.Place) {
	m.deferred = append(m.deferred, p)
}

// TakeDeferredXyzMat returns the queued materials in order and empties the queue.
func (m *Mirror) TakeDeferredXyzMat() []card.Place {
	out := m.deferred
	m.deferred = nil
	return out
}

// Parse archives msg and folds it into the board. Queries for places that
// hold no card are dropped; fields the board already knew are cleared.
func (m *Mirror) Parse(msg *Msg) {
	m.replay.Stream = append(m.replay.Stream, Block{TimeOffsetMS: 0, Msg: msg})
	if msg.IsEvent() {
		m.board.ParseEvent(msg.Event)
	}
	if len(msg.Queries) == 0 {
		return
	}
	kept := msg.Queries[:0]
	for i := range msg.Queries {
		q := msg.Queries[i]
		if !m.board.frame.HasCard(q.Place) {
			log.Debug().Str("place", q.Place.String()).Msg("dropped query for empty place")
			continue
		}
		hits := m.board.ParseQuery(&q)
		q.Data.Clear(hits)
		kept = append(kept, q)
	}
	msg.Queries = slices.Clip(kept)
}

// LeftPlaces lists recorded xyz departures in place order.
func (m *Mirror) LeftPlaces() []card.Place {
	out := make([]card.Place, 0, len(m.left))
	for p := range m.left {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b card.Place) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}
