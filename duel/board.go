package duel

import (
	"slices"

	"github.com/rs/zerolog/log"

	"yrp-lite/card"
)

const (
	MZoneCount = 7
	SZoneCount = 8
)

// Card is one card object tracked by the board. Code is zero while hidden.
type Card struct {
	Code     card.Code
	Position card.Position
	Data     QueryData
}

// Zone is a fixed field slot. Materials may outlive the host while an xyz
// monster that left the field is still shedding them.
type Zone struct {
	Card      *Card
	Materials []*Card
}

type side struct {
	piles  map[card.Location][]*Card
	mzones [MZoneCount]Zone
	szones [SZoneCount]Zone
}

// Frame is the card layout of both controllers.
type Frame struct {
	sides [2]side
}

func NewFrame() *Frame {
	f := &Frame{}
	for i := range f.sides {
		f.sides[i].piles = make(map[card.Location][]*Card)
	}
	return f
}

func (f *Frame) side(con uint8) *side {
	if int(con) >= len(f.sides) {
		return nil
	}
	return &f.sides[con]
}

// Pile returns the cards of a pile, bottom first. The deck's top card is
// the last element.
func (f *Frame) Pile(con uint8, loc card.Location) []*Card {
	s := f.side(con)
	if s == nil || !loc.IsPile() {
		return nil
	}
	return s.piles[loc]
}

// Zone returns the field slot p refers to, ignoring any material index.
func (f *Frame) Zone(p card.Place) *Zone {
	s := f.side(p.Con)
	loc := p.Loc.WithoutOverlay()
	if s == nil || !loc.IsZone() {
		return nil
	}
	switch loc {
	case card.LocationMZone:
		if p.Seq < MZoneCount {
			return &s.mzones[p.Seq]
		}
	case card.LocationSZone:
		if p.Seq < SZoneCount {
			return &s.szones[p.Seq]
		}
	}
	return nil
}

// CardAt returns the card at p or nil.
func (f *Frame) CardAt(p card.Place) *Card {
	if p.IsMaterial() || p.Loc.HasOverlay() {
		z := f.Zone(p)
		if z == nil || p.OSeq < 0 || int(p.OSeq) >= len(z.Materials) {
			return nil
		}
		return z.Materials[p.OSeq]
	}
	if p.Loc.IsPile() {
		pile := f.Pile(p.Con, p.Loc)
		if int(p.Seq) >= len(pile) {
			return nil
		}
		return pile[p.Seq]
	}
	if z := f.Zone(p); z != nil {
		return z.Card
	}
	return nil
}

func (f *Frame) HasCard(p card.Place) bool { return f.CardAt(p) != nil }

// detach removes c from wherever p says it is.
func (f *Frame) detach(p card.Place, c *Card) {
	if p.IsMaterial() || p.Loc.HasOverlay() {
		if z := f.Zone(p); z != nil {
			z.Materials = removeCard(z.Materials, c)
		}
		return
	}
	if p.Loc.IsPile() {
		s := f.side(p.Con)
		if s != nil {
			s.piles[p.Loc] = removeCard(s.piles[p.Loc], c)
		}
		return
	}
	if z := f.Zone(p); z != nil && z.Card == c {
		z.Card = nil
	}
}

// attach places c at p. Pile and material indexes past the end append.
func (f *Frame) attach(p card.Place, c *Card) bool {
	if p.IsMaterial() || p.Loc.HasOverlay() {
		z := f.Zone(p)
		if z == nil {
			return false
		}
		z.Materials = insertCard(z.Materials, int(max(p.OSeq, 0)), c)
		return true
	}
	if p.Loc.IsPile() {
		s := f.side(p.Con)
		if s == nil {
			return false
		}
		s.piles[p.Loc] = insertCard(s.piles[p.Loc], int(p.Seq), c)
		return true
	}
	z := f.Zone(p)
	if z == nil {
		return false
	}
	z.Card = c
	return true
}

func removeCard(cards []*Card, c *Card) []*Card {
	if i := slices.Index(cards, c); i >= 0 {
		return slices.Delete(cards, i, i+1)
	}
	return cards
}

func insertCard(cards []*Card, at int, c *Card) []*Card {
	if at > len(cards) {
		at = len(cards)
	}
	return slices.Insert(cards, at, c)
}

// Board follows the duel as events arrive.
type Board struct {
	frame      *Frame
	lp         [2]uint32
	turn       uint32
	turnPlayer uint8
	phase      card.Phase
	ended      bool
	winner     uint8
}

func NewBoard() *Board {
	return &Board{frame: NewFrame()}
}

func (b *Board) Frame() *Frame { return b.frame }

// ParseEvent applies ev to the board. Events referring to places the board
// does not know about are applied as far as possible.
func (b *Board) ParseEvent(ev Event) {
	switch e := ev.(type) {
	case *Start:
		b.start(e)
	case *NewTurn:
		b.turn++
		b.turnPlayer = e.Player
	case *NewPhase:
		b.phase = e.Phase
		log.Trace().Uint32("turn", b.turn).Stringer("phase", e.Phase).Msg("new phase")
	case *Draw:
		b.applyMoves(e.Moves)
	case *Moves:
		b.applyMoves(e.Moves)
	case *LPChange:
		b.changeLP(e)
		log.Trace().Uint8("player", e.Player).Stringer("type", e.Type).Uint32("amount", e.Amount).Msg("lp change")
	case *Win:
		b.ended = true
		b.winner = e.Player
	case *Shuffle:
		b.shuffle(e)
	case *Summon:
		if c := b.frame.CardAt(e.Place); c != nil {
			c.Code = e.Code
			c.Position = e.Position
		}
	case *PosChange:
		log.Trace().Str("place", e.Place.String()).Stringer("prev", e.Prev).Stringer("cur", e.Cur).Msg("position change")
		if c := b.frame.CardAt(e.Place); c != nil {
			c.Position = e.Cur
			if e.Code.Known() {
				c.Code = e.Code
			}
		}
	}
}

// ParseQuery merges q into the card it targets and returns the fields
// whose value was already known.
func (b *Board) ParseQuery(q *Query) QueryCacheHit {
	c := b.frame.CardAt(q.Place)
	if c == nil {
		return 0
	}
	hits := c.Data.merge(&q.Data)
	if q.Data.Code != nil {
		c.Code = *q.Data.Code
	}
	if q.Data.Position != nil {
		c.Position = *q.Data.Position
	}
	return hits
}

func (b *Board) start(e *Start) {
	b.frame = NewFrame()
	b.turn = 0
	b.phase = 0
	b.ended = false
	b.winner = 0
	for con, p := range e.Players {
		b.lp[con] = p.LP
		s := &b.frame.sides[con]
		s.piles[card.LocationDeck] = hiddenCards(int(p.DeckSize))
		s.piles[card.LocationExtra] = hiddenCards(int(p.ExtraSize))
	}
}

func hiddenCards(n int) []*Card {
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = &Card{Position: card.PositionFaceDownDefense}
	}
	return cards
}

// applyMoves resolves every source before detaching anything so that moves
// taken from the same pile keep referring to the pre-move order.
func (b *Board) applyMoves(moves []CardMove) {
	cards := make([]*Card, len(moves))
	for i, mv := range moves {
		if mv.From.Loc != card.LocationNone {
			cards[i] = b.frame.CardAt(mv.From)
		}
	}
	for i, mv := range moves {
		c := cards[i]
		if c == nil {
			c = &Card{}
			cards[i] = c
		} else {
			b.frame.detach(mv.From, c)
		}
		if mv.From.Loc.WithoutOverlay() == card.LocationMZone && !mv.From.IsMaterial() &&
			mv.To.Loc == card.LocationMZone && !mv.To.IsMaterial() {
			b.carryMaterials(mv.From, mv.To)
		}
	}
	for i, mv := range moves {
		if mv.To.Loc == card.LocationNone {
			continue
		}
		c := cards[i]
		if mv.From.Loc.WithoutOverlay() != mv.To.Loc.WithoutOverlay() {
			c.Data = QueryData{}
		}
		if mv.Code.Known() {
			c.Code = mv.Code
		}
		if mv.Position != 0 {
			c.Position = mv.Position
		}
		if !b.frame.attach(mv.To, c) {
			log.Trace().Str("to", mv.To.String()).Stringer("reason", mv.Reason).Msg("move to unknown place")
		}
	}
}

func (b *Board) carryMaterials(from, to card.Place) {
	src, dst := b.frame.Zone(from), b.frame.Zone(to)
	if src == nil || dst == nil || src == dst {
		return
	}
	dst.Materials = append(dst.Materials, src.Materials...)
	src.Materials = nil
}

func (b *Board) changeLP(e *LPChange) {
	if int(e.Player) >= len(b.lp) {
		return
	}
	lp := &b.lp[e.Player]
	switch e.Type {
	case LPDamage, LPPayCost:
		if e.Amount >= *lp {
			*lp = 0
		} else {
			*lp -= e.Amount
		}
	case LPRecover:
		*lp += e.Amount
	case LPBecome:
		*lp = e.Amount
	}
}

func (b *Board) shuffle(e *Shuffle) {
	pile := b.frame.Pile(e.Player, e.Loc)
	if e.Loc == card.LocationDeck {
		for _, c := range pile {
			c.Code = card.CodeUnknown
			c.Data = QueryData{}
		}
		return
	}
	if len(e.Codes) != len(pile) {
		return
	}
	for i, c := range pile {
		c.Code = e.Codes[i]
		c.Data = QueryData{}
	}
}
