package duel

import "yrp-lite/card"

type ZoneSnapshot struct {
	Code      card.Code
	Occupied  bool
	Position  card.Position
	Materials []card.Code
}

type SideSnapshot struct {
	LP      uint32
	Deck    []card.Code
	Hand    []card.Code
	Grave   []card.Code
	Removed []card.Code
	Extra   []card.Code
	MZones  [MZoneCount]ZoneSnapshot
	SZones  [SZoneCount]ZoneSnapshot
}

type Snapshot struct {
	Turn       uint32
	TurnPlayer uint8
	Phase      card.Phase
	Ended      bool
	Winner     uint8
	Sides      [2]SideSnapshot
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Turn:       b.turn,
		TurnPlayer: b.turnPlayer,
		Phase:      b.phase,
		Ended:      b.ended,
		Winner:     b.winner,
	}
	for con := range s.Sides {
		ss := &s.Sides[con]
		side := &b.frame.sides[con]
		ss.LP = b.lp[con]
		ss.Deck = codesOf(side.piles[card.LocationDeck])
		ss.Hand = codesOf(side.piles[card.LocationHand])
		ss.Grave = codesOf(side.piles[card.LocationGrave])
		ss.Removed = codesOf(side.piles[card.LocationRemoved])
		ss.Extra = codesOf(side.piles[card.LocationExtra])
		for i := range side.mzones {
			ss.MZones[i] = zoneSnapshot(&side.mzones[i])
		}
		for i := range side.szones {
			ss.SZones[i] = zoneSnapshot(&side.szones[i])
		}
	}
	return s
}

func zoneSnapshot(z *Zone) ZoneSnapshot {
	zs := ZoneSnapshot{Materials: codesOf(z.Materials)}
	if z.Card != nil {
		zs.Occupied = true
		zs.Code = z.Card.Code
		zs.Position = z.Card.Position
	}
	return zs
}

func codesOf(cards []*Card) []card.Code {
	codes := make([]card.Code, 0, len(cards))
	for _, c := range cards {
		codes = append(codes, c.Code)
	}
	return codes
}
