package card

import (
	"strconv"
	"strings"
)

// Location is where a card is, as the bitmask the duel core uses.
type Location uint32

const (
	LocationNone     Location = 0
	LocationDeck     Location = 0x01
	LocationHand     Location = 0x02
	LocationMZone    Location = 0x04
	LocationSZone    Location = 0x08
	LocationGrave    Location = 0x10
	LocationRemoved  Location = 0x20
	LocationExtra    Location = 0x40
	LocationOverlay  Location = 0x80
	LocationOnField  Location = LocationMZone | LocationSZone
	LocationFZone    Location = 0x100
	LocationPZone    Location = 0x200
)

var LocationDictionary = map[Location]string{
	LocationNone:    "none",
	LocationDeck:    "deck",
	LocationHand:    "hand",
	LocationMZone:   "mzone",
	LocationSZone:   "szone",
	LocationGrave:   "grave",
	LocationRemoved: "banished",
	LocationExtra:   "extra",
	LocationOverlay: "overlay",
	LocationFZone:   "fzone",
	LocationPZone:   "pzone",
}

func (l Location) String() string {
	if name, ok := LocationDictionary[l]; ok {
		return name
	}
	return "location(0x" + strconv.FormatUint(uint64(l), 16) + ")"
}

// IsPile reports whether cards in l are kept as an ordered stack rather than zones.
func (l Location) IsPile() bool {
	switch l {
	case LocationDeck, LocationHand, LocationGrave, LocationRemoved, LocationExtra:
		return true
	}
	return false
}

// IsZone reports whether l is one of the fixed-slot field locations.
func (l Location) IsZone() bool {
	return l == LocationMZone || l == LocationSZone
}

// HasOverlay reports whether the overlay bit is set; the remaining bits then
// describe where the xyz host currently is.
func (l Location) HasOverlay() bool { return l&LocationOverlay != 0 }

// WithoutOverlay strips the overlay bit.
func (l Location) WithoutOverlay() Location { return l &^ LocationOverlay }

// Position is a card's battle position and face.
type Position uint32

const (
	PositionFaceUpAttack    Position = 0x1
	PositionFaceDownAttack  Position = 0x2
	PositionFaceUpDefense   Position = 0x4
	PositionFaceDownDefense Position = 0x8
	PositionFaceUp          Position = PositionFaceUpAttack | PositionFaceUpDefense
	PositionFaceDown        Position = PositionFaceDownAttack | PositionFaceDownDefense
)

var PositionDictionary = map[Position]string{
	PositionFaceUpAttack:    "face-up attack",
	PositionFaceDownAttack:  "face-down attack",
	PositionFaceUpDefense:   "face-up defense",
	PositionFaceDownDefense: "face-down defense",
}

func (p Position) String() string {
	if name, ok := PositionDictionary[p]; ok {
		return name
	}
	return "position(0x" + strconv.FormatUint(uint64(p), 16) + ")"
}

// Reason bits carried by card moves.
type Reason uint32

const (
	ReasonDestroy  Reason = 0x1
	ReasonRelease  Reason = 0x2
	ReasonMaterial Reason = 0x8
	ReasonSummon   Reason = 0x10
	ReasonEffect   Reason = 0x40
	ReasonCost     Reason = 0x80
	ReasonXyz      Reason = 0x200000
)

var ReasonDictionary = map[Reason]string{
	ReasonDestroy:  "destroy",
	ReasonRelease:  "release",
	ReasonMaterial: "material",
	ReasonSummon:   "summon",
	ReasonEffect:   "effect",
	ReasonCost:     "cost",
	ReasonXyz:      "xyz",
}

// String joins the names of the set bits with "|", lowest bit first.
// Bits without a name are printed in hex.
func (r Reason) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	for bit := Reason(1); bit != 0; bit <<= 1 {
		if r&bit == 0 {
			continue
		}
		if name, ok := ReasonDictionary[bit]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, "0x"+strconv.FormatUint(uint64(bit), 16))
		}
	}
	return strings.Join(parts, "|")
}

// Phase of a turn as reported by the core.
type Phase uint16

const (
	PhaseDraw        Phase = 0x01
	PhaseStandby     Phase = 0x02
	PhaseMain1       Phase = 0x04
	PhaseBattleStart Phase = 0x08
	PhaseBattleStep  Phase = 0x10
	PhaseDamage      Phase = 0x20
	PhaseDamageCal   Phase = 0x40
	PhaseBattle      Phase = 0x80
	PhaseMain2       Phase = 0x100
	PhaseEnd         Phase = 0x200
)

var PhaseDictionary = map[Phase]string{
	PhaseDraw:        "draw",
	PhaseStandby:     "standby",
	PhaseMain1:       "main1",
	PhaseBattleStart: "battle_start",
	PhaseBattleStep:  "battle_step",
	PhaseDamage:      "damage",
	PhaseDamageCal:   "damage_cal",
	PhaseBattle:      "battle",
	PhaseMain2:       "main2",
	PhaseEnd:         "end",
}

func (p Phase) String() string {
	if name, ok := PhaseDictionary[p]; ok {
		return name
	}
	return "phase(0x" + strconv.FormatUint(uint64(p), 16) + ")"
}
