package duel

import (
	"strconv"

	"yrp-lite/card"
)

// Replay is the structured form of a decoded message stream.
type Replay struct {
	Stream []Block
}

// Block is one archived message together with its time offset.
type Block struct {
	TimeOffsetMS uint32
	Msg          *Msg
}

// Msg is what the message encoder produces for a single core message: an
// optional board event plus zero or more card queries.
type Msg struct {
	Event   Event
	Queries []Query
}

func (m *Msg) IsEvent() bool { return m != nil && m.Event != nil }

// Event is implemented by every board event payload.
type Event interface {
	EventName() string
}

type StartPlayer struct {
	LP        uint32
	DeckSize  uint16
	ExtraSize uint16
}

// Start resets the board with the given pile sizes.
type Start struct {
	PlayerType uint8
	Players    [2]StartPlayer
}

type NewTurn struct {
	Player uint8
}

type NewPhase struct {
	Phase card.Phase
}

// CardMove relocates one card. A zero From.Loc creates the card, a zero
// To.Loc removes it from the duel.
type CardMove struct {
	Code     card.Code
	From     card.Place
	To       card.Place
	Position card.Position
	Reason   card.Reason
}

type Draw struct {
	Player uint8
	Moves  []CardMove
}

// Moves groups card moves that happen as one step, such as an xyz monster
// reaching the field together with its deferred materials.
type Moves struct {
	Moves []CardMove
}

type LPChangeType uint8

const (
	LPDamage  LPChangeType = 1
	LPRecover LPChangeType = 2
	LPBecome  LPChangeType = 3
	LPPayCost LPChangeType = 4
)

var LPChangeTypeDictionary = map[LPChangeType]string{
	LPDamage:  "damage",
	LPRecover: "recover",
	LPBecome:  "become",
	LPPayCost: "pay_cost",
}

func (t LPChangeType) String() string {
	if name, ok := LPChangeTypeDictionary[t]; ok {
		return name
	}
	return "lp_change(" + strconv.Itoa(int(t)) + ")"
}

type LPChange struct {
	Player uint8
	Type   LPChangeType
	Amount uint32
}

// Win ends the duel. Player 2 means a draw.
type Win struct {
	Player         uint8
	Reason         uint8
	MatchWinReason uint32
}

type Shuffle struct {
	Player uint8
	Loc    card.Location
	Codes  []card.Code
}

type SummonType uint8

const (
	SummonNormal  SummonType = 1
	SummonSpecial SummonType = 2
	SummonFlip    SummonType = 3
)

type Summon struct {
	Type     SummonType
	Code     card.Code
	Place    card.Place
	Position card.Position
}

type PosChange struct {
	Code  card.Code
	Place card.Place
	Prev  card.Position
	Cur   card.Position
}

func (*Start) EventName() string     { return "start" }
func (*NewTurn) EventName() string   { return "newTurn" }
func (*NewPhase) EventName() string  { return "newPhase" }
func (*Draw) EventName() string      { return "draw" }
func (*Moves) EventName() string     { return "moves" }
func (*LPChange) EventName() string  { return "lpChange" }
func (*Win) EventName() string       { return "win" }
func (*Shuffle) EventName() string   { return "shuffle" }
func (*Summon) EventName() string    { return "summon" }
func (*PosChange) EventName() string { return "posChange" }

// Query carries the reported state of the card at Place.
type Query struct {
	Place card.Place
	Data  QueryData
}
