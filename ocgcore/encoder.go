package ocgcore

import (
	"github.com/rs/zerolog/log"

	"yrp-lite/card"
	"yrp-lite/duel"
)

type State uint8

const (
	StateOK State = iota
	StateSwallowed
	StateUnknown
)

var StateDictionary = map[State]string{
	StateOK:        "ok",
	StateSwallowed: "swallowed",
	StateUnknown:   "unknown",
}

func (s State) String() string { return StateDictionary[s] }

// Result describes one encoded message. BytesRead counts the message
// number byte as well as the body.
type Result struct {
	State     State
	BytesRead int
	Msg       *duel.Msg
}

// Encoder turns one core message, starting with its message number, into
// a duel.Msg.
type Encoder interface {
	EncodeOne(ctx Context, buf []byte) Result
}

// Edo9300 encodes messages in the layout written by the EDOPro core.
type Edo9300 struct{}

func NewEncoder() *Edo9300 { return &Edo9300{} }

func (*Edo9300) EncodeOne(ctx Context, buf []byte) Result {
	if len(buf) == 0 {
		return Result{State: StateUnknown}
	}
	n := buf[0]
	r := &reader{b: buf, off: 1}
	var ev duel.Event
	var queries []duel.Query
	switch n {
	case MsgStart:
		ev = readStart(r)
	case MsgWin:
		ev = &duel.Win{Player: r.u8(), Reason: r.u8(), MatchWinReason: ctx.MatchWinReason()}
	case MsgUpdateData:
		queries = readUpdateData(r)
	case MsgUpdateCard:
		queries = readUpdateCard(r)
	case MsgShuffleDeck:
		ev = &duel.Shuffle{Player: r.u8(), Loc: card.LocationDeck}
	case MsgShuffleHand:
		ev = readShuffle(r, card.LocationHand)
	case MsgShuffleExtra:
		ev = readShuffle(r, card.LocationExtra)
	case MsgNewTurn:
		ev = &duel.NewTurn{Player: r.u8()}
	case MsgNewPhase:
		ev = &duel.NewPhase{Phase: card.Phase(r.u16())}
	case MsgMove:
		var ok bool
		if ev, ok = readMove(ctx, r); !ok {
			return swallowed(r)
		}
	case MsgPosChange:
		ev = readPosChange(r)
	case MsgSet:
		r.u32()
		readLocInfo(r)
		return swallowed(r)
	case MsgSummoning:
		ev = readSummon(r, duel.SummonNormal)
	case MsgSpSummoning:
		ev = readSummon(r, duel.SummonSpecial)
	case MsgFlipSummoning:
		ev = readSummon(r, duel.SummonFlip)
	case MsgSummoned, MsgSpSummoned, MsgFlipSummoned:
		return swallowed(r)
	case MsgDraw:
		ev = readDraw(ctx, r)
	case MsgDamage:
		ev = readLP(r, duel.LPDamage)
	case MsgRecover:
		ev = readLP(r, duel.LPRecover)
	case MsgLPUpdate:
		ev = readLP(r, duel.LPBecome)
	case MsgPayLPCost:
		ev = readLP(r, duel.LPPayCost)
	case MsgMatchKill:
		ctx.SetMatchWinReason(r.u32())
		return swallowed(r)
	default:
		if !Known(n) {
			return Result{State: StateUnknown}
		}
		// Messages the mirror has no use for are skipped whole.
		return Result{State: StateSwallowed, BytesRead: len(buf)}
	}
	if r.short {
		log.Debug().Str("msg", MsgDictionary[n]).Int("size", len(buf)).Msg("message body too short")
	}
	return Result{
		State:     StateOK,
		BytesRead: r.consumed(),
		Msg:       &duel.Msg{Event: ev, Queries: queries},
	}
}

func swallowed(r *reader) Result {
	return Result{State: StateSwallowed, BytesRead: r.consumed()}
}

func readStart(r *reader) *duel.Start {
	e := &duel.Start{PlayerType: r.u8()}
	e.Players[0].LP = r.u32()
	e.Players[1].LP = r.u32()
	e.Players[0].DeckSize = r.u16()
	e.Players[0].ExtraSize = r.u16()
	e.Players[1].DeckSize = r.u16()
	e.Players[1].ExtraSize = r.u16()
	return e
}

func readShuffle(r *reader, loc card.Location) *duel.Shuffle {
	e := &duel.Shuffle{Player: r.u8(), Loc: loc}
	n := r.u32()
	e.Codes = make([]card.Code, 0, min(int(n), r.remaining()/4))
	for i := uint32(0); i < n && !r.short; i++ {
		e.Codes = append(e.Codes, card.Code(r.u32()))
	}
	return e
}

func readPosChange(r *reader) *duel.PosChange {
	code := card.Code(r.u32())
	con := r.u8()
	loc := card.Location(r.u8())
	seq := r.u8()
	prev := card.Position(r.u8())
	cur := card.Position(r.u8())
	return &duel.PosChange{
		Code:  code,
		Place: card.NewPlace(con, loc, uint32(seq)),
		Prev:  prev,
		Cur:   cur,
	}
}

func readSummon(r *reader, t duel.SummonType) *duel.Summon {
	code := card.Code(r.u32())
	p, pos := readLocInfo(r)
	return &duel.Summon{Type: t, Code: code, Place: p, Position: pos}
}

func readLP(r *reader, t duel.LPChangeType) *duel.LPChange {
	return &duel.LPChange{Player: r.u8(), Type: t, Amount: r.u32()}
}

func readDraw(ctx Context, r *reader) *duel.Draw {
	player := r.u8()
	n := r.u32()
	deck := ctx.PileSize(player, card.LocationDeck)
	hand := ctx.PileSize(player, card.LocationHand)
	e := &duel.Draw{Player: player, Moves: make([]duel.CardMove, 0, min(int(n), r.remaining()/8))}
	for i := 0; i < int(n) && !r.short; i++ {
		code := card.Code(r.u32())
		pos := card.Position(r.u32())
		mv := duel.CardMove{
			Code:     code,
			To:       card.NewPlace(player, card.LocationHand, uint32(hand+i)),
			Position: pos,
		}
		if top := deck - 1 - i; top >= 0 {
			mv.From = card.NewPlace(player, card.LocationDeck, uint32(top))
		}
		e.Moves = append(e.Moves, mv)
	}
	return e
}

func readUpdateData(r *reader) []duel.Query {
	con := r.u8()
	loc := card.Location(r.u8())
	var queries []duel.Query
	for seq := uint32(0); r.remaining() > 0 && !r.short; seq++ {
		first := r.u16()
		if first == 0 {
			continue
		}
		d := readCard(r, first)
		queries = append(queries, duel.Query{Place: card.NewPlace(con, loc, seq), Data: d})
	}
	return queries
}

func readUpdateCard(r *reader) []duel.Query {
	con := r.u8()
	loc := card.Location(r.u8())
	seq := r.u8()
	first := r.u16()
	if first == 0 {
		return nil
	}
	d := readCard(r, first)
	return []duel.Query{{Place: card.NewPlace(con, loc, uint32(seq)), Data: d}}
}
