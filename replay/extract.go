package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"yrp-lite/card"
	"yrp-lite/duel"
	"yrp-lite/ocgcore"
)

// Want selects the sections Extract produces.
type Want uint16

const (
	WantNames Want = 1 << iota
	WantDate
	WantDecks
	WantDuelSeed
	WantDuelOptions
	WantDuelMsgs
	WantDuelResponses
	WantDeckNames
)

const (
	wantsMessages = WantDecks | WantDuelSeed | WantDuelOptions | WantDuelMsgs | WantDuelResponses | WantDeckNames
	wantsInner    = WantDecks | WantDuelSeed | WantDuelOptions | WantDuelResponses | WantDeckNames
)

func (w Want) Has(o Want) bool { return w&o != 0 }

// Serializer turns the decoded message stream into bytes.
type Serializer interface {
	Serialize(r *duel.Replay) ([]byte, error)
}

// CardNamer resolves card codes to display names. Codes it does not know
// are left out of the result.
type CardNamer interface {
	CardNames(codes []card.Code) (map[card.Code]string, error)
}

type Options struct {
	Want       Want
	Serializer Serializer
	// Encoder defaults to ocgcore.NewEncoder().
	Encoder ocgcore.Encoder
	// Location used for the date line, time.Local when nil.
	Location  *time.Location
	CardNamer CardNamer
}

// Result holds everything read from one replay file.
type Result struct {
	Want   Want
	Header Header
	Inner  *Header

	Team1, Team2 []string
	Date         time.Time
	DuelFlags    uint64
	DuelOptions  DuelOptions
	Decks        []card.Deck
	Rules        card.CardList
	CardNames    map[card.Code]string
	Replay       *duel.Replay
	Msgs         []byte
	Responses    [][]byte
}

// Extract decodes the sections opts asks for from the bytes of a yrpX file.
func Extract(data []byte, opts Options) (*Result, error) {
	h, n, err := ParseHeader(data, MagicYRPX)
	if err != nil {
		return nil, err
	}
	if h.Has(FlagHandTest) {
		return nil, ErrHandTestRejected
	}
	payload, err := Payload(h, data[n:])
	if err != nil {
		return nil, err
	}

	ex := &Result{Want: opts.Want, Header: h}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	ex.Date = time.Unix(int64(h.Seed), 0).In(loc)

	cur := NewCursor(payload)
	if opts.Want.Has(WantNames) {
		if ex.Team1, ex.Team2, err = ReadNames(h.Flags, cur); err != nil {
			return nil, err
		}
	} else if _, err := SkipDuelists(h.Flags, cur); err != nil {
		return nil, err
	}
	if ex.DuelFlags, err = ReadDuelFlags(h.Flags, cur); err != nil {
		return nil, err
	}
	if !opts.Want.Has(wantsMessages) {
		return ex, nil
	}

	if !IsSupportedCore(h.Version) {
		return nil, ErrCoreTooOld
	}
	enc := opts.Encoder
	if enc == nil {
		enc = ocgcore.NewEncoder()
	}
	msgs, err := DecodeMessages(cur.Rest(), enc, duel.NewMirror())
	if err != nil {
		return nil, err
	}
	ex.Replay = msgs.Replay
	if opts.Want.Has(WantDuelMsgs) {
		if opts.Serializer == nil {
			return nil, errors.New("replay: no serializer for message output")
		}
		if ex.Msgs, err = opts.Serializer.Serialize(msgs.Replay); err != nil {
			return nil, fmt.Errorf("serialize messages: %w", err)
		}
	}
	if !opts.Want.Has(wantsInner) {
		return ex, nil
	}

	if msgs.Inner == nil {
		return nil, ErrMissingInner
	}
	if err := ex.readInner(msgs.Inner, opts); err != nil {
		return nil, err
	}
	return ex, nil
}

func (ex *Result) readInner(region []byte, opts Options) error {
	ih, n, err := ParseHeader(region, MagicYRP1)
	switch {
	case errors.Is(err, ErrTooSmall):
		return ErrInnerTooSmall
	case err != nil:
		return err
	}
	ex.Inner = &ih

	var payload []byte
	if ih.Has(FlagCompressed) {
		if payload, err = Decompress(ih.Props, ih.Size, region[n:], int(ih.Size)); err != nil {
			return err
		}
	} else {
		if len(region)-n != int(ih.Size) {
			return &Error{Kind: KindSizeMismatch, Arg: argInner}
		}
		payload = region[n:]
	}

	if ex.DuelOptions, err = readInnerOptions(ih.Flags, payload); err != nil {
		return err
	}
	cur := NewCursor(payload)
	count, err := ReadUntilDecks(ih.Flags, cur)
	if err != nil {
		return err
	}
	if ex.Decks, err = ReadDecks(count, cur); err != nil {
		return err
	}
	if ex.Rules, err = ReadCodes(cur); err != nil {
		return err
	}
	if ex.Want.Has(WantDuelResponses) {
		if ex.Responses, err = ReadResponses(cur); err != nil {
			return err
		}
	}
	if ex.Want.Has(WantDeckNames) {
		if opts.CardNamer == nil {
			return errors.New("replay: deck names need a card database")
		}
		if ex.CardNames, err = opts.CardNamer.CardNames(deckCodes(ex.Decks)); err != nil {
			return fmt.Errorf("look up card names: %w", err)
		}
	}
	log.Debug().
		Int("duelists", count).
		Int("responses", len(ex.Responses)).
		Bool("extended", ih.Extended()).
		Msg("nested replay read")
	return nil
}

func readInnerOptions(flags uint32, payload []byte) (DuelOptions, error) {
	cur := NewCursor(payload)
	if _, err := SkipDuelists(flags, cur); err != nil {
		return DuelOptions{}, err
	}
	return ReadDuelOptions(cur)
}

func deckCodes(decks []card.Deck) []card.Code {
	seen := make(map[card.Code]struct{})
	var codes card.CardList
	for _, d := range decks {
		for _, c := range d.Main.With(d.Extra) {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				codes.Add(c)
			}
		}
	}
	return codes
}

// WriteTo writes the requested sections in their fixed order.
func (ex *Result) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if ex.Want.Has(WantNames) {
		b.WriteString(strings.Join(ex.Team1, ", "))
		b.WriteString(" vs. ")
		b.WriteString(strings.Join(ex.Team2, ", "))
		b.WriteByte('\n')
	}
	if ex.Want.Has(WantDate) {
		b.WriteString("Date: " + ex.Date.Format(time.DateTime) + "\n")
	}
	if ex.Want.Has(WantDecks) {
		for _, d := range ex.Decks {
			b.WriteString(d.String() + "\n")
		}
		b.WriteString(card.RulesLine(ex.Rules) + "\n")
	}
	if ex.Want.Has(WantDeckNames) {
		for _, d := range ex.Decks {
			ex.writeNamed(&b, "#main", d.Main)
			ex.writeNamed(&b, "#extra", d.Extra)
		}
	}
	if ex.Want.Has(WantDuelSeed) && ex.Inner != nil {
		b.WriteString(seedLine(*ex.Inner))
	}
	if ex.Want.Has(WantDuelOptions) {
		fmt.Fprintf(&b, "Duel options: %d %d %d %d\n",
			ex.DuelOptions.StartingLP, ex.DuelOptions.StartingDrawCount,
			ex.DuelOptions.DrawCountPerTurn, ex.DuelFlags)
	}
	if ex.Want.Has(WantDuelMsgs) {
		b.Write(ex.Msgs)
		b.WriteByte('\n')
	}
	if ex.Want.Has(WantDuelResponses) {
		line, err := responsesJSON(ex.Responses)
		if err != nil {
			return 0, err
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (ex *Result) writeNamed(b *strings.Builder, title string, cards card.CardList) {
	b.WriteString(title + "\n")
	for _, c := range cards {
		if name, ok := ex.CardNames[c]; ok {
			b.WriteString(name + "\n")
		} else {
			b.WriteString(c.String() + "\n")
		}
	}
}

// seedLine prints the 4x64-bit duel seed. Replays without the extended
// header only carry the 32-bit seed, printed as a single component.
func seedLine(h Header) string {
	if !h.Extended() {
		return fmt.Sprintf("Duel seed: 0x%016x\n", h.Seed)
	}
	s := h.DuelSeed
	return fmt.Sprintf("Duel seed: 0x%016x'%016x'%016x'%016x\n", s[0], s[1], s[2], s[3])
}

type responsesDoc struct {
	Responses [][]int `json:"responses"`
}

func responsesJSON(responses [][]byte) ([]byte, error) {
	doc := responsesDoc{Responses: make([][]int, 0, len(responses))}
	for _, r := range responses {
		vals := make([]int, len(r))
		for i, v := range r {
			vals[i] = int(v)
		}
		doc.Responses = append(doc.Responses, vals)
	}
	return json.Marshal(doc)
}
