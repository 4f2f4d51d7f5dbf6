package replay

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"

	"yrp-lite/card"
)

const (
	nameBlockSize = 40
	nameMaxUnits  = 20
	duelOptionLen = 3 * 4
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DuelOptions are the per-duel settings stored in the nested replay.
type DuelOptions struct {
	StartingLP        uint32
	StartingDrawCount uint32
	DrawCountPerTurn  uint32
}

// SkipDuelists advances past the duelist name blocks and returns how many
// duelists the replay has.
func SkipDuelists(flags uint32, cur *Cursor) (int, error) {
	if flags&FlagSingleMode != 0 {
		return 2, cur.Skip(2 * nameBlockSize)
	}
	t1, err := cur.U32()
	if err != nil {
		return 0, err
	}
	if err := cur.SkipN(t1, nameBlockSize); err != nil {
		return 0, err
	}
	t2, err := cur.U32()
	if err != nil {
		return 0, err
	}
	if err := cur.SkipN(t2, nameBlockSize); err != nil {
		return 0, err
	}
	return int(t1) + int(t2), nil
}

// ReadDuelFlags reads the duel flag word, widening it to 64 bits.
func ReadDuelFlags(flags uint32, cur *Cursor) (uint64, error) {
	if flags&Flag64BitDuelFlag != 0 {
		return cur.U64()
	}
	v, err := cur.U32()
	return uint64(v), err
}

// ReadUntilDecks walks a nested replay's preamble up to its first deck and
// returns the number of duelists.
func ReadUntilDecks(flags uint32, cur *Cursor) (int, error) {
	n, err := SkipDuelists(flags, cur)
	if err != nil {
		return 0, err
	}
	if err := cur.Skip(duelOptionLen); err != nil {
		return 0, err
	}
	if _, err := ReadDuelFlags(flags, cur); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadNames reads the duelist name blocks of both teams.
func ReadNames(flags uint32, cur *Cursor) (team1, team2 []string, err error) {
	if flags&FlagSingleMode != 0 {
		team1, err = readNameBlocks(cur, 1)
		if err != nil {
			return nil, nil, err
		}
		team2, err = readNameBlocks(cur, 1)
		return team1, team2, err
	}
	n1, err := cur.U32()
	if err != nil {
		return nil, nil, err
	}
	if team1, err = readNameBlocks(cur, n1); err != nil {
		return nil, nil, err
	}
	n2, err := cur.U32()
	if err != nil {
		return nil, nil, err
	}
	team2, err = readNameBlocks(cur, n2)
	return team1, team2, err
}

func readNameBlocks(cur *Cursor, n uint32) ([]string, error) {
	if uint64(n)*nameBlockSize > uint64(cur.Remaining()) {
		return nil, ErrShortRead
	}
	names := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		block, err := cur.Take(nameBlockSize)
		if err != nil {
			return nil, err
		}
		name, err := DecodeName(block)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// DecodeName transcodes one UTF-16LE name block, stopping at NUL, CR, LF
// or after 20 code units.
func DecodeName(block []byte) (string, error) {
	units := min(len(block)/2, nameMaxUnits)
	n := 0
	for ; n < units; n++ {
		u := binary.LittleEndian.Uint16(block[2*n:])
		if u == 0 || u == '\r' || u == '\n' {
			break
		}
	}
	out, err := utf16le.NewDecoder().Bytes(block[:2*n])
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func ReadDuelOptions(cur *Cursor) (DuelOptions, error) {
	var o DuelOptions
	var err error
	if o.StartingLP, err = cur.U32(); err != nil {
		return o, err
	}
	if o.StartingDrawCount, err = cur.U32(); err != nil {
		return o, err
	}
	o.DrawCountPerTurn, err = cur.U32()
	return o, err
}

// ReadCodes reads a u32 count followed by that many card codes.
func ReadCodes(cur *Cursor) (card.CardList, error) {
	n, err := cur.U32()
	if err != nil {
		return nil, err
	}
	if uint64(n)*4 > uint64(cur.Remaining()) {
		return nil, ErrShortRead
	}
	codes := make(card.CardList, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := cur.U32()
		if err != nil {
			return nil, err
		}
		codes = append(codes, card.Code(v))
	}
	return codes, nil
}

// ReadDecks reads n main/extra deck pairs.
func ReadDecks(n int, cur *Cursor) ([]card.Deck, error) {
	decks := make([]card.Deck, 0, min(n, cur.Remaining()/8))
	for i := 0; i < n; i++ {
		mainDeck, err := ReadCodes(cur)
		if err != nil {
			return nil, err
		}
		extra, err := ReadCodes(cur)
		if err != nil {
			return nil, err
		}
		decks = append(decks, card.Deck{Main: mainDeck, Extra: extra})
	}
	return decks, nil
}

// ReadResponses reads u8-length-prefixed responses until the data is
// exactly used up. Zero-length responses are rejected.
func ReadResponses(cur *Cursor) ([][]byte, error) {
	responses := [][]byte{}
	for cur.Remaining() > 0 {
		n, err := cur.U8()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrShortRead
		}
		b, err := cur.Take(int(n))
		if err != nil {
			return nil, err
		}
		responses = append(responses, b)
	}
	return responses, nil
}
