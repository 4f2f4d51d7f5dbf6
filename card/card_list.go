package card

import "strings"

type CardList []Code

// With returns a new list holding cl followed by more.
func (cl CardList) With(more CardList) CardList {
	out := make(CardList, 0, len(cl)+len(more))
	out.Add(cl...)
	out.Add(more...)
	return out
}

func (cl *CardList) Add(codes ...Code) {
	*cl = append(*cl, codes...)
}

// Join renders the codes separated by single spaces.
func (cl CardList) Join() string {
	var sb strings.Builder
	for i, c := range cl {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Deck is one duelist's registered deck as stored in the replay.
type Deck struct {
	Main  CardList
	Extra CardList
}

// String renders the deck as "#main c1 c2 … #extra d1 d2 …".
func (d Deck) String() string {
	var sb strings.Builder
	sb.WriteString("#main")
	for _, c := range d.Main {
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	sb.WriteString(" #extra")
	for _, c := range d.Extra {
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	return sb.String()
}

// RulesLine renders the extra (side / rule) cards as "#rules e1 e2 …".
func RulesLine(cards CardList) string {
	if len(cards) == 0 {
		return "#rules"
	}
	return "#rules " + cards.Join()
}
