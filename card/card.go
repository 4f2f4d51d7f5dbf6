package card

import "strconv"

// Code is the passcode printed on a card; 0 means "unknown / face-down".
type Code uint32

const CodeUnknown Code = 0

func (c Code) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

func (c Code) Known() bool { return c != CodeUnknown }

// Codes2uint32 flattens codes for wire encoders.
func Codes2uint32(cs []Code) []uint32 {
	out := make([]uint32, 0, len(cs))
	for _, c := range cs {
		out = append(out, uint32(c))
	}
	return out
}
