package replay

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
)

const (
	MagicYRP1 uint32 = 0x31707279 // "yrp1", nested replay
	MagicYRPX uint32 = 0x58707279 // "yrpX", outer replay
)

// Header flags.
const (
	FlagCompressed     uint32 = 0x001
	FlagTag            uint32 = 0x002
	FlagDecoded        uint32 = 0x004
	FlagSingleMode     uint32 = 0x008
	FlagLua64          uint32 = 0x010
	FlagNewReplay      uint32 = 0x020
	FlagHandTest       uint32 = 0x040
	FlagDirectSeed     uint32 = 0x080
	Flag64BitDuelFlag  uint32 = 0x100
	FlagExtendedHeader uint32 = 0x200
)

const (
	BaseHeaderSize     = 32
	ExtendedHeaderSize = 72

	LatestHeaderVersion uint64 = 1

	minSupportedCore = 10
)

type Header struct {
	Type    uint32
	Version uint32
	Flags   uint32
	Seed    uint32
	Size    uint32
	Hash    uint32
	Props   [8]byte

	// Set only with FlagExtendedHeader.
	HeaderVersion uint64
	DuelSeed      [4]uint64
}

func (h Header) Has(flag uint32) bool { return h.Flags&flag != 0 }

func (h Header) Extended() bool { return h.Has(FlagExtendedHeader) }

// Len is the number of bytes the header occupies in the file.
func (h Header) Len() int { return HeaderSize(h) }

// CoreMajor is the major version of the core that recorded the replay.
func (h Header) CoreMajor() uint8 { return uint8(h.Version >> 16) }

func HeaderSize(h Header) int {
	if h.Extended() {
		return ExtendedHeaderSize
	}
	return BaseHeaderSize
}

// IsSupportedCore rejects cores older than 10, which wrote card races as
// 32-bit values.
func IsSupportedCore(version uint32) bool {
	return (version>>16)&0xff >= minSupportedCore
}

// ParseHeader decodes the header at the start of b and returns it with
// the number of bytes it occupies.
func ParseHeader(b []byte, magic uint32) (Header, int, error) {
	var h Header
	if len(b) < BaseHeaderSize {
		return h, 0, ErrTooSmall
	}
	le := binary.LittleEndian
	h.Type = le.Uint32(b[0:])
	h.Version = le.Uint32(b[4:])
	h.Flags = le.Uint32(b[8:])
	h.Seed = le.Uint32(b[12:])
	h.Size = le.Uint32(b[16:])
	h.Hash = le.Uint32(b[20:])
	copy(h.Props[:], b[24:32])
	if h.Type != magic {
		return h, 0, ErrWrongMagic
	}
	if !h.Extended() {
		return h, BaseHeaderSize, nil
	}
	if len(b) < ExtendedHeaderSize {
		return h, 0, ErrTooSmall
	}
	h.HeaderVersion = le.Uint64(b[32:])
	for i := range h.DuelSeed {
		h.DuelSeed[i] = le.Uint64(b[40+8*i:])
	}
	if h.HeaderVersion > LatestHeaderVersion {
		return h, 0, ErrVersionTooNew
	}
	log.Debug().
		Uint32("flags", h.Flags).
		Uint64("header_version", h.HeaderVersion).
		Msg("extended header")
	return h, ExtendedHeaderSize, nil
}
