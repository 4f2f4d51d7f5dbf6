package replay

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz/lzma"
)

// lzmaHeaderSize is the classic .lzma header: properties byte, u32
// dictionary size and u64 uncompressed size.
const lzmaHeaderSize = 1 + 4 + 8

// lzmaHeader builds the classic header the replay stores only in part.
func lzmaHeader(props [8]byte, size uint32) [lzmaHeaderSize]byte {
	var h [lzmaHeaderSize]byte
	copy(h[:5], props[:5])
	binary.LittleEndian.PutUint64(h[5:], uint64(size))
	return h
}

// Decompress inflates a raw LZMA1 stream that must produce exactly maxOut
// bytes. The decoder stops at size, so input past the end of the stream is
// never decoded and a damaged tail is accepted.
func Decompress(props [8]byte, size uint32, input []byte, maxOut int) ([]byte, error) {
	cfg := lzma.ReaderConfig{DictCap: lzma.MinDictCap}
	if err := cfg.Verify(); err != nil {
		return nil, decompressError("Unable to initialize decode stream", err)
	}
	header := lzmaHeader(props, size)
	src := io.MultiReader(bytes.NewReader(header[:]), bytes.NewReader(input))
	r, err := cfg.NewReader(src)
	if err != nil {
		return nil, decompressError("Cannot decode header", err)
	}

	out := make([]byte, maxOut)
	total, err := io.ReadFull(r, out)
	switch {
	case err == io.ErrUnexpectedEOF || err == io.EOF:
		return nil, decompressError("Total decompressed size mismatch", nil)
	case err != nil:
		return nil, decompressError("Stream decoding failed", err)
	}

	// The stream must end here.
	var probe [1]byte
	n, err := r.Read(probe[:])
	switch {
	case n > 0:
		return nil, decompressError("Total decompressed size mismatch", nil)
	case err != nil && err != io.EOF:
		return nil, decompressError("Stream decoding failed", err)
	}
	log.Trace().Int("total", total).Int("input", len(input)).Msg("payload decompressed")
	return out, nil
}

// Payload returns the replay body following a header: decompressed when
// the header says so, verbatim otherwise.
func Payload(h Header, rest []byte) ([]byte, error) {
	if h.Has(FlagCompressed) {
		return Decompress(h.Props, h.Size, rest, int(h.Size))
	}
	if len(rest) != int(h.Size) {
		return nil, ErrSizeMismatch
	}
	return append([]byte(nil), rest...), nil
}
