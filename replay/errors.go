package replay

import "strconv"

// Kind enumerates every way extracting a replay can fail.
type Kind uint8

const (
	KindShortRead Kind = iota + 1
	KindTooSmall
	KindWrongMagic
	KindVersionTooNew
	KindHandTestRejected
	KindSizeMismatch
	KindDecompress
	KindCoreTooOld
	KindMissingInner
	KindInnerTooSmall
	KindTruncatedFrame
	KindUnknownOpcode
	KindFrameLengthMismatch
	KindIoOpen
	KindIoRead
	KindBadOption
)

var KindDictionary = map[Kind]string{
	KindShortRead:           "short_read",
	KindTooSmall:            "too_small",
	KindWrongMagic:          "wrong_magic",
	KindVersionTooNew:       "version_too_new",
	KindHandTestRejected:    "hand_test_rejected",
	KindSizeMismatch:        "size_mismatch",
	KindDecompress:          "decompress",
	KindCoreTooOld:          "core_too_old",
	KindMissingInner:        "missing_inner",
	KindInnerTooSmall:       "inner_too_small",
	KindTruncatedFrame:      "truncated_frame",
	KindUnknownOpcode:       "unknown_opcode",
	KindFrameLengthMismatch: "frame_length_mismatch",
	KindIoOpen:              "io_open",
	KindIoRead:              "io_read",
	KindBadOption:           "bad_option",
}

func (k Kind) String() string { return KindDictionary[k] }

// Error is returned by every operation of this package. Error() is the
// diagnostic line shown to users, without the trailing period.
type Error struct {
	Kind Kind
	// Arg is the kind's parameter: the sub-reason of a decompression
	// failure, the message number, the path or the offending option.
	Arg string
	Err error
}

// Sentinels for errors.Is. Matching is by kind only.
var (
	ErrShortRead           = &Error{Kind: KindShortRead}
	ErrTooSmall            = &Error{Kind: KindTooSmall}
	ErrWrongMagic          = &Error{Kind: KindWrongMagic}
	ErrVersionTooNew       = &Error{Kind: KindVersionTooNew}
	ErrHandTestRejected    = &Error{Kind: KindHandTestRejected}
	ErrSizeMismatch        = &Error{Kind: KindSizeMismatch}
	ErrDecompress          = &Error{Kind: KindDecompress}
	ErrCoreTooOld          = &Error{Kind: KindCoreTooOld}
	ErrMissingInner        = &Error{Kind: KindMissingInner}
	ErrInnerTooSmall       = &Error{Kind: KindInnerTooSmall}
	ErrTruncatedFrame      = &Error{Kind: KindTruncatedFrame}
	ErrUnknownOpcode       = &Error{Kind: KindUnknownOpcode}
	ErrFrameLengthMismatch = &Error{Kind: KindFrameLengthMismatch}
	ErrIoOpen              = &Error{Kind: KindIoOpen}
	ErrIoRead              = &Error{Kind: KindIoRead}
	ErrBadOption           = &Error{Kind: KindBadOption}
)

// argInner marks a size mismatch found in the nested replay.
const argInner = "inner"

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindShortRead:
		return "Unexpected end of replay data"
	case KindTooSmall:
		return "File too small"
	case KindWrongMagic:
		return "Not a yrp or yrpX file"
	case KindVersionTooNew:
		return "Replay version is too new"
	case KindHandTestRejected:
		return "Replay is from hand test mode"
	case KindSizeMismatch:
		if e.Arg == argInner {
			return "Yrp buffer size doesn't match header"
		}
		return "File size doesn't match header"
	case KindDecompress:
		return "Error decompressing replay: " + e.Arg
	case KindCoreTooOld:
		return "Version of core used in this replay is too old"
	case KindMissingInner:
		return "Replay doesn't have OLD_REPLAY_MODE"
	case KindInnerTooSmall:
		return "Yrp buffer too small"
	case KindTruncatedFrame:
		return "Unexpectedly short size for next message"
	case KindUnknownOpcode:
		return "Encountered unknown core message number: " + e.Arg
	case KindFrameLengthMismatch:
		return "Read length for message is mismatched"
	case KindIoOpen:
		return "Could not open file '" + e.Arg + "'"
	case KindIoRead:
		if e.Err != nil {
			return "Could not read file: " + e.Err.Error()
		}
		return "Could not read file"
	case KindBadOption:
		if e.Arg == "" {
			return "No input file or flags"
		}
		return "Unknown option '" + e.Arg + "'"
	}
	return "replay error(kind=" + strconv.Itoa(int(e.Kind)) + ")"
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func unknownOpcode(n uint8) error {
	return &Error{Kind: KindUnknownOpcode, Arg: strconv.Itoa(int(n))}
}

func decompressError(reason string, err error) error {
	return &Error{Kind: KindDecompress, Arg: reason, Err: err}
}

// IoOpenError wraps a failure to open path.
func IoOpenError(path string, err error) error {
	return &Error{Kind: KindIoOpen, Arg: path, Err: err}
}

func IoReadError(err error) error {
	return &Error{Kind: KindIoRead, Err: err}
}

// BadOptionError reports an unusable command line. An empty arg means no
// input file or no flags were given.
func BadOptionError(arg string) error {
	return &Error{Kind: KindBadOption, Arg: arg}
}
