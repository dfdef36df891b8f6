package xcm

import (
	"fmt"
	"strconv"

	"github.com/danmuck/xcmtrace/internal/scale"
	v2 "github.com/danmuck/xcmtrace/internal/xcm/v2"
	v3 "github.com/danmuck/xcmtrace/internal/xcm/v3"
	"github.com/rs/zerolog/log"
)

// Version is the VersionedXcm discriminant.
type Version uint8

const (
	V2 Version = 2
	V3 Version = 3
)

func (v Version) String() string {
	return "v" + strconv.Itoa(int(v))
}

// VersionedMessage is a decoded message. Only the field matching Version
// is populated.
type VersionedMessage struct {
	Version Version
	V2      v2.Xcm
	V3      v3.Xcm
}

// Len reports the number of top-level instructions.
func (m VersionedMessage) Len() int {
	switch m.Version {
	case V2:
		return len(m.V2)
	case V3:
		return len(m.V3)
	}
	return 0
}

// MaxDepthLimit is the largest accepted Limits.MaxDepth and the default.
// Every nesting level costs at least two input bytes, so only inputs built
// almost entirely of nesting reach it.
const MaxDepthLimit = 1 << 16

// Limits constrains decode depth and size.
type Limits struct {
	// MaxDepth bounds instruction sequence nesting; the top-level sequence
	// is depth 1.
	MaxDepth int
	// MaxInstructions caps every v3 sequence.
	MaxInstructions int
	// Strict rejects bytes left over after the message.
	Strict bool
}

func DefaultLimits() Limits {
	return Limits{
		MaxDepth:        MaxDepthLimit,
		MaxInstructions: v3.DefaultMaxInstructions,
	}
}

// Decode parses b as a versioned message. Decoding is all-or-nothing: on
// failure the returned error is a *DecodeError and no message is returned.
func Decode(b []byte, limits Limits) (VersionedMessage, error) {
	msg, err := decode(b, limits)
	if err != nil {
		log.Debug().Err(err).Int("bytes", len(b)).Msg("xcm.Decode failed")
		return VersionedMessage{}, &DecodeError{Cause: err}
	}
	log.Debug().
		Stringer("version", msg.Version).
		Int("instructions", msg.Len()).
		Int("bytes", len(b)).
		Msg("xcm.Decode")
	return msg, nil
}

func decode(b []byte, limits Limits) (VersionedMessage, error) {
	d := scale.NewDecoder(b, limits.MaxDepth)
	tag, err := d.U8()
	if err != nil {
		return VersionedMessage{}, err
	}

	msg := VersionedMessage{Version: Version(tag)}
	switch msg.Version {
	case V2:
		msg.V2, err = v2.Decode(d)
	case V3:
		msg.V3, err = v3.Decode(d, limits.MaxInstructions)
	default:
		return VersionedMessage{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, tag)
	}
	if err != nil {
		return VersionedMessage{}, err
	}

	if rest := d.Remaining(); rest > 0 {
		if limits.Strict {
			return VersionedMessage{}, d.Finish()
		}
		log.Debug().Int("trailing", rest).Msg("xcm.Decode ignoring trailing bytes")
	}
	return msg, nil
}
