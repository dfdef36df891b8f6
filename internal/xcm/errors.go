package xcm

import "errors"

var (
	// ErrCannotParse is the fixed diagnostic every decode failure reports.
	ErrCannotParse        = errors.New("cannot parse input as versioned message")
	ErrUnsupportedVersion = errors.New("xcm: unsupported version")
)

// DecodeError reports that input bytes are not a versioned message. Its
// message never includes decoder detail; the cause is only reachable
// through errors.Is/errors.As.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return ErrCannotParse.Error()
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrCannotParse, e.Cause}
}
