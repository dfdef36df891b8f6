package scale

import "errors"

var (
	ErrTruncated           = errors.New("scale: truncated data")
	ErrInvalidCompact      = errors.New("scale: invalid compact encoding")
	ErrInvalidBool         = errors.New("scale: invalid bool")
	ErrInvalidDiscriminant = errors.New("scale: invalid enum discriminant")
	ErrInvalidLength       = errors.New("scale: invalid length")
	ErrTooManyItems        = errors.New("scale: too many items")
	ErrUnordered           = errors.New("scale: collection out of order")
	ErrDepthLimit          = errors.New("scale: depth limit exceeded")
	ErrTrailingBytes       = errors.New("scale: trailing bytes")
)
