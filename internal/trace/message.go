package trace

import (
	"errors"
	"fmt"

	"github.com/danmuck/xcmtrace/internal/xcm"
	v2 "github.com/danmuck/xcmtrace/internal/xcm/v2"
	v3 "github.com/danmuck/xcmtrace/internal/xcm/v3"
)

var ErrUnknownVersion = errors.New("trace: unknown message version")

// Message renders m prefixed with the version it was decoded as.
func Message(m xcm.VersionedMessage) (string, error) {
	switch m.Version {
	case xcm.V2:
		return Render(m.Version.String(), m.V2, v2.Instruction.Tag, v2.Instruction.Children), nil
	case xcm.V3:
		return Render(m.Version.String(), m.V3, v3.Instruction.Tag, v3.Instruction.Children), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownVersion, m.Version)
}
