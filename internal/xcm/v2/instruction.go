// Package v2 decodes the XCM v2 instruction set.
//
// Operands are validated against their v2 layouts and kept as raw bytes,
// except for SetErrorHandler and SetAppendix whose operand is itself an
// instruction sequence and is decoded into Nested.
package v2

import (
	"fmt"

	"github.com/danmuck/xcmtrace/internal/scale"
)

// Xcm is an ordered v2 instruction sequence.
type Xcm []Instruction

// Instruction is one decoded v2 instruction.
type Instruction struct {
	Op       Opcode
	Nested   Xcm
	Operands []byte
}

func (i Instruction) Tag() string {
	return i.Op.String()
}

// Children returns the nested sequence carried by SetErrorHandler and
// SetAppendix.
func (i Instruction) Children() (Xcm, bool) {
	if i.Op == SetErrorHandler || i.Op == SetAppendix {
		return i.Nested, true
	}
	return nil, false
}

// Decode reads one instruction sequence from d. Each sequence, including
// opaque ones carried by transfer instructions, counts as one depth level.
func Decode(d *scale.Decoder) (Xcm, error) {
	if err := d.Descend(); err != nil {
		return nil, err
	}
	defer d.Ascend()

	n, err := d.Length()
	if err != nil {
		return nil, err
	}
	out := make(Xcm, 0, n)
	for i := 0; i < n; i++ {
		inst, err := decodeInstruction(d)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out = append(out, inst)
	}
	return out, nil
}

func decodeInstruction(d *scale.Decoder) (Instruction, error) {
	v, err := d.Variant("Instruction", OpcodeCount)
	if err != nil {
		return Instruction{}, err
	}
	op := Opcode(v)
	start := d.Position()
	nested, err := decodeOperands(d, op)
	if err != nil {
		return Instruction{}, fmt.Errorf("%s: %w", op, err)
	}
	inst := Instruction{Op: op, Nested: nested}
	if _, ok := inst.Children(); !ok {
		inst.Operands = d.Span(start)
	}
	return inst, nil
}

func skipXcm(d *scale.Decoder) error {
	_, err := Decode(d)
	return err
}

func decodeOperands(d *scale.Decoder, op Opcode) (Xcm, error) {
	var steps []scale.Step
	switch op {
	case WithdrawAsset, ReserveAssetDeposited, ReceiveTeleportedAsset:
		steps = []scale.Step{multiAssets}
	case QueryResponse:
		steps = []scale.Step{scale.SkipCompact64, response, scale.SkipCompact64}
	case TransferAsset:
		steps = []scale.Step{multiAssets, multiLocation}
	case TransferReserveAsset:
		steps = []scale.Step{multiAssets, multiLocation, skipXcm}
	case Transact:
		steps = []scale.Step{originKind, scale.SkipCompact64, doubleEncoded}
	case HrmpNewChannelOpenRequest:
		steps = []scale.Step{scale.SkipCompact32, scale.SkipCompact32, scale.SkipCompact32}
	case HrmpChannelAccepted:
		steps = []scale.Step{scale.SkipCompact32}
	case HrmpChannelClosing:
		steps = []scale.Step{scale.SkipCompact32, scale.SkipCompact32, scale.SkipCompact32}
	case ClearOrigin, RefundSurplus, ClearError, UnsubscribeVersion:
	case DescendOrigin:
		steps = []scale.Step{junctions}
	case ReportError:
		steps = []scale.Step{scale.SkipCompact64, multiLocation, scale.SkipCompact64}
	case DepositAsset:
		steps = []scale.Step{multiAssetFilter, scale.SkipCompact32, multiLocation}
	case DepositReserveAsset:
		steps = []scale.Step{multiAssetFilter, scale.SkipCompact32, multiLocation, skipXcm}
	case ExchangeAsset:
		steps = []scale.Step{multiAssetFilter, multiAssets}
	case InitiateReserveWithdraw, InitiateTeleport:
		steps = []scale.Step{multiAssetFilter, multiLocation, skipXcm}
	case QueryHolding:
		steps = []scale.Step{scale.SkipCompact64, multiLocation, multiAssetFilter, scale.SkipCompact64}
	case BuyExecution:
		steps = []scale.Step{multiAsset, weightLimit}
	case SetErrorHandler, SetAppendix:
		return Decode(d)
	case ClaimAsset:
		steps = []scale.Step{multiAssets, multiLocation}
	case Trap:
		steps = []scale.Step{scale.SkipCompact64}
	case SubscribeVersion:
		steps = []scale.Step{scale.SkipCompact64, scale.SkipCompact64}
	}
	return nil, scale.Sequence(d, steps...)
}
