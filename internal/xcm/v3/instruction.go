// Package v3 decodes the XCM v3 instruction set.
package v3

import (
	"fmt"

	"github.com/danmuck/xcmtrace/internal/scale"
)

// DefaultMaxInstructions is the per-sequence instruction cap v3 applies
// while decoding.
const DefaultMaxInstructions = 100

// Xcm is an ordered v3 instruction sequence.
type Xcm []Instruction

// Instruction is one decoded v3 instruction. Nested is set only for
// SetErrorHandler and SetAppendix; every other operand is kept as raw bytes.
type Instruction struct {
	Op       Opcode
	Nested   Xcm
	Operands []byte
}

func (i Instruction) Tag() string {
	return i.Op.String()
}

func (i Instruction) Children() (Xcm, bool) {
	if i.Op == SetErrorHandler || i.Op == SetAppendix {
		return i.Nested, true
	}
	return nil, false
}

// Decode reads one instruction sequence from d. maxInstructions caps every
// sequence, nested ones included; a value <= 0 disables the cap.
func Decode(d *scale.Decoder, maxInstructions int) (Xcm, error) {
	r := reader{d: d, maxInstructions: maxInstructions}
	return r.xcm()
}

type reader struct {
	d               *scale.Decoder
	maxInstructions int
}

func (r reader) xcm() (Xcm, error) {
	if err := r.d.Descend(); err != nil {
		return nil, err
	}
	defer r.d.Ascend()

	n, err := r.d.Length()
	if err != nil {
		return nil, err
	}
	if r.maxInstructions > 0 && n > r.maxInstructions {
		return nil, fmt.Errorf("%w: %d instructions > %d", scale.ErrTooManyItems, n, r.maxInstructions)
	}
	out := make(Xcm, 0, n)
	for i := 0; i < n; i++ {
		inst, err := r.instruction()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out = append(out, inst)
	}
	return out, nil
}

func (r reader) instruction() (Instruction, error) {
	v, err := r.d.Variant("Instruction", OpcodeCount)
	if err != nil {
		return Instruction{}, err
	}
	op := Opcode(v)
	start := r.d.Position()
	nested, err := r.operands(op)
	if err != nil {
		return Instruction{}, fmt.Errorf("%s: %w", op, err)
	}
	inst := Instruction{Op: op, Nested: nested}
	if _, ok := inst.Children(); !ok {
		inst.Operands = r.d.Span(start)
	}
	return inst, nil
}

func (r reader) skipXcm(*scale.Decoder) error {
	_, err := r.xcm()
	return err
}

func (r reader) operands(op Opcode) (Xcm, error) {
	var steps []scale.Step
	switch op {
	case WithdrawAsset, ReserveAssetDeposited, ReceiveTeleportedAsset, BurnAsset, ExpectAsset:
		steps = []scale.Step{multiAssets}
	case QueryResponse:
		steps = []scale.Step{scale.SkipCompact64, response, weight, optionalMultiLocation}
	case TransferAsset, ClaimAsset:
		steps = []scale.Step{multiAssets, multiLocation}
	case TransferReserveAsset:
		steps = []scale.Step{multiAssets, multiLocation, r.skipXcm}
	case Transact:
		steps = []scale.Step{originKind, weight, doubleEncoded}
	case HrmpNewChannelOpenRequest, HrmpChannelClosing:
		steps = []scale.Step{scale.SkipCompact32, scale.SkipCompact32, scale.SkipCompact32}
	case HrmpChannelAccepted:
		steps = []scale.Step{scale.SkipCompact32}
	case ClearOrigin, RefundSurplus, ClearError, UnsubscribeVersion, ClearTransactStatus, ClearTopic:
	case DescendOrigin:
		steps = []scale.Step{junctions}
	case ReportError, ReportTransactStatus:
		steps = []scale.Step{queryResponseInfo}
	case DepositAsset:
		steps = []scale.Step{multiAssetFilter, multiLocation}
	case DepositReserveAsset, InitiateReserveWithdraw, InitiateTeleport:
		steps = []scale.Step{multiAssetFilter, multiLocation, r.skipXcm}
	case ExchangeAsset:
		steps = []scale.Step{multiAssetFilter, multiAssets, scale.SkipBool}
	case ReportHolding:
		steps = []scale.Step{queryResponseInfo, multiAssetFilter}
	case BuyExecution:
		steps = []scale.Step{multiAsset, weightLimit}
	case SetErrorHandler, SetAppendix:
		return r.xcm()
	case Trap:
		steps = []scale.Step{scale.SkipCompact64}
	case SubscribeVersion:
		steps = []scale.Step{scale.SkipCompact64, weight}
	case ExpectOrigin:
		steps = []scale.Step{optionalMultiLocation}
	case AliasOrigin:
		steps = []scale.Step{multiLocation}
	case ExpectError:
		steps = []scale.Step{executionResult}
	case ExpectTransactStatus:
		steps = []scale.Step{maybeErrorCode}
	case QueryPallet:
		steps = []scale.Step{scale.Bytes(0), queryResponseInfo}
	case ExpectPallet:
		steps = []scale.Step{scale.SkipCompact32, scale.Bytes(0), scale.Bytes(0), scale.SkipCompact32, scale.SkipCompact32}
	case UniversalOrigin:
		steps = []scale.Step{junction}
	case ExportMessage:
		steps = []scale.Step{networkID, junctions, r.skipXcm}
	case LockAsset, UnlockAsset, NoteUnlockable, RequestUnlock:
		steps = []scale.Step{multiAsset, multiLocation}
	case SetFeesMode:
		steps = []scale.Step{scale.SkipBool}
	case SetTopic:
		steps = []scale.Step{scale.Fixed(32)}
	case UnpaidExecution:
		steps = []scale.Step{weightLimit, optionalMultiLocation}
	}
	return nil, scale.Sequence(r.d, steps...)
}
