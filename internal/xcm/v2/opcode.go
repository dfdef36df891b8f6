package v2

import "strconv"

// Opcode is the wire discriminant of a v2 instruction.
type Opcode uint8

const (
	WithdrawAsset Opcode = iota
	ReserveAssetDeposited
	ReceiveTeleportedAsset
	QueryResponse
	TransferAsset
	TransferReserveAsset
	Transact
	HrmpNewChannelOpenRequest
	HrmpChannelAccepted
	HrmpChannelClosing
	ClearOrigin
	DescendOrigin
	ReportError
	DepositAsset
	DepositReserveAsset
	ExchangeAsset
	InitiateReserveWithdraw
	InitiateTeleport
	QueryHolding
	BuyExecution
	RefundSurplus
	SetErrorHandler
	SetAppendix
	ClearError
	ClaimAsset
	Trap
	SubscribeVersion
	UnsubscribeVersion
)

// OpcodeCount is the number of instructions defined by v2.
const OpcodeCount = int(UnsubscribeVersion) + 1

func (o Opcode) Valid() bool {
	return int(o) < OpcodeCount
}

// String returns the instruction tag. The switch is kept exhaustive by the
// exhaustive linter; values outside the instruction set print numerically.
func (o Opcode) String() string {
	switch o {
	case WithdrawAsset:
		return "WithdrawAsset"
	case ReserveAssetDeposited:
		return "ReserveAssetDeposited"
	case ReceiveTeleportedAsset:
		return "ReceiveTeleportedAsset"
	case QueryResponse:
		return "QueryResponse"
	case TransferAsset:
		return "TransferAsset"
	case TransferReserveAsset:
		return "TransferReserveAsset"
	case Transact:
		return "Transact"
	case HrmpNewChannelOpenRequest:
		return "HrmpNewChannelOpenRequest"
	case HrmpChannelAccepted:
		return "HrmpChannelAccepted"
	case HrmpChannelClosing:
		return "HrmpChannelClosing"
	case ClearOrigin:
		return "ClearOrigin"
	case DescendOrigin:
		return "DescendOrigin"
	case ReportError:
		return "ReportError"
	case DepositAsset:
		return "DepositAsset"
	case DepositReserveAsset:
		return "DepositReserveAsset"
	case ExchangeAsset:
		return "ExchangeAsset"
	case InitiateReserveWithdraw:
		return "InitiateReserveWithdraw"
	case InitiateTeleport:
		return "InitiateTeleport"
	case QueryHolding:
		return "QueryHolding"
	case BuyExecution:
		return "BuyExecution"
	case RefundSurplus:
		return "RefundSurplus"
	case SetErrorHandler:
		return "SetErrorHandler"
	case SetAppendix:
		return "SetAppendix"
	case ClearError:
		return "ClearError"
	case ClaimAsset:
		return "ClaimAsset"
	case Trap:
		return "Trap"
	case SubscribeVersion:
		return "SubscribeVersion"
	case UnsubscribeVersion:
		return "UnsubscribeVersion"
	}
	return "Opcode(" + strconv.Itoa(int(o)) + ")"
}
