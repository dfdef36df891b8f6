package v3

import "strconv"

// Opcode is the wire discriminant of a v3 instruction.
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
	ReportHolding
	BuyExecution
	RefundSurplus
	SetErrorHandler
	SetAppendix
	ClearError
	ClaimAsset
	Trap
	SubscribeVersion
	UnsubscribeVersion
	BurnAsset
	ExpectAsset
	ExpectOrigin
	ExpectError
	ExpectTransactStatus
	QueryPallet
	ExpectPallet
	ReportTransactStatus
	ClearTransactStatus
	UniversalOrigin
	ExportMessage
	LockAsset
	UnlockAsset
	NoteUnlockable
	RequestUnlock
	SetFeesMode
	SetTopic
	ClearTopic
	AliasOrigin
	UnpaidExecution
)

// OpcodeCount is the number of instructions defined by v3.
const OpcodeCount = int(UnpaidExecution) + 1

func (o Opcode) Valid() bool {
	return int(o) < OpcodeCount
}

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
	case ReportHolding:
		return "ReportHolding"
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
	case BurnAsset:
		return "BurnAsset"
	case ExpectAsset:
		return "ExpectAsset"
	case ExpectOrigin:
		return "ExpectOrigin"
	case ExpectError:
		return "ExpectError"
	case ExpectTransactStatus:
		return "ExpectTransactStatus"
	case QueryPallet:
		return "QueryPallet"
	case ExpectPallet:
		return "ExpectPallet"
	case ReportTransactStatus:
		return "ReportTransactStatus"
	case ClearTransactStatus:
		return "ClearTransactStatus"
	case UniversalOrigin:
		return "UniversalOrigin"
	case ExportMessage:
		return "ExportMessage"
	case LockAsset:
		return "LockAsset"
	case UnlockAsset:
		return "UnlockAsset"
	case NoteUnlockable:
		return "NoteUnlockable"
	case RequestUnlock:
		return "RequestUnlock"
	case SetFeesMode:
		return "SetFeesMode"
	case SetTopic:
		return "SetTopic"
	case ClearTopic:
		return "ClearTopic"
	case AliasOrigin:
		return "AliasOrigin"
	case UnpaidExecution:
		return "UnpaidExecution"
	}
	return "Opcode(" + strconv.Itoa(int(o)) + ")"
}
