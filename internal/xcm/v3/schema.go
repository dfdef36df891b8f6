package v3

import (
	"bytes"

	"github.com/danmuck/xcmtrace/internal/scale"
)

// Bounds applied by v3 when decoding bounded collections.
const (
	MaxItemsInMultiAssets = 20
	MaxPalletsInfo        = 64
	MaxPalletNameLen      = 48
	MaxDispatchErrorLen   = 128
)

var networkID = scale.Enum("NetworkId",
	scale.Fixed(32),                              // ByGenesis
	scale.Struct(scale.SkipU64, scale.Fixed(32)), // ByFork
	nil,                                          // Polkadot
	nil,                                          // Kusama
	nil,                                          // Westend
	nil,                                          // Rococo
	nil,                                          // Wococo
	scale.SkipCompact64,                          // Ethereum
	nil,                                          // BitcoinCore
	nil,                                          // BitcoinCash
)

var optionalNetworkID = scale.Optional(networkID)

var bodyID = scale.Enum("BodyId",
	nil,                 // Unit
	scale.Fixed(4),      // Moniker
	scale.SkipCompact32, // Index
	nil,                 // Executive
	nil,                 // Technical
	nil,                 // Legislative
	nil,                 // Judicial
	nil,                 // Defense
	nil,                 // Administration
	nil,                 // Treasury
)

var fraction = scale.Struct(scale.SkipCompact32, scale.SkipCompact32)

var bodyPart = scale.Enum("BodyPart",
	nil,                 // Voice
	scale.SkipCompact32, // Members
	fraction,            // Fraction
	fraction,            // AtLeastProportion
	fraction,            // MoreThanProportion
)

var (
	accountID32    = scale.Struct(optionalNetworkID, scale.Fixed(32))
	accountIndex64 = scale.Struct(optionalNetworkID, scale.SkipCompact64)
	accountKey20   = scale.Struct(optionalNetworkID, scale.Fixed(20))
	generalKey     = scale.Struct(scale.SkipU8, scale.Fixed(32))
	plurality      = scale.Struct(bodyID, bodyPart)
)

var junction = scale.Enum("Junction",
	scale.SkipCompact32,  // Parachain
	accountID32,          // AccountId32
	accountIndex64,       // AccountIndex64
	accountKey20,         // AccountKey20
	scale.SkipU8,         // PalletInstance
	scale.SkipCompact128, // GeneralIndex
	generalKey,           // GeneralKey
	nil,                  // OnlyChild
	plurality,            // Plurality
	networkID,            // GlobalConsensus
)

// junctions is Here or X1..X8.
func junctions(d *scale.Decoder) error {
	n, err := d.Variant("Junctions", 9)
	if err != nil {
		return err
	}
	for i := 0; i < int(n); i++ {
		if err := junction(d); err != nil {
			return err
		}
	}
	return nil
}

var multiLocation = scale.Struct(scale.SkipU8, junctions)

var optionalMultiLocation = scale.Optional(multiLocation)

var assetID = scale.Enum("AssetId",
	multiLocation,   // Concrete
	scale.Fixed(32), // Abstract
)

var assetInstance = scale.Enum("AssetInstance",
	nil,                  // Undefined
	scale.SkipCompact128, // Index
	scale.Fixed(4),       // Array4
	scale.Fixed(8),       // Array8
	scale.Fixed(16),      // Array16
	scale.Fixed(32),      // Array32
)

var fungibility = scale.Enum("Fungibility",
	scale.SkipCompact128, // Fungible
	assetInstance,        // NonFungible
)

var multiAsset = scale.Struct(assetID, fungibility)

// assetKey is the comparable form of a MultiAsset.
type assetKey struct {
	id          []byte
	fun         []byte
	nonFungible bool
}

func decodeAsset(d *scale.Decoder) (assetKey, error) {
	id, err := d.Capture(assetID)
	if err != nil {
		return assetKey{}, err
	}
	fun, err := d.Capture(fungibility)
	if err != nil {
		return assetKey{}, err
	}
	return assetKey{id: id, fun: fun, nonFungible: fun[0] == 1}, nil
}

// assetsInOrder requires strictly ascending asset ids. Equal ids may repeat
// only when one side is non-fungible and the assets still ascend.
func assetsInOrder(prev, next assetKey) bool {
	switch c := bytes.Compare(prev.id, next.id); {
	case c < 0:
		return true
	case c > 0:
		return false
	}
	return (prev.nonFungible || next.nonFungible) && bytes.Compare(prev.fun, next.fun) < 0
}

var multiAssets = scale.SortedVec(MaxItemsInMultiAssets, decodeAsset, assetsInOrder)

var wildFungibility = scale.Enum("WildFungibility", nil, nil)

var wildMultiAsset = scale.Enum("WildMultiAsset",
	nil,                                                         // All
	scale.Struct(assetID, wildFungibility),                      // AllOf
	scale.SkipCompact32,                                         // AllCounted
	scale.Struct(assetID, wildFungibility, scale.SkipCompact32), // AllOfCounted
)

var multiAssetFilter = scale.Enum("MultiAssetFilter",
	multiAssets,    // Definite
	wildMultiAsset, // Wild
)

var weight = scale.Struct(scale.SkipCompact64, scale.SkipCompact64)

var weightLimit = scale.Enum("WeightLimit",
	nil,    // Unlimited
	weight, // Limited
)

var queryResponseInfo = scale.Struct(multiLocation, scale.SkipCompact64, weight)

var maybeErrorCode = scale.Enum("MaybeErrorCode",
	nil,                              // Success
	scale.Bytes(MaxDispatchErrorLen), // Error
	scale.Bytes(MaxDispatchErrorLen), // TruncatedError
)

var palletInfo = scale.Struct(
	scale.SkipCompact32,           // index
	scale.Bytes(MaxPalletNameLen), // name
	scale.Bytes(MaxPalletNameLen), // module_name
	scale.SkipCompact32,           // major
	scale.SkipCompact32,           // minor
	scale.SkipCompact32,           // patch
)

var xcmError = scale.Enum("Error",
	nil,           // Overflow
	nil,           // Unimplemented
	nil,           // UntrustedReserveLocation
	nil,           // UntrustedTeleportLocation
	nil,           // LocationFull
	nil,           // LocationNotInvertible
	nil,           // BadOrigin
	nil,           // InvalidLocation
	nil,           // AssetNotFound
	nil,           // FailedToTransactAsset
	nil,           // NotWithdrawable
	nil,           // LocationCannotHold
	nil,           // ExceedsMaxMessageSize
	nil,           // DestinationUnsupported
	nil,           // Transport
	nil,           // Unroutable
	nil,           // UnknownClaim
	nil,           // FailedToDecode
	nil,           // MaxWeightInvalid
	nil,           // NotHoldingFees
	nil,           // TooExpensive
	scale.SkipU64, // Trap
	nil,           // ExpectationFalse
	nil,           // PalletNotFound
	nil,           // NameMismatch
	nil,           // VersionIncompatible
	nil,           // HoldingWouldOverflow
	nil,           // ExportError
	nil,           // ReanchorFailed
	nil,           // NoDeal
	nil,           // FeesNotMet
	nil,           // LockError
	nil,           // NoPermission
	nil,           // Unanchored
	nil,           // NotDepositable
	nil,           // UnhandledXcmVersion
	weight,        // WeightLimitReached
	nil,           // Barrier
	nil,           // WeightNotComputable
	nil,           // ExceedsStackLimit
)

var executionResult = scale.Optional(scale.Struct(scale.SkipU32, xcmError))

var response = scale.Enum("Response",
	nil,                                   // Null
	multiAssets,                           // Assets
	executionResult,                       // ExecutionResult
	scale.SkipU32,                         // Version
	scale.Vec(MaxPalletsInfo, palletInfo), // PalletsInfo
	maybeErrorCode,                        // DispatchResult
)

var originKind = scale.Enum("OriginKind", nil, nil, nil, nil)

var doubleEncoded = scale.Bytes(0)
