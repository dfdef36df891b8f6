package v2

import (
	"bytes"

	"github.com/danmuck/xcmtrace/internal/scale"
)

// Operand layouts for the v2 instruction set. Junctions, locations and
// assets are the v1 types that v2 reuses unchanged.

var networkID = scale.Enum("NetworkId",
	nil,            // Any
	scale.Bytes(0), // Named
	nil,            // Polkadot
	nil,            // Kusama
)

var bodyID = scale.Enum("BodyId",
	nil,                 // Unit
	scale.Bytes(0),      // Named
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

var junction = scale.Enum("Junction",
	scale.SkipCompact32,                          // Parachain
	scale.Struct(networkID, scale.Fixed(32)),     // AccountId32
	scale.Struct(networkID, scale.SkipCompact64), // AccountIndex64
	scale.Struct(networkID, scale.Fixed(20)),     // AccountKey20
	scale.SkipU8,                                 // PalletInstance
	scale.SkipCompact128,                         // GeneralIndex
	scale.Bytes(0),                               // GeneralKey
	nil,                                          // OnlyChild
	scale.Struct(bodyID, bodyPart),               // Plurality
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

var assetID = scale.Enum("AssetId",
	multiLocation,  // Concrete
	scale.Bytes(0), // Abstract
)

var assetInstance = scale.Enum("AssetInstance",
	nil,                  // Undefined
	scale.SkipCompact128, // Index
	scale.Fixed(4),       // Array4
	scale.Fixed(8),       // Array8
	scale.Fixed(16),      // Array16
	scale.Fixed(32),      // Array32
	scale.Bytes(0),       // Blob
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

var multiAssets = scale.SortedVec(0, decodeAsset, assetsInOrder)

var wildFungibility = scale.Enum("WildFungibility", nil, nil)

var wildMultiAsset = scale.Enum("WildMultiAsset",
	nil,                                    // All
	scale.Struct(assetID, wildFungibility), // AllOf
)

var multiAssetFilter = scale.Enum("MultiAssetFilter",
	multiAssets,    // Definite
	wildMultiAsset, // Wild
)

// xcmError has no variant for Transport, which is never encoded.
var xcmError = scale.Enum("Error",
	nil,           // Overflow
	nil,           // Unimplemented
	nil,           // UntrustedReserveLocation
	nil,           // UntrustedTeleportLocation
	nil,           // MultiLocationFull
	nil,           // MultiLocationNotInvertible
	nil,           // BadOrigin
	nil,           // InvalidLocation
	nil,           // AssetNotFound
	nil,           // FailedToTransactAsset
	nil,           // NotWithdrawable
	nil,           // LocationCannotHold
	nil,           // ExceedsMaxMessageSize
	nil,           // DestinationUnsupported
	nil,           // Unroutable
	nil,           // UnknownClaim
	nil,           // FailedToDecode
	nil,           // MaxWeightInvalid
	nil,           // NotHoldingFees
	nil,           // TooExpensive
	scale.SkipU64, // Trap
	nil,           // UnhandledXcmVersion
	scale.SkipU64, // WeightLimitReached
	nil,           // Barrier
	nil,           // WeightNotComputable
)

var executionResult = scale.Optional(scale.Struct(scale.SkipU32, xcmError))

var response = scale.Enum("Response",
	nil,             // Null
	multiAssets,     // Assets
	executionResult, // ExecutionResult
	scale.SkipU32,   // Version
)

var originKind = scale.Enum("OriginKind", nil, nil, nil, nil)

var weightLimit = scale.Enum("WeightLimit",
	nil,                 // Unlimited
	scale.SkipCompact64, // Limited
)

var doubleEncoded = scale.Bytes(0)
