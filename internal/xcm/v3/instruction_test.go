package v3

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/danmuck/xcmtrace/internal/scale"
	"github.com/stretchr/testify/require"
)

const (
	// Concrete(0, X1(PalletInstance(50))), Fungible(1000)
	asset = "00" + "00" + "01" + "04" + "32" + "00" + "a10f"
	// QueryResponseInfo{destination: (1, Here), query_id: 0, max_weight: 0/0}
	responseInfo = "0100" + "00" + "0000"
	parent       = "0100"
)

func decodeSeq(t *testing.T, s string, maxDepth, maxInstructions int) (Xcm, *scale.Decoder, error) {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err, "fixture %q", s)
	d := scale.NewDecoder(b, maxDepth)
	x, err := Decode(d, maxInstructions)
	return x, d, err
}

func opcodes(x Xcm) []Opcode {
	out := make([]Opcode, 0, len(x))
	for _, inst := range x {
		out = append(out, inst.Op)
	}
	return out
}

func TestOpcodeTagsAreDistinct(t *testing.T) {
	require.Equal(t, 48, OpcodeCount)
	seen := make(map[string]bool, OpcodeCount)
	for i := 0; i < OpcodeCount; i++ {
		tag := Opcode(i).String()
		require.NotEmpty(t, tag)
		require.False(t, strings.HasPrefix(tag, "Opcode("), "opcode %d has no tag", i)
		require.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
	require.Equal(t, "Opcode(48)", Opcode(OpcodeCount).String())
	require.Equal(t, "ReportHolding", ReportHolding.String())
}

func TestDecodeCommonFlow(t *testing.T) {
	weight := "02286bee" + "02000400" // ref_time 1e9, proof_size 65536
	in := "10" +
		"0004" + asset +
		"13" + asset + "01" + weight +
		"2c" + strings.Repeat("11", 32) +
		"2f" + "00" + "00"

	x, d, err := decodeSeq(t, in, 8, DefaultMaxInstructions)
	require.NoError(t, err)
	require.Equal(t, []Opcode{WithdrawAsset, BuyExecution, SetTopic, UnpaidExecution}, opcodes(x))
	require.Zero(t, d.Remaining())
}

func TestDecodeInstructionsAddedInV3(t *testing.T) {
	fixtures := []struct {
		op  Opcode
		hex string
	}{
		{BurnAsset, "1c" + "00"},
		{ExpectAsset, "1d" + "00"},
		{ExpectOrigin, "1e" + "00"},
		{ExpectError, "1f" + "01" + "02000000" + "24" + "0000"},
		{ExpectTransactStatus, "20" + "01" + "08" + "dead"},
		{QueryPallet, "21" + "0c" + "616263" + responseInfo},
		{ExpectPallet, "22" + "04" + "086161" + "086262" + "04" + "00"},
		{ReportTransactStatus, "23" + responseInfo},
		{ClearTransactStatus, "24"},
		{UniversalOrigin, "25" + "09" + "03"},
		{ExportMessage, "26" + "07" + "04" + "01" + "00" + "a10f" + "040a"},
		{LockAsset, "27" + asset + parent},
		{UnlockAsset, "28" + asset + parent},
		{NoteUnlockable, "29" + asset + parent},
		{RequestUnlock, "2a" + asset + parent},
		{SetFeesMode, "2b" + "01"},
		{SetTopic, "2c" + strings.Repeat("00", 32)},
		{ClearTopic, "2d"},
		{AliasOrigin, "2e" + parent},
		{UnpaidExecution, "2f" + "01" + "0000" + "01" + parent},
	}

	var b strings.Builder
	b.WriteString("50") // compact(20)
	want := make([]Opcode, 0, len(fixtures))
	for _, f := range fixtures {
		b.WriteString(f.hex)
		want = append(want, f.op)
	}

	x, d, err := decodeSeq(t, b.String(), 8, DefaultMaxInstructions)
	require.NoError(t, err)
	require.Equal(t, want, opcodes(x))
	require.Zero(t, d.Remaining())
}

func TestDecodeQueryResponseVariants(t *testing.T) {
	palletInfo := "00" + "086161" + "086262" + "04" + "00" + "00"
	cases := map[string]string{
		"null":            "03" + "00" + "00" + "0000" + "00",
		"pallets info":    "03" + "00" + "04" + "04" + palletInfo + "0000" + "00",
		"dispatch result": "03" + "00" + "05" + "00" + "0000" + "01" + parent,
		"version":         "03" + "00" + "03" + "03000000" + "0000" + "00",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			x, d, err := decodeSeq(t, "04"+body, 8, DefaultMaxInstructions)
			require.NoError(t, err)
			require.Equal(t, []Opcode{QueryResponse}, opcodes(x))
			require.Zero(t, d.Remaining())
		})
	}
}

func TestDecodeJunctionsWithNetwork(t *testing.T) {
	// TransferAsset to (0, X1(AccountId32{Some(ByGenesis(..)), id}))
	beneficiary := "00" + "01" + "01" + "01" + "00" + strings.Repeat("ab", 32) + strings.Repeat("cd", 32)
	x, _, err := decodeSeq(t, "04"+"04"+"00"+beneficiary, 8, DefaultMaxInstructions)
	require.NoError(t, err)
	require.Equal(t, []Opcode{TransferAsset}, opcodes(x))
	require.Len(t, x[0].Operands, 1+len(beneficiary)/2)
}

func TestDecodeNestedErrorHandler(t *testing.T) {
	x, _, err := decodeSeq(t, "04"+"15"+"04"+"0c"+responseInfo, 8, DefaultMaxInstructions)
	require.NoError(t, err)
	nested, ok := x[0].Children()
	require.True(t, ok)
	require.Equal(t, []Opcode{ReportError}, opcodes(nested))
	require.Nil(t, x[0].Operands)
}

func TestDecodeInstructionCap(t *testing.T) {
	_, _, err := decodeSeq(t, "9101"+strings.Repeat("0a", 100), 8, DefaultMaxInstructions)
	require.NoError(t, err)

	_, _, err = decodeSeq(t, "9501"+strings.Repeat("0a", 101), 8, DefaultMaxInstructions)
	require.ErrorIs(t, err, scale.ErrTooManyItems)

	_, _, err = decodeSeq(t, "9501"+strings.Repeat("0a", 101), 8, 0)
	require.NoError(t, err)

	// the cap applies to nested sequences as well
	_, _, err = decodeSeq(t, "04"+"16"+"0c"+"0a0a0a", 8, 2)
	require.ErrorIs(t, err, scale.ErrTooManyItems)
}

// sortedAssets encodes n fungible assets Concrete(0, X1(Parachain(i))) for
// i in 0..n-1, n < 64.
func sortedAssets(n int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%02x", n<<2))
	for i := 0; i < n; i++ {
		b.WriteString("00" + "00" + "01" + "00" + fmt.Sprintf("%02x", i<<2) + "00" + "04")
	}
	return b.String()
}

func TestDecodeMultiAssetsBound(t *testing.T) {
	_, _, err := decodeSeq(t, "04"+"00"+sortedAssets(MaxItemsInMultiAssets+1), 8, DefaultMaxInstructions)
	require.ErrorIs(t, err, scale.ErrTooManyItems)

	_, _, err = decodeSeq(t, "04"+"00"+sortedAssets(MaxItemsInMultiAssets), 8, DefaultMaxInstructions)
	require.NoError(t, err)
}

func TestDecodeMultiAssetsOrder(t *testing.T) {
	fungible := "00" + "0100" + "00" + "9101"
	// Concrete(1, Here), NonFungible(Array4(..))
	nft := func(b string) string { return "00" + "0100" + "01" + "02" + b }
	// Abstract([b; 32]), Fungible(1)
	abstract := func(b string) string { return "01" + strings.Repeat(b, 32) + "00" + "04" }

	accepted := []string{
		"08" + fungible + abstract("00"),
		"08" + abstract("01") + abstract("02"),
		"08" + nft("00000001") + nft("00000002"),
	}
	for _, assets := range accepted {
		_, _, err := decodeSeq(t, "04"+"00"+assets, 8, DefaultMaxInstructions)
		require.NoError(t, err, "assets %s", assets)
	}

	rejected := []string{
		"08" + fungible + fungible,
		"08" + abstract("00") + fungible,
		"08" + abstract("02") + abstract("01"),
		"08" + nft("00000002") + nft("00000001"),
		"08" + nft("00000001") + nft("00000001"),
	}
	for _, assets := range rejected {
		_, _, err := decodeSeq(t, "04"+"00"+assets, 8, DefaultMaxInstructions)
		require.ErrorIs(t, err, scale.ErrUnordered, "assets %s", assets)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want error
	}{
		{"unknown instruction", "0430", scale.ErrInvalidDiscriminant},
		{"unknown error code", "04" + "1f" + "01" + "00000000" + "28", scale.ErrInvalidDiscriminant},
		{"bad fees mode bool", "04" + "2b" + "02", scale.ErrInvalidBool},
		{"bad option", "04" + "1e" + "02", scale.ErrInvalidDiscriminant},
		{"truncated topic", "04" + "2c" + "0011", scale.ErrTruncated},
		{"dispatch error too long", "04" + "20" + "01" + "0502" + strings.Repeat("00", 129), scale.ErrTooManyItems},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := decodeSeq(t, tc.hex, 8, DefaultMaxInstructions)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
