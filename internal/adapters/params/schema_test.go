package params

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usdcBaseSepolia = "0x036cbd53842c5426634e7929541ec2318f3dcf7e"

func TestShareDepositV1Layout(t *testing.T) {
	encoded, err := ShareDepositV1.Encode(big.NewInt(10000), usdcBaseSepolia)
	require.NoError(t, err)
	require.Len(t, encoded, 64)

	want := strings.Repeat("0", 60) + "2710" +
		strings.Repeat("0", 24) + "036cbd53842c5426634e7929541ec2318f3dcf7e"
	assert.Equal(t, want, hex.EncodeToString(encoded))
	assert.Equal(t, "0x"+want, encoded.Hex())
	assert.Equal(t, "share-deposit/v1", ShareDepositV1.ID())
	assert.Equal(t, "(uint256,address)", ShareDepositV1.Signature())
}

func TestSchemaRoundTrip(t *testing.T) {
	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	schema := MustSchema("mixed", 1,
		Field{Name: "a", Type: "uint8"},
		Field{Name: "b", Type: "uint64"},
		Field{Name: "c", Type: "uint96"},
		Field{Name: "d", Type: "address"},
		Field{Name: "e", Type: "uint"},
	)

	tests := []struct {
		name   string
		values []any
	}{
		{
			name:   "zero values",
			values: []any{big.NewInt(0), big.NewInt(0), big.NewInt(0), common.Address{}, big.NewInt(0)},
		},
		{
			name: "maximum values",
			values: []any{
				big.NewInt(255),
				new(big.Int).SetUint64(^uint64(0)),
				new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1)),
				common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff"),
				maxUint256,
			},
		},
		{
			name: "typical values",
			values: []any{
				big.NewInt(7),
				big.NewInt(1726514740),
				big.NewInt(10000),
				common.HexToAddress(usdcBaseSepolia),
				big.NewInt(42),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := schema.Encode(tt.values...)
			require.NoError(t, err)
			assert.Len(t, encoded, 32*len(tt.values))

			decoded, err := schema.Decode(encoded)
			require.NoError(t, err)
			require.Len(t, decoded, len(tt.values))
			for i := range tt.values {
				assertParamEqual(t, tt.values[i], decoded[i], schema.Fields[i].Name)
			}
		})
	}
}

func TestSchemaAcceptsGoNumericTypes(t *testing.T) {
	want, err := ShareDepositV1.Encode(big.NewInt(10000), usdcBaseSepolia)
	require.NoError(t, err)

	for _, fee := range []any{10000, int64(10000), uint64(10000), uint32(10000), "10000", "0x2710"} {
		got, err := ShareDepositV1.Encode(fee, common.HexToAddress(usdcBaseSepolia))
		require.NoError(t, err, "fee %T(%v)", fee, fee)
		assert.Equal(t, want, got, "fee %T(%v)", fee, fee)
	}
}

func TestSchemaDeterministic(t *testing.T) {
	first, err := ShareDepositV1.Encode(big.NewInt(10000), usdcBaseSepolia)
	require.NoError(t, err)
	second, err := ShareDepositV1.Encode(big.NewInt(10000), usdcBaseSepolia)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSchemaRangeEnforcement(t *testing.T) {
	twoPow256 := new(big.Int).Lsh(big.NewInt(1), 256)
	uint8Schema := MustSchema("small", 1, Field{Name: "n", Type: "uint8"})

	tests := []struct {
		name   string
		schema *Schema
		values []any
	}{
		{"uint256 overflow", ShareDepositV1, []any{twoPow256, usdcBaseSepolia}},
		{"negative big int", ShareDepositV1, []any{big.NewInt(-1), usdcBaseSepolia}},
		{"negative int", ShareDepositV1, []any{-5, usdcBaseSepolia}},
		{"negative string", ShareDepositV1, []any{"-10000", usdcBaseSepolia}},
		{"uint8 overflow", uint8Schema, []any{256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.schema.Encode(tt.values...)
			require.Error(t, err)
			var rangeErr *domain.EncodingRangeError
			assert.ErrorAs(t, err, &rangeErr)
		})
	}

	_, err := uint8Schema.Encode(255)
	assert.NoError(t, err)
}

func TestSchemaFormatEnforcement(t *testing.T) {
	checksummed := common.HexToAddress(usdcBaseSepolia).Hex()

	tests := []struct {
		name  string
		token any
	}{
		{"one digit short", usdcBaseSepolia[:len(usdcBaseSepolia)-1]},
		{"one digit too many", usdcBaseSepolia + "0"},
		{"missing prefix", strings.TrimPrefix(usdcBaseSepolia, "0x")},
		{"not hex", "0x" + strings.Repeat("g", 40)},
		{"bad checksum", flipFirstLetterCase(checksummed)},
		{"numeric literal", new(big.Int).SetBytes(common.FromHex(usdcBaseSepolia))},
		{"float literal", 1.94e46},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShareDepositV1.Encode(big.NewInt(10000), tt.token)
			require.Error(t, err)
			var formatErr *domain.EncodingFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, "token", formatErr.Field)
		})
	}

	t.Run("checksummed and lowercase both accepted", func(t *testing.T) {
		a, err := ShareDepositV1.Encode(big.NewInt(1), checksummed)
		require.NoError(t, err)
		b, err := ShareDepositV1.Encode(big.NewInt(1), strings.ToLower(checksummed))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("wrong value count", func(t *testing.T) {
		_, err := ShareDepositV1.Encode(big.NewInt(1))
		var formatErr *domain.EncodingFormatError
		assert.ErrorAs(t, err, &formatErr)
	})
}

func TestEmptySchema(t *testing.T) {
	schema := MustSchema("empty", 1)

	encoded, err := schema.Encode()
	require.NoError(t, err)
	assert.Empty(t, encoded)
	assert.Equal(t, "0x", encoded.Hex())

	decoded, err := schema.Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestNewSchemaRejectsUnsupportedTypes(t *testing.T) {
	for _, typ := range []string{"int256", "bytes", "string", "uint7", "uint264", "uint0", "bool"} {
		t.Run(typ, func(t *testing.T) {
			_, err := NewSchema("bad", 1, Field{Name: "x", Type: typ})
			var formatErr *domain.EncodingFormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}

	s, err := NewSchema("alias", 1, Field{Name: "x", Type: "uint"})
	require.NoError(t, err)
	assert.Equal(t, "(uint256)", s.Signature())
}

func TestDecodeRejectsTruncatedData(t *testing.T) {
	encoded, err := ShareDepositV1.Encode(big.NewInt(10000), usdcBaseSepolia)
	require.NoError(t, err)

	_, err = ShareDepositV1.Decode(encoded[:40])
	var formatErr *domain.EncodingFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestEncoderRegistry(t *testing.T) {
	enc := NewEncoder()
	assert.Equal(t, []string{"share-deposit/v1"}, enc.SchemaIDs())

	got, err := enc.Encode("share-deposit/v1", big.NewInt(10000), usdcBaseSepolia)
	require.NoError(t, err)
	want, _ := ShareDepositV1.Encode(big.NewInt(10000), usdcBaseSepolia)
	assert.Equal(t, want, got)

	_, err = enc.Encode("share-deposit/v2", big.NewInt(1), usdcBaseSepolia)
	var formatErr *domain.EncodingFormatError
	assert.ErrorAs(t, err, &formatErr)

	enc.Register(MustSchema("fee-only", 3, Field{Name: "fee", Type: "uint128"}))
	decoded, err := enc.Decode("fee-only/v3", common.LeftPadBytes([]byte{0x01}, 32))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assertParamEqual(t, big.NewInt(1), decoded[0], "fee")
}

func assertParamEqual(t *testing.T, want, got any, field string) {
	t.Helper()
	if w, ok := want.(*big.Int); ok {
		g, ok := got.(*big.Int)
		require.True(t, ok, "field %s decoded as %T", field, got)
		assert.Zero(t, w.Cmp(g), "field %s: want %s, got %s", field, w, g)
		return
	}
	assert.Equal(t, want, got, "field %s", field)
}

// flipFirstLetterCase breaks an EIP-55 checksum while keeping the address mixed-case
func flipFirstLetterCase(addr string) string {
	b := []rune(addr)
	for i := 2; i < len(b); i++ {
		if unicode.IsLetter(b[i]) {
			if unicode.IsUpper(b[i]) {
				b[i] = unicode.ToLower(b[i])
			} else {
				b[i] = unicode.ToUpper(b[i])
			}
			return string(b)
		}
	}
	return addr
}
