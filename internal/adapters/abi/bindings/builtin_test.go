package bindings

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

func TestBuiltin(t *testing.T) {
	tests := []struct {
		name       string
		wantMethod string
		wantError  string
	}{
		{domain.ContractKleek, "create", "InvalidInitialization"},
		{domain.ContractShareDeposit, "owner", "OwnableUnauthorizedAccount"},
		{domain.ContractERC1967Proxy, "", "ERC1967InvalidImplementation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Builtin(tt.name)
			require.NotNil(t, parsed)
			if tt.wantMethod != "" {
				assert.Contains(t, parsed.Methods, tt.wantMethod)
			}
			assert.Contains(t, parsed.Errors, tt.wantError)
		})
	}

	assert.Nil(t, Builtin("Unknown"))
	assert.Nil(t, Builtin("kleek"), "names are case sensitive")
}

func TestUnpackKnownError(t *testing.T) {
	kleekABI := NewKleek().ABI()

	initErr := kleekABI.Errors["InvalidInitialization"]
	decoded, err := UnpackKnownError(initErr.ID[:4])
	require.NoError(t, err)
	assert.IsType(t, &KleekInvalidInitialization{}, decoded)

	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	unauthorized := kleekABI.Errors["OwnableUnauthorizedAccount"]
	packed, err := unauthorized.Inputs.Pack(account)
	require.NoError(t, err)

	decoded, err = UnpackKnownError(append(append([]byte{}, unauthorized.ID[:4]...), packed...))
	require.NoError(t, err)
	require.IsType(t, &KleekOwnableUnauthorizedAccount{}, decoded)
	assert.Equal(t, account, decoded.(*KleekOwnableUnauthorizedAccount).Account)

	_, err = UnpackKnownError([]byte{0x01, 0x02})
	assert.Error(t, err)
	_, err = UnpackKnownError([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.Error(t, err)
}
