package blockchain

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/kleek-protocol/kleek-deploy/internal/adapters/abi/bindings"
)

func TestRevertReason(t *testing.T) {
	kleekABI := bindings.NewKleek().ABI()

	panicData, err := panicArgs.Pack(big.NewInt(0x11))
	if err != nil {
		t.Fatal(err)
	}
	panicData = append(append([]byte{}, panicSelector...), panicData...)

	initErr := kleekABI.Errors["InvalidInitialization"]
	unknown := append(crypto.Keccak256([]byte("Mystery()"))[:4], 0x01)

	tests := []struct {
		name string
		data []byte
		err  error
		want string
	}{
		{"error string", errorString("not whitelisted"), nil, "not whitelisted"},
		{"panic code", panicData, nil, "Panic(0x11)"},
		{"custom error", initErr.ID[:4], nil, "InvalidInitialization()"},
		{"unknown selector", unknown, nil, hexutil.Encode(unknown)},
		{"reason only in message", nil, errors.New("execution reverted: paused"), "paused"},
		{"bare revert", nil, errors.New("execution reverted"), "execution reverted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, revertReason(kleekABI, tt.data, tt.err))
		})
	}
}

func TestRevertReasonFallsBackToKleekErrors(t *testing.T) {
	kleekABI := bindings.NewKleek().ABI()
	proxyABI := bindings.NewERC1967Proxy().ABI()

	initErr := kleekABI.Errors["InvalidInitialization"]
	assert.Equal(t, "InvalidInitialization()", revertReason(proxyABI, initErr.ID[:4], nil))
	assert.Equal(t, "InvalidInitialization()", revertReason(nil, initErr.ID[:4], nil))

	account := common.HexToAddress(testSender)
	unauthorized := kleekABI.Errors["OwnableUnauthorizedAccount"]
	packed, err := unauthorized.Inputs.Pack(account)
	if err != nil {
		t.Fatal(err)
	}
	data := append(append([]byte{}, unauthorized.ID[:4]...), packed...)
	assert.Equal(t, "OwnableUnauthorizedAccount("+account.Hex()+")", revertReason(proxyABI, data, nil))
}

func TestIsRevert(t *testing.T) {
	assert.True(t, isRevert(revertWithData(errorString("nope"))))
	assert.True(t, isRevert(fmt.Errorf("estimate: %w", errors.New("execution reverted: nope"))))
	assert.True(t, isRevert(fmt.Errorf("wrapped: %w", revertWithData([]byte{0xde, 0xad, 0xbe, 0xef}))))
	assert.False(t, isRevert(errors.New("nonce too low")))
	assert.False(t, isRevert(nil))
}

func TestRevertData(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	assert.Equal(t, payload, revertData(fmt.Errorf("wrapped: %w", revertWithData(payload))))
	assert.Nil(t, revertData(errors.New("plain")))
	assert.Nil(t, revertData(&rpcError{message: "execution reverted", data: "not hex"}))
}
