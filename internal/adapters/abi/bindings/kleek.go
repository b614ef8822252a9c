package bindings

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// KleekMetaData contains the interface of the upgradeable Kleek contract as consumed by
// this tool. Compiled artifacts, when present, take precedence over this definition.
var KleekMetaData = bind.MetaData{
	ABI: `[
		{"type":"function","name":"initialize","inputs":[{"name":"initialOwner","type":"address","internalType":"address"}],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"function","name":"create","inputs":[
			{"name":"contentUri","type":"string","internalType":"string"},
			{"name":"startDate","type":"uint256","internalType":"uint256"},
			{"name":"endDate","type":"uint256","internalType":"uint256"},
			{"name":"limit","type":"uint256","internalType":"uint256"},
			{"name":"conditionModule","type":"address","internalType":"address"},
			{"name":"conditionModuleData","type":"bytes","internalType":"bytes"}
		],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"function","name":"whitelistConditionModule","inputs":[{"name":"conditionModule","type":"address","internalType":"address"},{"name":"enable","type":"bool","internalType":"bool"}],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address","internalType":"address"}],"stateMutability":"view"},
		{"type":"event","name":"ConditionModuleWhitelisted","inputs":[{"name":"conditionModule","type":"address","indexed":true,"internalType":"address"},{"name":"enabled","type":"bool","indexed":false,"internalType":"bool"}],"anonymous":false},
		{"type":"error","name":"OwnableUnauthorizedAccount","inputs":[{"name":"account","type":"address","internalType":"address"}]},
		{"type":"error","name":"InvalidInitialization","inputs":[]}
	]`,
	ID: "Kleek",
}

// Kleek is a Go binding around the Kleek contract.
type Kleek struct {
	abi abi.ABI
}

// NewKleek creates a new instance of Kleek.
func NewKleek() *Kleek {
	parsed, err := KleekMetaData.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &Kleek{abi: *parsed}
}

// ABI returns the parsed contract interface
func (kleek *Kleek) ABI() *abi.ABI {
	return &kleek.abi
}

// PackInitialize packs the proxy initializer call data.
//
// Solidity: function initialize(address initialOwner) returns()
func (kleek *Kleek) PackInitialize(initialOwner common.Address) []byte {
	enc, err := kleek.abi.Pack("initialize", initialOwner)
	if err != nil {
		panic(err)
	}
	return enc
}

// TryPackWhitelistConditionModule packs the parameters of whitelistConditionModule.
//
// Solidity: function whitelistConditionModule(address conditionModule, bool enable) returns()
func (kleek *Kleek) TryPackWhitelistConditionModule(conditionModule common.Address, enable bool) ([]byte, error) {
	return kleek.abi.Pack("whitelistConditionModule", conditionModule, enable)
}

// UnpackError attempts to decode the provided error data using user-defined
// error definitions.
func (kleek *Kleek) UnpackError(raw []byte) (any, error) {
	if len(raw) < 4 {
		return nil, errors.New("Unknown error")
	}
	if bytes.Equal(raw[:4], kleek.abi.Errors["OwnableUnauthorizedAccount"].ID.Bytes()[:4]) {
		return kleek.UnpackOwnableUnauthorizedAccountError(raw[4:])
	}
	if bytes.Equal(raw[:4], kleek.abi.Errors["InvalidInitialization"].ID.Bytes()[:4]) {
		return &KleekInvalidInitialization{}, nil
	}
	return nil, errors.New("Unknown error")
}

// KleekOwnableUnauthorizedAccount represents an OwnableUnauthorizedAccount error raised by the Kleek contract.
type KleekOwnableUnauthorizedAccount struct {
	Account common.Address
}

// UnpackOwnableUnauthorizedAccountError is the Go binding used to decode the provided
// error data into the corresponding Go error struct.
//
// Solidity: error OwnableUnauthorizedAccount(address account)
func (kleek *Kleek) UnpackOwnableUnauthorizedAccountError(raw []byte) (*KleekOwnableUnauthorizedAccount, error) {
	out := new(KleekOwnableUnauthorizedAccount)
	if err := kleek.abi.UnpackIntoInterface(out, "OwnableUnauthorizedAccount", raw); err != nil {
		return nil, err
	}
	return out, nil
}

// KleekInvalidInitialization represents an InvalidInitialization error raised by the Kleek contract.
type KleekInvalidInitialization struct{}
