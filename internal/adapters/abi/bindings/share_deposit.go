package bindings

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// ShareDepositMetaData contains the interface of the ShareDeposit condition module.
var ShareDepositMetaData = bind.MetaData{
	ABI: `[
		{"type":"constructor","inputs":[{"name":"kleek","type":"address","internalType":"address"}],"stateMutability":"nonpayable"},
		{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address","internalType":"address"}],"stateMutability":"view"},
		{"type":"error","name":"OwnableUnauthorizedAccount","inputs":[{"name":"account","type":"address","internalType":"address"}]}
	]`,
	ID: "ShareDeposit",
}

// ShareDeposit is a Go binding around the ShareDeposit contract.
type ShareDeposit struct {
	abi abi.ABI
}

// NewShareDeposit creates a new instance of ShareDeposit.
func NewShareDeposit() *ShareDeposit {
	parsed, err := ShareDepositMetaData.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &ShareDeposit{abi: *parsed}
}

// ABI returns the parsed contract interface
func (shareDeposit *ShareDeposit) ABI() *abi.ABI {
	return &shareDeposit.abi
}

// PackConstructor packs the constructor arguments. The owner is the Kleek contract.
//
// Solidity: constructor(address kleek)
func (shareDeposit *ShareDeposit) PackConstructor(kleek common.Address) []byte {
	enc, err := shareDeposit.abi.Pack("", kleek)
	if err != nil {
		panic(err)
	}
	return enc
}
