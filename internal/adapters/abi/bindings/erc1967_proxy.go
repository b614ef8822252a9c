package bindings

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
)

// ERC1967ProxyMetaData contains the interface of OpenZeppelin's ERC1967Proxy.
var ERC1967ProxyMetaData = bind.MetaData{
	ABI: `[
		{"type":"constructor","inputs":[{"name":"implementation","type":"address","internalType":"address"},{"name":"_data","type":"bytes","internalType":"bytes"}],"stateMutability":"payable"},
		{"type":"event","name":"Upgraded","inputs":[{"name":"implementation","type":"address","indexed":true,"internalType":"address"}],"anonymous":false},
		{"type":"error","name":"AddressEmptyCode","inputs":[{"name":"target","type":"address","internalType":"address"}]},
		{"type":"error","name":"ERC1967InvalidImplementation","inputs":[{"name":"implementation","type":"address","internalType":"address"}]},
		{"type":"error","name":"ERC1967NonPayable","inputs":[]},
		{"type":"error","name":"FailedCall","inputs":[]}
	]`,
	ID: "ERC1967Proxy",
}

// ERC1967Proxy is a Go binding around the ERC1967Proxy contract.
type ERC1967Proxy struct {
	abi abi.ABI
}

// NewERC1967Proxy creates a new instance of ERC1967Proxy.
func NewERC1967Proxy() *ERC1967Proxy {
	parsed, err := ERC1967ProxyMetaData.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &ERC1967Proxy{abi: *parsed}
}

// ABI returns the parsed contract interface
func (proxy *ERC1967Proxy) ABI() *abi.ABI {
	return &proxy.abi
}
