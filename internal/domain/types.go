package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Well-known contract interface names
const (
	ContractKleek        = "Kleek"
	ContractShareDeposit = "ShareDeposit"
	ContractERC1967Proxy = "ERC1967Proxy"
)

// ContractHandle binds a contract interface to a deployed address.
// It is read-only once resolved.
type ContractHandle struct {
	Name    string
	Address common.Address
	ABI     *abi.ABI
}

// EncodedParams is an ABI-encoded parameter block passed as opaque call data.
type EncodedParams []byte

// Hex returns the 0x-prefixed hex form. An empty block encodes as "0x".
func (p EncodedParams) Hex() string {
	return hexutil.Encode(p)
}

func (p EncodedParams) String() string {
	return p.Hex()
}

// ConditionRecord is the payload of Kleek.create.
// Start < End is enforced by the contract, not here.
type ConditionRecord struct {
	MetadataURI         string
	Start               time.Time
	End                 time.Time
	Limit               *big.Int
	ConditionModule     common.Address
	ConditionModuleData EncodedParams
}

// Receipt summarizes a confirmed transaction.
type Receipt struct {
	TxHash          common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	Status          uint64
	ContractAddress *common.Address
	ExplorerURL     string
	Logs            []*types.Log
}

// DeploymentKind distinguishes plain deployments from proxies
type DeploymentKind string

const (
	SingletonDeployment      DeploymentKind = "singleton"
	ProxyDeployment          DeploymentKind = "proxy"
	ImplementationDeployment DeploymentKind = "implementation"
)

// Deployment is a recorded contract deployment
type Deployment struct {
	ID             string          `json:"id"`
	Network        string          `json:"network"`
	ChainID        uint64          `json:"chainId"`
	Contract       string          `json:"contract"`
	Address        common.Address  `json:"address"`
	Kind           DeploymentKind  `json:"kind"`
	Implementation *common.Address `json:"implementation,omitempty"`
	Owner          common.Address  `json:"owner"`
	TxHash         common.Hash     `json:"txHash"`
	BlockNumber    uint64          `json:"blockNumber"`
	CreatedAt      time.Time       `json:"createdAt"`

	// Artifact is the compiled contract at Address when it differs from Contract,
	// ERC1967Proxy for proxies
	Artifact        string        `json:"artifact,omitempty"`
	Source          string        `json:"source,omitempty"`
	ConstructorArgs hexutil.Bytes `json:"constructorArgs,omitempty"`
	Verification    *Verification `json:"verification,omitempty"`
}

// ArtifactName returns the compiled contract deployed at the address
func (d *Deployment) ArtifactName() string {
	if d.Artifact != "" {
		return d.Artifact
	}
	return d.Contract
}

// IsVerified reports whether the last verification attempt succeeded
func (d *Deployment) IsVerified() bool {
	return d.Verification != nil && d.Verification.Status == VerificationVerified
}

// VerificationStatus is the block explorer state of a deployment's source
type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationFailed   VerificationStatus = "FAILED"
)

// Verification records the last explorer verification attempt
type Verification struct {
	Status      VerificationStatus `json:"status"`
	Tool        string             `json:"tool"`
	URL         string             `json:"url,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	AttemptedAt time.Time          `json:"attemptedAt"`
}

// DeploymentFilter narrows a deployment listing
type DeploymentFilter struct {
	ChainID  uint64
	Contract string
}

// Artifact is a compiled contract: its interface and creation bytecode.
// Bytecode is empty for interfaces and built-in ABI-only definitions.
type Artifact struct {
	Name     string
	Source   string
	Path     string
	ABI      *abi.ABI
	Bytecode []byte
}

// DecodedEvent is a receipt log matched against a contract interface
type DecodedEvent struct {
	Name    string
	Address common.Address
	Params  []DecodedParam
}

// DecodedParam is one named event argument, formatted for display
type DecodedParam struct {
	Name  string
	Type  string
	Value string
}

// Param returns the formatted value of the named argument, or "" when absent
func (e *DecodedEvent) Param(name string) string {
	for _, p := range e.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}
