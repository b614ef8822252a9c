package params

import (
	"fmt"
	"sort"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
	"github.com/samber/lo"
)

// ShareDepositV1 is the condition data layout decoded by the ShareDeposit module:
// abi.decode(data, (uint256 depositFee, address token))
var ShareDepositV1 = MustSchema("share-deposit", 1,
	Field{Name: "depositFee", Type: TypeUint256},
	Field{Name: "token", Type: TypeAddress},
)

// Encoder implements usecase.ParameterEncoder over a fixed set of known schemas
type Encoder struct {
	schemas map[string]*Schema
}

// NewEncoder creates an encoder preloaded with the built-in schemas
func NewEncoder() *Encoder {
	e := &Encoder{schemas: make(map[string]*Schema)}
	e.Register(ShareDepositV1)
	return e
}

// Register adds or replaces a schema under its ID
func (e *Encoder) Register(s *Schema) {
	e.schemas[s.ID()] = s
}

// Schema looks up a schema by ID
func (e *Encoder) Schema(id string) (*Schema, error) {
	s, ok := e.schemas[id]
	if !ok {
		return nil, &domain.EncodingFormatError{Reason: fmt.Sprintf("unknown parameter schema %q (known: %v)", id, e.SchemaIDs())}
	}
	return s, nil
}

// SchemaIDs returns the registered schema IDs in sorted order
func (e *Encoder) SchemaIDs() []string {
	ids := lo.Keys(e.schemas)
	sort.Strings(ids)
	return ids
}

// Encode encodes values with the named schema
func (e *Encoder) Encode(schemaID string, values ...any) (domain.EncodedParams, error) {
	s, err := e.Schema(schemaID)
	if err != nil {
		return nil, err
	}
	return s.Encode(values...)
}

// Decode decodes data with the named schema
func (e *Encoder) Decode(schemaID string, data []byte) ([]any, error) {
	s, err := e.Schema(schemaID)
	if err != nil {
		return nil, err
	}
	return s.Decode(data)
}

// Ensure the adapter implements the interface
var _ usecase.ParameterEncoder = (*Encoder)(nil)
