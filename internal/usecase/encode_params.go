package usecase

import (
	"context"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

// DefaultParamSchema is the condition data layout of the ShareDeposit module
const DefaultParamSchema = "share-deposit/v1"

// EncodeParamsParams contains parameters for encoding condition-module data
type EncodeParamsParams struct {
	Schema string
	Values []any
}

// EncodeParamsResult contains the encoded block
type EncodeParamsResult struct {
	Schema  string
	Encoded domain.EncodedParams
}

// EncodeParams encodes condition-module parameters offline
type EncodeParams struct {
	encoder ParameterEncoder
}

// NewEncodeParams creates a new EncodeParams use case
func NewEncodeParams(encoder ParameterEncoder) *EncodeParams {
	return &EncodeParams{encoder: encoder}
}

// Run executes the use case
func (uc *EncodeParams) Run(ctx context.Context, params EncodeParamsParams) (*EncodeParamsResult, error) {
	schema := params.Schema
	if schema == "" {
		schema = DefaultParamSchema
	}

	encoded, err := uc.encoder.Encode(schema, params.Values...)
	if err != nil {
		return nil, err
	}

	return &EncodeParamsResult{
		Schema:  schema,
		Encoded: encoded,
	}, nil
}
