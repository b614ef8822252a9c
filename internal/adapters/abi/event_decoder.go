package abi

import (
	"fmt"
	"log/slog"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// EventDecoder decodes receipt logs against a known contract interface
type EventDecoder struct {
	log *slog.Logger
}

// NewEventDecoder creates a new event decoder
func NewEventDecoder(log *slog.Logger) *EventDecoder {
	return &EventDecoder{
		log: log.With("component", "EventDecoder"),
	}
}

// DecodeLogs decodes every log whose signature is part of contractABI.
// Logs from other emitters or with unknown signatures are skipped.
func (e *EventDecoder) DecodeLogs(contractABI *ethabi.ABI, logs []*types.Log) []domain.DecodedEvent {
	var events []domain.DecodedEvent
	for _, l := range logs {
		event, err := e.decodeLog(contractABI, l)
		if err != nil {
			e.log.Debug("skipping undecodable log", "address", l.Address, "index", l.Index, "error", err)
			continue
		}
		if event != nil {
			events = append(events, *event)
		}
	}
	return events
}

func (e *EventDecoder) decodeLog(contractABI *ethabi.ABI, l *types.Log) (*domain.DecodedEvent, error) {
	// Anonymous events carry no signature topic
	if len(l.Topics) == 0 {
		return nil, nil
	}

	event, err := contractABI.EventByID(l.Topics[0])
	if err != nil {
		return nil, nil
	}

	values := make(map[string]any)

	// Indexed parameters come from topics, skipping the signature
	var indexed ethabi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if err := ethabi.ParseTopicsIntoMap(values, indexed, l.Topics[1:]); err != nil {
			return nil, fmt.Errorf("failed to parse topics: %w", err)
		}
	}

	// Non-indexed parameters come from data
	if len(l.Data) > 0 {
		if err := event.Inputs.UnpackIntoMap(values, l.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack event data: %w", err)
		}
	}

	decoded := &domain.DecodedEvent{
		Name:    event.RawName,
		Address: l.Address,
		Params:  make([]domain.DecodedParam, 0, len(event.Inputs)),
	}
	for _, input := range event.Inputs {
		if val, ok := values[input.Name]; ok {
			decoded.Params = append(decoded.Params, domain.DecodedParam{
				Name:  input.Name,
				Type:  input.Type.String(),
				Value: FormatValue(val, input.Type.String()),
			})
		}
	}
	return decoded, nil
}

// Ensure the adapter implements the interface
var _ usecase.EventDecoder = (*EventDecoder)(nil)
