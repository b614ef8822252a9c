package progress

import (
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewNopSink creates a sink that drops every event, used with --quiet
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}
