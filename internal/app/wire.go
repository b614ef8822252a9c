//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/kleek-protocol/kleek-deploy/internal/adapters"
	"github.com/kleek-protocol/kleek-deploy/internal/config"
	"github.com/kleek-protocol/kleek-deploy/internal/logging"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewEncodeParams,
		usecase.NewCreateCondition,
		usecase.NewWhitelistModule,
		usecase.NewDeployShareDeposit,
		usecase.NewDeployKleekProxy,
		usecase.NewListDeployments,
		usecase.NewVerifyDeployment,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
