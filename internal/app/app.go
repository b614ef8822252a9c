package app

import (
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	EncodeParams       *usecase.EncodeParams
	CreateCondition    *usecase.CreateCondition
	WhitelistModule    *usecase.WhitelistModule
	DeployShareDeposit *usecase.DeployShareDeposit
	DeployKleekProxy   *usecase.DeployKleekProxy
	ListDeployments    *usecase.ListDeployments
	VerifyDeployment   *usecase.VerifyDeployment
	ListNetworks       *usecase.ListNetworks
	ShowConfig         *usecase.ShowConfig
	SetConfig          *usecase.SetConfig
	RemoveConfig       *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	encodeParams *usecase.EncodeParams,
	createCondition *usecase.CreateCondition,
	whitelistModule *usecase.WhitelistModule,
	deployShareDeposit *usecase.DeployShareDeposit,
	deployKleekProxy *usecase.DeployKleekProxy,
	listDeployments *usecase.ListDeployments,
	verifyDeployment *usecase.VerifyDeployment,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:             cfg,
		EncodeParams:       encodeParams,
		CreateCondition:    createCondition,
		WhitelistModule:    whitelistModule,
		DeployShareDeposit: deployShareDeposit,
		DeployKleekProxy:   deployKleekProxy,
		ListDeployments:    listDeployments,
		VerifyDeployment:   verifyDeployment,
		ListNetworks:       listNetworks,
		ShowConfig:         showConfig,
		SetConfig:          setConfig,
		RemoveConfig:       removeConfig,
	}, nil
}
