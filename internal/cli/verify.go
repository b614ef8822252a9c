package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/cli/render"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var (
		all   bool
		force bool
		tool  string
	)

	cmd := &cobra.Command{
		Use:   "verify [deployment]",
		Short: "Verify recorded deployments on the network's block explorer",
		Long: `Submit the source of recorded deployments to the block explorer with the
project's own toolchain (npx hardhat verify or forge verify-contract) and record
the outcome in .kleek/deployments.json.

The deployment is a registry ID, an address or a contract name (its latest
deployment). ETHERSCAN_API_KEY is passed to the tool through the environment.

Examples:
  kleek verify Kleek --network base_sepolia
  kleek verify 0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0 --network base
  kleek verify --all --network base_sepolia --tool forge
  kleek verify --all --force --network base`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.VerifyDeploymentParams{All: all, Force: force, Tool: tool}
			if len(args) == 1 {
				params.Deployment = args[0]
			}

			result, err := app.VerifyDeployment.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := render.NewVerifyRenderer(cmd.OutOrStdout()).RenderVerifyResult(result); err != nil {
				return err
			}
			if failed := result.Failed(); failed > 0 {
				return fmt.Errorf("%d deployment(s) failed verification", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Verify every deployment recorded on the active network")
	cmd.Flags().BoolVar(&force, "force", false, "Re-verify deployments already marked verified")
	cmd.Flags().StringVar(&tool, "tool", "", "hardhat or forge (default: detected from the project)")

	return cmd
}
