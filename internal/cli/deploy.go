package cli

import (
	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/cli/render"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewDeployCmd creates the deploy command group
func NewDeployCmd() *cobra.Command {
	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy Kleek contracts",
		Long: `Deploy contracts from compiled Hardhat or Foundry artifacts and record them
in .kleek/deployments.json.`,
	}

	deployCmd.AddCommand(newDeployShareDepositCmd())
	deployCmd.AddCommand(newDeployKleekCmd())

	return deployCmd
}

func newDeployShareDepositCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "share-deposit",
		Short: "Deploy the ShareDeposit condition module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := confirmSubmission(app, "Deploy ShareDeposit"); err != nil {
				return err
			}

			result, err := app.DeployShareDeposit.Run(cmd.Context(), usecase.DeployShareDepositParams{Owner: owner})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderShareDeposit(result)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner address (defaults to the Kleek proxy)")

	return cmd
}

func newDeployKleekCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "kleek",
		Short: "Deploy Kleek behind an ERC-1967 proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := confirmSubmission(app, "Deploy Kleek implementation and proxy"); err != nil {
				return err
			}

			result, err := app.DeployKleekProxy.Run(cmd.Context(), usecase.DeployKleekParams{Owner: owner})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderKleek(result)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner passed to initialize (defaults to the deployer)")

	return cmd
}
