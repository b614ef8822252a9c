package cli

import (
	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/cli/render"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewDeploymentsCmd creates the deployments command
func NewDeploymentsCmd() *cobra.Command {
	var (
		contract  string
		allChains bool
		check     bool
	)

	cmd := &cobra.Command{
		Use:         "deployments",
		Aliases:     []string{"ls"},
		Short:       "List recorded deployments",
		Long:        `List deployments recorded in .kleek/deployments.json for the active network.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Contract:  contract,
				AllChains: allChains,
				Check:     check,
			})
			if err != nil {
				return err
			}

			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Only list this contract")
	cmd.Flags().BoolVar(&allChains, "all", false, "List deployments on every chain")
	cmd.Flags().BoolVar(&check, "check", false, "Verify code exists at each address on the active network")

	return cmd
}
