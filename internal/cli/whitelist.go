package cli

import (
	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/cli/render"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewWhitelistCmd creates the whitelist command
func NewWhitelistCmd() *cobra.Command {
	var (
		kleek   string
		disable bool
	)

	cmd := &cobra.Command{
		Use:   "whitelist MODULE",
		Short: "Enable or disable a condition module on Kleek",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			action := "Whitelist " + args[0]
			if disable {
				action = "Remove " + args[0] + " from the whitelist"
			}
			if err := confirmSubmission(app, action); err != nil {
				return err
			}

			result, err := app.WhitelistModule.Run(cmd.Context(), usecase.WhitelistModuleParams{
				Kleek:  kleek,
				Module: args[0],
				Enable: !disable,
			})
			if err != nil {
				return err
			}

			return render.NewWhitelistRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&kleek, "kleek", "", "Kleek proxy address (defaults to [contracts].kleek, then the last recorded deployment)")
	cmd.Flags().BoolVar(&disable, "disable", false, "Remove the module from the whitelist")

	return cmd
}
