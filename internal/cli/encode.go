package cli

import (
	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/cli/render"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewEncodeCmd creates the encode command
func NewEncodeCmd() *cobra.Command {
	var (
		schema string
		fee    string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "encode [values...]",
		Short: "ABI-encode condition module parameters",
		Long: `Encode condition module parameters with a versioned schema and print the
0x-prefixed block. With the default share-deposit/v1 schema the values come from
--fee and --token; other schemas take their values positionally.`,
		Example: `  kleek encode --fee 10000 --token 0x036CbD53842c5426634e7929541eC2318f3dCF7e
  kleek encode --schema share-deposit/v1 10000 0x036CbD53842c5426634e7929541eC2318f3dCF7e`,
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			values, err := moduleValues(args, fee, token, app.Config.Project.Contracts.Token)
			if err != nil {
				return err
			}

			result, err := app.EncodeParams.Run(cmd.Context(), usecase.EncodeParamsParams{
				Schema: schema,
				Values: values,
			})
			if err != nil {
				return err
			}

			return render.NewEncodeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&schema, "schema", usecase.DefaultParamSchema, "Parameter schema ID")
	cmd.Flags().StringVar(&fee, "fee", "", "Deposit fee in token base units")
	cmd.Flags().StringVar(&token, "token", "", "Deposit token address (defaults to [contracts].token)")

	return cmd
}
