package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/cli/render"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	var (
		kleek  string
		uri    string
		start  string
		end    string
		limit  string
		module string
		schema string
		fee    string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "create [values...]",
		Short: "Create a condition on the Kleek contract",
		Long: `Encode the condition module parameters and submit Kleek.create, then wait
for the transaction to confirm. Start and end accept unix seconds or RFC3339.

With the default share-deposit/v1 schema the module values come from --fee and
--token; other schemas take their values positionally, as with encode.`,
		Example: `  kleek create --uri ipfs://meta --start 2024-06-01T00:00:00Z --end 2024-06-02T00:00:00Z \
    --limit 100 --fee 10000 --token 0x036CbD53842c5426634e7929541eC2318f3dCF7e`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			startTime, err := parseTimestamp("start", start)
			if err != nil {
				return err
			}
			endTime, err := parseTimestamp("end", end)
			if err != nil {
				return err
			}
			limitValue, err := parseUint("limit", limit)
			if err != nil {
				return err
			}
			moduleParams, err := moduleValues(args, fee, token, app.Config.Project.Contracts.Token)
			if err != nil {
				return err
			}

			if err := confirmSubmission(app, "Create condition "+uri); err != nil {
				return err
			}

			result, err := app.CreateCondition.Run(cmd.Context(), usecase.CreateConditionParams{
				Kleek:        kleek,
				MetadataURI:  uri,
				Start:        startTime,
				End:          endTime,
				Limit:        limitValue,
				Module:       module,
				Schema:       schema,
				ModuleParams: moduleParams,
			})
			if err != nil {
				return err
			}

			return render.NewCreateRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&kleek, "kleek", "", "Kleek proxy address (defaults to [contracts].kleek, then the last recorded deployment)")
	cmd.Flags().StringVar(&uri, "uri", "", "Condition metadata URI")
	cmd.Flags().StringVar(&start, "start", "", "Start time (unix seconds or RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "End time (unix seconds or RFC3339)")
	cmd.Flags().StringVar(&limit, "limit", "0", "Participant limit")
	cmd.Flags().StringVar(&module, "module", "", "Condition module address (defaults to [contracts].condition_module)")
	cmd.Flags().StringVar(&schema, "schema", usecase.DefaultParamSchema, "Condition module parameter schema")
	cmd.Flags().StringVar(&fee, "fee", "", "Deposit fee in token base units")
	cmd.Flags().StringVar(&token, "token", "", "Deposit token address (defaults to [contracts].token)")
	_ = cmd.MarkFlagRequired("uri")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// moduleValues returns positional values as given, otherwise the share-deposit
// fee and token with the token falling back to [contracts].token
func moduleValues(args []string, fee, token, configuredToken string) ([]any, error) {
	if len(args) > 0 {
		values := make([]any, 0, len(args))
		for _, arg := range args {
			values = append(values, arg)
		}
		return values, nil
	}
	if fee == "" {
		return nil, fmt.Errorf("--fee is required unless the module values are given positionally")
	}
	if token == "" {
		token = configuredToken
	}
	return []any{fee, token}, nil
}
