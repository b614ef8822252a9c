package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kleek-protocol/kleek-deploy/internal/adapters/progress"
	"github.com/kleek-protocol/kleek-deploy/internal/app"
	"github.com/kleek-protocol/kleek-deploy/internal/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"

	// offlineAnnotation marks commands that never dial the network, so an
	// unresolvable network (e.g. no ALCHEMY_API_KEY) does not fail them
	offlineAnnotation = "kleek/offline"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kleek",
		Short: "Deploy and configure Kleek condition contracts",
		Long: `kleek deploys the Kleek contracts and their condition modules, encodes
condition-module parameters and submits conditions to a deployed Kleek proxy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			offline := isOffline(cmd)

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// Offline commands work outside a project
				if !offline {
					return err
				}
				if projectRoot, err = os.Getwd(); err != nil {
					return err
				}
			}

			v := config.SetupViper(projectRoot, cmd)
			if offline {
				v.Set("offline", true)
			}

			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				sink = progress.NewNopSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (base, base_sepolia, localhost or a kleek.toml entry)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Hide progress output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Send to production chains without a confirmation prompt")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall command timeout (default 5m)")
	rootCmd.PersistentFlags().Duration("confirm-timeout", 0, "How long to wait for each transaction to confirm (default 2m)")
	rootCmd.PersistentFlags().Uint64("confirmations", 0, "Blocks to wait for after inclusion (default 1)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "deployment",
		Title: "Deployment Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	encodeCmd := NewEncodeCmd()
	encodeCmd.GroupID = "main"
	rootCmd.AddCommand(encodeCmd)

	createCmd := NewCreateCmd()
	createCmd.GroupID = "main"
	rootCmd.AddCommand(createCmd)

	whitelistCmd := NewWhitelistCmd()
	whitelistCmd.GroupID = "main"
	rootCmd.AddCommand(whitelistCmd)

	// Deployment commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "deployment"
	rootCmd.AddCommand(deployCmd)

	deploymentsCmd := NewDeploymentsCmd()
	deploymentsCmd.GroupID = "deployment"
	rootCmd.AddCommand(deploymentsCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "deployment"
	rootCmd.AddCommand(verifyCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// isOffline reports whether the command or one of its parents is annotated offline
func isOffline(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[offlineAnnotation] == "true" {
			return true
		}
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
