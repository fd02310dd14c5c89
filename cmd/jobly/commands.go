package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jarredbaird/express-jobly/config"
	"github.com/jarredbaird/express-jobly/security/jwt"
	"github.com/jarredbaird/express-jobly/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "jobly",
		Short:         "Job board API for companies and their openings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		NewServeCommand(&configFile),
		NewTokenCommand(&configFile),
		NewVersionCommand(),
	)

	return rootCmd
}

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := InitializeApp(config.Path(*configFile))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx)
		},
	}
}

// NewTokenCommand creates the token command, which mints a bearer token for
// a username with the configured secret.
func NewTokenCommand(configFile *string) *cobra.Command {
	var admin bool

	cmd := &cobra.Command{
		Use:   "token [username]",
		Short: "Issue an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(config.Path(*configFile))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			token, err := jwt.ProvideTokenManager(cfg.Auth).GenerateAccessToken(args[0], admin)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().BoolVar(&admin, "admin", false, "grant admin rights")
	return cmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetVersionInfo()
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}
			s, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
