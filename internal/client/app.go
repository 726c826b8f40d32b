package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-store-keeper/internal/adapter"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var errNoClipboard = errors.New("clipboard is not available")

type App struct {
	api adapter.StoreAPI

	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(api adapter.StoreAPI, logger *logger.Logger) *App {
	return &App{
		api: api,
		copyToClipboard: func(text string) error {
			if clipboard.Unsupported {
				return errNoClipboard
			}
			return clipboard.WriteAll(text)
		},
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	var token string

	root := &cobra.Command{
		Use:           "store-client",
		Short:         "Command-line client of the go-store-keeper API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if token != "" {
				a.api.SetToken(token)
			}
		},
	}
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token (default $ADAPTER_TOKEN)")

	root.AddCommand(
		a.versionCommand(),
		a.registerCommand(),
		a.loginCommand(),
		a.customersCommand(),
		a.ordersCommand(),
	)

	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := a.api.Version(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.AppInfo{Version: version})
		},
	}
}

func (a *App) registerCommand() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.api.Register(cmd.Context(), credentials)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
	cmd.Flags().StringVar(&credentials.Name, "name", "", "display name")
	credentialFlags(cmd, &credentials)

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var (
		credentials models.Credentials
		copyToken   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.api.Login(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			if copyToken {
				if err = a.copyToClipboard(result.Token); err != nil {
					a.logger.Warn().Err(err).Msg("token was not copied to the clipboard")
				} else {
					a.logger.Info().Msg("token copied to the clipboard")
				}
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	credentialFlags(cmd, &credentials)
	cmd.Flags().BoolVar(&copyToken, "copy", false, "copy the token to the clipboard")

	return cmd
}

func credentialFlags(cmd *cobra.Command, credentials *models.Credentials) {
	cmd.Flags().StringVar(&credentials.Email, "email", "", "account email")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func paginationFlags(cmd *cobra.Command, page *models.Pagination) {
	cmd.Flags().IntVar(&page.Page, "page", models.DefaultPage, "page number, starting at 1")
	cmd.Flags().IntVar(&page.PageSize, "page-size", models.DefaultPageSize, "records per page")
}

func printJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
