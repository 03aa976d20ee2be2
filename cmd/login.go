package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/bilibili-accounts-cli/internal/application"
	"github.com/bnema/bilibili-accounts-cli/internal/config"
	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLoginCmd(app *app, v *viper.Viper) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in by scanning a QR code with the bilibili app",
		Long:  "login shows a QR code, waits until it is scanned and confirmed in the bilibili app, then saves SESSDATA and bili_jct to the selected profile.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, app, !noProgress && app.isTerminal(cmd.ErrOrStderr()))
		},
	}

	flags := cmd.Flags()
	flags.Float64("timeout", 0, "Seconds to wait for the QR code to be confirmed (default 180)")
	flags.Float64("poll-interval", 0, "Seconds between status polls, fractions allowed (default 1)")
	flags.String("proxy", "", "Proxy: auto (environment), no, or an http/https/socks5/socks5h URL")
	flags.String("mode", "", "QR display: console or image")
	flags.BoolVar(&noProgress, "no-progress", false, "Disable the polling spinner")

	if err := bindFlags(v, flags, map[string]string{
		config.KeyLoginTimeout:      "timeout",
		config.KeyLoginPollInterval: "poll-interval",
		config.KeyLoginProxy:        "proxy",
		config.KeyLoginMode:         "mode",
	}); err != nil {
		cmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
	}

	return cmd
}

func runLogin(cmd *cobra.Command, app *app, showProgress bool) error {
	service, cleanup, err := app.newLoginService(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cleanup()

	loginCmd := application.LoginCommand{
		Profile:      domain.ProfileName(app.cfg.Profile),
		Timeout:      app.cfg.Login.Timeout,
		PollInterval: app.cfg.Login.PollInterval,
	}

	result, err := loginWithProgress(cmd.Context(), cmd.ErrOrStderr(), showProgress, loginCmd, service.Login)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return writeLoginResult(cmd.OutOrStdout(), result)
}

func loginWithProgress(
	ctx context.Context,
	output io.Writer,
	showProgress bool,
	loginCmd application.LoginCommand,
	login func(context.Context, application.LoginCommand) (application.LoginResult, error),
) (application.LoginResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !showProgress {
		return login(ctx, loginCmd)
	}

	spinner := newLoginSpinner(ctx, output)
	loginCmd.OnStatus = spinner.Update
	result, err := login(ctx, loginCmd)
	spinner.Stop()
	return result, err
}

func writeLoginResult(out io.Writer, result application.LoginResult) error {
	if result.Verified {
		_, err := fmt.Fprintf(out, "Logged in as %s (mid %d). Credential saved to %s (profile: %s, url: %s)\n",
			result.User.Name, result.User.MID, result.StorePath, result.Profile, result.FinalURL)
		return err
	}

	_, err := fmt.Fprintf(out, "Credential saved to %s (profile: %s), but the login check failed: %s. Run `ba auth check` later to retry.\n",
		result.StorePath, result.Profile, result.VerifyReason)
	return err
}
