package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/bilibili-accounts-cli/internal/application"
	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored credentials",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthShowCmd(app), newAuthCheckCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var inline string
	var sessData string
	var biliJct string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save an existing SESSDATA/bili_jct credential",
		Example: `  ba auth set --inline "SESSDATA=xxx; bili_jct=yyy"
  ba auth set --profile work --sessdata xxx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inline == "" && sessData == "" {
				return errors.New("either --inline or --sessdata is required")
			}

			setCmd := application.SetCredentialCommand{
				Profile:  domain.ProfileName(app.cfg.Profile),
				Inline:   inline,
				SessData: sessData,
			}
			if cmd.Flags().Changed("bili-jct") {
				setCmd.BiliJct = &biliJct
			}

			if _, err := app.service.SetCredential(cmd.Context(), setCmd); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved credential to %s (profile: %s)\n", app.store.Path(), app.cfg.Profile)
			return err
		},
	}

	cmd.Flags().StringVar(&inline, "inline", "", `Inline credential "SESSDATA=...; bili_jct=..."`)
	cmd.Flags().StringVar(&sessData, "sessdata", "", "SESSDATA cookie value")
	cmd.Flags().StringVar(&biliJct, "bili-jct", "", "bili_jct cookie value (kept unchanged when omitted)")
	cmd.MarkFlagsMutuallyExclusive("inline", "sessdata")
	cmd.MarkFlagsMutuallyExclusive("inline", "bili-jct")

	return cmd
}

func newAuthShowCmd(app *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored credential in inline form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credential, err := app.service.Credential(cmd.Context(), domain.ProfileName(app.cfg.Profile))
			if err != nil {
				return err
			}

			if !reveal {
				credential = domain.Credential{
					SessData: domain.MaskSecret(credential.SessData),
					BiliJct:  domain.MaskSecret(credential.BiliJct),
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.FormatInline(credential.SessData, credential.BiliJct))
			return err
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the full token values")

	return cmd
}

func newAuthCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the stored credential is still logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.service.Check(cmd.Context(), domain.ProfileName(app.cfg.Profile))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is logged in as %s (mid %d)\n", result.Profile, result.User.Name, result.User.MID)
			return err
		},
	}
}
