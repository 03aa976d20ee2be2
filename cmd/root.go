package cmd

import (
	"fmt"

	"github.com/bnema/bilibili-accounts-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const skipWireAnnotation = "ba.skip-wire"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	app := &app{}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "ba",
		Short:         "bilibili accounts CLI (ba): QR login and credential profiles",
		Long:          "ba logs in to bilibili by scanning a QR code with the mobile app and keeps the resulting SESSDATA/bili_jct credentials in named profiles for other tools to reuse.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}
			if configFile != "" {
				v.SetConfigFile(configFile)
			}
			return app.wire(v, cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/bilibili-accounts/config.toml)")
	flags.String("auth-file", "", "Credential store path (default $XDG_CONFIG_HOME/bilibili-accounts/auth.toml)")
	flags.StringP("profile", "p", "", "Credential profile name (default \"default\")")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (console|json)")
	if err := bindFlags(v, flags, map[string]string{
		config.KeyAuthPath:    "auth-file",
		config.KeyAuthProfile: "profile",
		config.KeyLogLevel:    "log-level",
		config.KeyLogFormat:   "log-format",
	}); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app, v),
		newAuthCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
