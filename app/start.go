package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/daemon"
	"github.com/qrkitchen/qr-kitchen/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().Bool("dev", false, "Enable dev mode")
	startCmd.Flags().Bool(
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)
	startCmd.Flags().Int("port", 0, "Listening port, overrides the config file")
	startCmd.Flags().Bool("dump", false, "Print the effective configuration and exit")

	for _, name := range []string{"dev", "browse", "port"} {
		_ = viper.BindPFlag(name, startCmd.Flags().Lookup(name)) //nolint:errcheck
	}

	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the QR Kitchen web service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			out, derr := config.DumpConfig(&cfg)
			if derr != nil {
				return derr
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		}

		if err = logger.Init(cfg.Log); err != nil {
			return errors.Wrap(err, "failed to init logger")
		}

		d, err := daemon.New(&cfg)
		if err != nil {
			log.Error().Err(err).Msg("failed to start daemon")

			return err
		}

		return d.Start()
	},
}

// loadConfig reads main.toml and applies flag and environment overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.ReadConfig(viper.GetString("config"))
	if err != nil {
		return cfg, err
	}

	if viper.GetBool("dev") {
		cfg.DevMode = true
	}

	if viper.GetBool("browse") {
		cfg.Webserver.BrowseStatic = true
	}

	if port := viper.GetInt("port"); port > 0 {
		cfg.Webserver.Port = port
	}

	return cfg, nil
}
