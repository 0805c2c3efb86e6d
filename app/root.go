// Package app implements the command line interface: the web service and a
// set of offline helpers around the studio building blocks.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables bound to flags, e.g. QR_KITCHEN_PORT.
const EnvPrefix = "QR_KITCHEN"

var rootCmd = &cobra.Command{
	Use:   "qr-kitchen",
	Short: "QR Kitchen is a QR code generation and scanning studio",
	Long: `QR Kitchen lets you describe content of nine kinds (links, text, WiFi
credentials, contact cards and more), style the code with colors, gradients,
shapes and a logo, keep a history of created codes and scan existing codes
to re-import their content.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().String("config", "./etc/", "Directory holding main.toml")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")) //nolint:errcheck
}

func initViper() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
