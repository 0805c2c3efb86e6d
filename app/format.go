package app

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
)

func init() { //nolint: gochecknoinits
	addContentFlags(formatCmd)
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Print the payload a code of the given kind encodes",
	Example: `  qr-kitchen format --kind wifi --values '{"wifi":{"ssid":"Home","password":"secret"}}'
  qr-kitchen format --kind email --values '{"email":{"address":"a@b.c","subject":"Hi there"}}'`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kind, values, err := contentFromFlags(cmd)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), content.Format(kind, values))

		return err
	},
}

func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().String("kind", string(content.KindURL), "Content kind: url, text, wifi, whatsapp, phone, vcard, email, sms, location")
	cmd.Flags().String("values", "", "Content fields as JSON, merged over the defaults")
}

// contentFromFlags reads --kind and --values.
func contentFromFlags(cmd *cobra.Command) (content.Kind, content.Values, error) {
	name, _ := cmd.Flags().GetString("kind")
	raw, _ := cmd.Flags().GetString("values")

	kind, err := content.ParseKind(name)
	if err != nil {
		return "", content.Values{}, err
	}

	values := content.DefaultValues()
	if raw != "" {
		if err = json.Unmarshal([]byte(raw), &values); err != nil {
			return "", content.Values{}, errors.Wrap(err, "invalid --values")
		}
	}

	if err = design.Validate(values); err != nil {
		return "", content.Values{}, err
	}

	return kind, values, nil
}
