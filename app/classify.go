package app

import (
	"encoding/json"
	"image"
	_ "image/gif"  // decodable inputs
	_ "image/jpeg" // decodable inputs
	_ "image/png"  // decodable inputs
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qrkitchen/qr-kitchen/internal/scan"
)

func init() { //nolint: gochecknoinits
	classifyCmd.Flags().String("image", "", "Decode the code in this image file instead of taking text")
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Show how scanned text would be loaded back into the editor",
	Example: `  qr-kitchen classify 'WIFI:T:WPA;S:Home;P:secret;;'
  qr-kitchen classify --image photo.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("image")

		var text string

		switch {
		case path != "":
			decoded, err := decodeFile(path)
			if err != nil {
				return err
			}

			text = decoded
		case len(args) == 1:
			text = args[0]
		default:
			return errors.New("pass the text to classify or --image")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Raw string `json:"raw"`
			scan.Result
		}{Raw: text, Result: scan.Classify(text)})
	},
}

func decodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	img, _, err := image.Decode(f)
	if err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}

	return scan.Decode(img)
}
