package app

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/portable"
	"github.com/qrkitchen/qr-kitchen/internal/render"
)

const defaultRenderSize = 2000

func init() { //nolint: gochecknoinits
	addContentFlags(renderCmd)
	renderCmd.Flags().String("design", "", "Portable design file to start from (qr-kitchen-*.json)")
	renderCmd.Flags().String("template", "", "Template to apply, by name")
	renderCmd.Flags().String("ext", string(render.PNG), "Output format: png or svg")
	renderCmd.Flags().Int("size", defaultRenderSize, "Image width and height in pixels")
	renderCmd.Flags().StringP("output", "o", "", "Output file, defaults to qr-kitchen-code.<ext>; - writes to stdout")

	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a styled code to a PNG or SVG file",
	Example: `  qr-kitchen render --kind url --values '{"url":"https://example.com"}' --template "Ocean Gradient"
  qr-kitchen render --design qr-kitchen-1700000000000.json --ext svg -o code.svg`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap, err := snapshotFromFlags(cmd)
		if err != nil {
			return err
		}

		extName, _ := cmd.Flags().GetString("ext")
		size, _ := cmd.Flags().GetInt("size")
		output, _ := cmd.Flags().GetString("output")

		ext, err := render.ParseExtension(extName)
		if err != nil {
			return err
		}

		instance, err := render.Styled{}.New(design.Resolve(snap.Style, content.Format(snap.Kind, snap.Values), size))
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()

		if output != "-" {
			if output == "" {
				output = ext.FileName()
			}

			f, ferr := os.Create(output)
			if ferr != nil {
				return ferr
			}
			defer f.Close() //nolint:errcheck

			w = f
		}

		if err = instance.Download(w, ext); err != nil {
			return err
		}

		if output != "-" {
			cmd.PrintErrln("wrote", output)
		}

		return nil
	},
}

// snapshotFromFlags builds kind, values and style from --design, --kind,
// --values and --template, in that order.
func snapshotFromFlags(cmd *cobra.Command) (portable.Snapshot, error) {
	snap := portable.Snapshot{
		Kind:   content.KindURL,
		Values: content.DefaultValues(),
		Style:  design.DefaultStyle(),
	}

	if path, _ := cmd.Flags().GetString("design"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return snap, err
		}

		if snap, err = portable.Import(raw, snap); err != nil {
			return snap, errors.Wrap(err, path)
		}
	}

	if cmd.Flags().Changed("kind") || cmd.Flags().Changed("values") {
		kind, values, err := contentFromFlags(cmd)
		if err != nil {
			return snap, err
		}

		if cmd.Flags().Changed("kind") {
			snap.Kind = kind
		}

		if cmd.Flags().Changed("values") {
			snap.Values = values
		}
	}

	if name, _ := cmd.Flags().GetString("template"); name != "" {
		t, err := design.Lookup("", name)
		if err != nil {
			return snap, err
		}

		t.Config.Apply(&snap.Style)
	}

	return snap, nil
}
