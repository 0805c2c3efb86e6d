package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qrkitchen/qr-kitchen/internal/design"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in design templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		_, _ = fmt.Fprintln(tw, "CATEGORY\tNAME\tCOLORS\tSHAPE")

		for _, c := range design.Catalog() {
			for _, t := range c.Templates {
				colors := t.Config.DotsColor
				if t.Config.GradientEnabled {
					colors = string(t.Config.GType) + " " + t.Config.G1 + "→" + t.Config.G2
				}

				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s on %s\t%s\n", c.Name, t.Name, colors, t.Config.Bg, t.Config.Shape)
			}
		}

		return tw.Flush()
	},
}
