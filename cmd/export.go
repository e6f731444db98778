// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/color"
	"github.com/tinge-cli/tinge/icon"
	"github.com/tinge-cli/tinge/key"
	"github.com/tinge-cli/tinge/palette"
	"github.com/tinge-cli/tinge/style"
	"github.com/tinge-cli/tinge/theme"
	"github.com/tinge-cli/tinge/util"
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("template", "t", "", "Template document whose colour names are substituted")
	lo.Must0(exportCmd.MarkFlagRequired("template"))
	lo.Must0(exportCmd.MarkFlagFilename("template"))

	exportCmd.Flags().StringP("output", "o", "", "Destination path (defaults next to the template)")
	lo.Must0(exportCmd.MarkFlagFilename("output"))

	exportCmd.Flags().Bool("keep-whitespace", false, "Skip whitespace normalization before substitution")

	exportCmd.SetOut(os.Stdout)
}

// exportCmd produces a themed document by substituting palette colour names in a template.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Substitute palette colour names in a template and write the themed result",
	Example: `  tinge export -t themes/mariana-reference.json
  tinge export -t reference.json -o mariana-color-theme.json -p mariana`,
	Run: func(cmd *cobra.Command, args []string) {
		template := lo.Must(cmd.Flags().GetString("template"))

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			output = filepath.Join(
				filepath.Dir(template),
				util.FileStem(template)+"-color-theme"+filepath.Ext(template),
			)
		}

		if lo.Must(cmd.Flags().GetBool("keep-whitespace")) {
			viper.Set(key.ExportMinify, false)
		}

		palettes, err := resolvePalettes(viper.GetStringSlice(key.PaletteDefault))
		handleErr(err)

		handleErr(theme.NewReference(template).UsePalettes(palettes...).Export(output))

		entries := lo.SumBy(palettes, func(p *palette.Palette) int {
			return len(p.Entries())
		})
		cmd.Printf("%s wrote %s (%s from %s)\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(output),
			util.Quantify(entries, "colour", "colours"),
			style.Fg(color.Purple)(util.Quantify(len(palettes), "palette", "palettes")),
		)
	},
}
