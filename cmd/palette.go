// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinge-cli/tinge/color"
	"github.com/tinge-cli/tinge/palette"
	"github.com/tinge-cli/tinge/style"
	"github.com/tinge-cli/tinge/util"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

// paletteCmd serves as the parent command for inspecting the built-in palettes.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect the built-in colour palettes",
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)
	paletteListCmd.SetOut(os.Stdout)
}

// paletteListCmd enumerates the built-in palettes and their sizes.
var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in palettes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range palette.Builtins() {
			cmd.Printf("%s %s\n",
				style.New().Bold(true).Foreground(color.Purple).Render(util.Capitalize(p.Name())),
				style.Faint(util.Quantify(len(p.Entries()), "colour", "colours")),
			)
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteShowCmd)
	paletteShowCmd.SetOut(os.Stdout)
}

// paletteShowCmd renders every entry of a palette with a colour swatch.
var paletteShowCmd = &cobra.Command{
	Use:               "show [palette]",
	Short:             "Display a palette's entries with their hex renderings",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPaletteNames,
	Run: func(cmd *cobra.Command, args []string) {
		palettes := palette.Builtins()

		if len(args) == 1 {
			p, ok := palette.ByName(args[0]).Get()
			if !ok {
				handleErr(errUnknownPalette(args[0]))
			}
			palettes = []*palette.Palette{p}
		}

		for i, p := range palettes {
			cmd.Println(style.New().Bold(true).Foreground(color.Purple).Render(util.Capitalize(p.Name())))

			width := util.Max(lo.Map(p.Names(), func(name string, _ int) int {
				return len(name)
			})...)

			for _, e := range p.Entries() {
				hex := e.Colour.ToHex()
				cmd.Printf("%s %-*s %s\n", style.Swatch(hex, "  "), width, e.Name, style.Faint(hex))
			}

			if i < len(palettes)-1 {
				cmd.Println()
			}
		}
	},
}
