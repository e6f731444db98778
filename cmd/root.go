// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/color"
	"github.com/tinge-cli/tinge/constant"
	"github.com/tinge-cli/tinge/icon"
	"github.com/tinge-cli/tinge/key"
	"github.com/tinge-cli/tinge/log"
	"github.com/tinge-cli/tinge/palette"
	"github.com/tinge-cli/tinge/style"
	"github.com/tinge-cli/tinge/util"
	"github.com/tinge-cli/tinge/version"
	"github.com/tinge-cli/tinge/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringSliceP("palette", "p", []string{}, "Specify the palettes to apply, in substitution order")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("palette", completionPaletteNames))
	lo.Must0(viper.BindPFlag(key.PaletteDefault, rootCmd.PersistentFlags().Lookup("palette")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the tinge application.
var rootCmd = &cobra.Command{
	Use:   constant.Tinge,
	Short: "A command-line toolbox for colour conversion and theme templating",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Blue).Render("    - A command-line toolbox for colour conversion and theme templating"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// completionPaletteNames offers the built-in palette identifiers for shell completion.
func completionPaletteNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, p := range palette.Builtins() {
		names = append(names, p.Name())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func errUnknownPalette(name string) error {
	return fmt.Errorf(
		"unknown palette %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(palette.SuggestPalette(name)),
	)
}

// resolvePalettes maps palette names to their built-in definitions, failing
// with a suggestion on the first unknown name.
func resolvePalettes(names []string) ([]*palette.Palette, error) {
	palettes := make([]*palette.Palette, 0, len(names))
	for _, name := range names {
		p, ok := palette.ByName(name).Get()
		if !ok {
			return nil, errUnknownPalette(name)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}
