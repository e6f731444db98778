// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinge-cli/tinge/color"
	"github.com/tinge-cli/tinge/config"
	"github.com/tinge-cli/tinge/constant"
	"github.com/tinge-cli/tinge/style"
	"github.com/tinge-cli/tinge/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
		)

		vars := append(slices.Clone(config.EnvExposed), where.EnvConfigPath)
		slices.Sort(vars)

		for _, env := range vars {
			if env != where.EnvConfigPath {
				env = strings.ToUpper(constant.Tinge + "_" + config.EnvKeyReplacer.Replace(env))
			}

			value, present := os.LookupEnv(env)
			present = present && value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Printf("%s=", style.New().Bold(true).Foreground(color.Purple).Render(env))
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
