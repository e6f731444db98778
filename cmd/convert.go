// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tinge-cli/tinge/colour"
	"github.com/tinge-cli/tinge/style"
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("hsla", "", `Input colour as "h,s,l[,a]"`)
	convertCmd.Flags().String("rgba", "", `Input colour as "r,g,b[,a]"`)
	convertCmd.MarkFlagsMutuallyExclusive("hsla", "rgba")
	convertCmd.MarkFlagsOneRequired("hsla", "rgba")

	convertCmd.SetOut(os.Stdout)
}

// convertCmd converts a colour between the HSLA and RGBA spaces and renders its hex form.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a colour between the HSLA and RGBA spaces",
	Long: "Convert a colour between the HSLA and RGBA spaces and render its hexadecimal form.\n" +
		"Saturation, lightness and alpha accept both the percentage scale (0-100) and the unit scale (0.0-1.0).",
	Example: `  tinge convert --hsla 210,15,22
  tinge convert --rgba 255,0,0,0.5`,
	Run: func(cmd *cobra.Command, args []string) {
		var c colour.Colour

		if raw := lo.Must(cmd.Flags().GetString("hsla")); raw != "" {
			parsed, err := parseHSLA(raw)
			handleErr(err)
			c = parsed
		} else {
			parsed, err := parseRGBA(lo.Must(cmd.Flags().GetString("rgba")))
			handleErr(err)
			c = parsed
		}

		var (
			hex  = c.ToHex()
			hsla = c.ToHSLA()
			rgba = c.ToRGBA()
		)

		cmd.Printf("%s %s\n", style.Swatch(hex, "  "), style.Bold(hex))
		cmd.Printf("  hsla(%s, %s, %s, %s)\n",
			channel(hsla.H), channel(hsla.S), channel(hsla.L), channel(hsla.A))
		cmd.Printf("  rgba(%s, %s, %s, %s)\n",
			channel(rgba.R), channel(rgba.G), channel(rgba.B), channel(rgba.A))
	},
}

// channel formats an optional channel value, showing unset fields explicitly.
func channel[T any](opt mo.Option[T]) string {
	if v, ok := opt.Get(); ok {
		return fmt.Sprint(v)
	}
	return "unset"
}

// parseChannels splits a comma-separated channel list into numbers,
// requiring either three channels or three plus alpha.
func parseChannels(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("expected 3 or 4 comma-separated channels, got %d", len(parts))
	}

	channels := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid channel value %q", strings.TrimSpace(part))
		}
		channels = append(channels, v)
	}

	return channels, nil
}

func parseHSLA(raw string) (colour.HSLA, error) {
	channels, err := parseChannels(raw)
	if err != nil {
		return colour.HSLA{}, err
	}

	alpha := mo.None[float64]()
	if len(channels) == 4 {
		alpha = mo.Some(channels[3])
	}

	return colour.NewHSLA(
		mo.Some(int(channels[0])),
		mo.Some(channels[1]),
		mo.Some(channels[2]),
		alpha,
	)
}

func parseRGBA(raw string) (colour.RGBA, error) {
	channels, err := parseChannels(raw)
	if err != nil {
		return colour.RGBA{}, err
	}

	alpha := mo.None[float64]()
	if len(channels) == 4 {
		alpha = mo.Some(channels[3])
	}

	return colour.NewRGBA(
		mo.Some(int(channels[0])),
		mo.Some(int(channels[1])),
		mo.Some(int(channels[2])),
		alpha,
	)
}
