// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/color"
	"github.com/tinge-cli/tinge/constant"
	"github.com/tinge-cli/tinge/icon"
	"github.com/tinge-cli/tinge/key"
	"github.com/tinge-cli/tinge/style"
	"github.com/tinge-cli/tinge/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err != nil {
		return
	}

	comp, err := Compare(version, constant.Version)
	if err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/tinge-cli/tinge/releases/tag/v"+version),
	)

}
