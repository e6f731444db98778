// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/constant"
	"github.com/tinge-cli/tinge/filesystem"
	"github.com/tinge-cli/tinge/where"
)

// EnvKeyReplacer converts configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup points viper at the config file, binds environment variables and
// seeds the registered defaults.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Tinge)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Tinge)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	// A missing config file just means defaults apply.
	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
