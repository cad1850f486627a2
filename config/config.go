// Package config wires viper to the player's defaults, environment and TOML file.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/tinyplay/tinyplay/constant"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config file if one exists.
func Setup() error {
	viper.SetConfigName(constant.Tinyplay)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Tinyplay)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
