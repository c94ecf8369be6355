package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from a JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("scenePath", "assets/scene.json")
	viper.SetDefault("watchScene", true)
	viper.SetDefault("debugDraw", false)

	viper.SetDefault("sim.tickRate", 60)
	viper.SetDefault("sim.fixedStep", 0.0)
	viper.SetDefault("sim.runSeconds", 0.0)

	viper.SetConfigName("fishtank.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
