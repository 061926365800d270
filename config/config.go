package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Init loads config.<env>.toml (env taken from ENV, defaulting to dev),
// binds environment variables on top and validates the result. Any failure
// here is fatal: the server must not start on a broken configuration.
func Init(configPath string) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName("config." + env)
	viper.SetConfigType("toml")

	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	viper.AddConfigPath("$HOME/.campus")
	viper.AddConfigPath("/etc/campus")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if parseErr, ok := err.(*viper.ConfigParseError); ok {
			logrus.Fatalf("Config file parsing failed: %v", parseErr)
		}
		logrus.Fatalf("Failed to read config file: %v", err)
	}

	logrus.Infof("Config file loaded: %v", viper.ConfigFileUsed())

	viper.AutomaticEnv()

	if err := validate(); err != nil {
		logrus.Fatalf("Configuration validation failed: %v", err)
	}
}

// Get returns a raw configuration value
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string configuration value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer configuration value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a boolean configuration value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func validate() error {
	requiredFields := []string{
		"name",
		"port",
		"jwt.secret",
		"database.mysql.host",
		"database.mysql.port",
		"database.mysql.user",
		"database.mysql.password",
		"database.mysql.db",
		"redis.host",
		"redis.port",
	}

	for _, field := range requiredFields {
		if !viper.IsSet(field) {
			return fmt.Errorf("required field '%s' is missing", field)
		}
	}

	port := viper.GetInt("port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port number: %d (must be between 1-65535)", port)
	}

	if len(viper.GetString("jwt.secret")) < 32 {
		return fmt.Errorf("jwt.secret must be at least 32 characters")
	}

	return nil
}
