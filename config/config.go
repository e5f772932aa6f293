// Package config loads and validates the application configuration.
//
// Settings come from a YAML file plus ECOMIDA_* environment variable
// overrides (e.g. ECOMIDA_DATA_MONGODB_URI overrides data.mongodb.uri).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/messaging/email"
)

// insecureDefaultSecret mirrors the development fallback of the signing
// secret. It must never survive into a production deployment.
const insecureDefaultSecret = "secreta"

var (
	config *Config
	mu     sync.Mutex
	v      *viper.Viper
)

// Config represents the application configuration.
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Logger  *logger.Config
	Data    *Data
	Auth    *Auth
	Email   *email.Email
	Viper   *viper.Viper
}

// IsProd reports whether the application runs in production mode.
func (c *Config) IsProd() bool {
	return c.RunMode == "release" || c.RunMode == "production"
}

// LoadConfig loads the configuration from the given file, falling back to
// a config.yaml next to the executable or in the working directory.
func LoadConfig(configPath string) (*Config, error) {
	v = viper.New()
	v.SetEnvPrefix("ECOMIDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	if err := v.ReadInConfig(); err != nil {
		// Env-only deployments carry no config file.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Host:    v.GetString("server.host"),
		Port:    v.GetInt("server.port"),
		Logger:  getLoggerConfig(v),
		Data:    getDataConfig(v),
		Auth:    getAuth(v),
		Email:   getEmailConfig(v),
		Viper:   v,
	}

	if cfg.Port == 0 {
		cfg.Port = 5000
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	config = cfg
	mu.Unlock()
	return cfg, nil
}

// Validate rejects configurations that are unsafe to run with.
func (c *Config) Validate() error {
	if c.Data == nil || c.Data.MongoDB == nil || c.Data.MongoDB.URI == "" {
		return errors.New("data.mongodb.uri is required")
	}
	if c.Auth == nil || c.Auth.JWT == nil {
		return errors.New("auth.jwt configuration is required")
	}
	if c.IsProd() {
		if c.Auth.JWT.Secret == "" || c.Auth.JWT.Secret == insecureDefaultSecret {
			return errors.New("auth.jwt.secret must be set to a non-default value in production")
		}
	}
	return nil
}

// Watch watches the configuration file and invokes the callback with the
// reloaded configuration when it changes.
func Watch(callback func(*Config)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		newCfg, err := LoadConfig(e.Name)
		if err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
			return
		}
		callback(newCfg)
	})
}
