// Package config loads CLI settings from flags, OPTRES_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "OPTRES"

	LogLevel        = "log_level"
	HTTPTimeout     = "http_timeout"
	RedisAddr       = "redis_addr"
	RedisPassword   = "redis_password"
	RedisDB         = "redis_db"
	KeyPrefix       = "key_prefix"
	SessionCapacity = "session_capacity"
	SessionTTL      = "session_ttl"

	defaultLogLevel        = "info"
	defaultHTTPTimeout     = 10 * time.Second
	defaultKeyPrefix       = "optres:"
	defaultSessionCapacity = 1024
)

// Config is a loaded configuration. Use Load to build one.
type Config struct {
	v *viper.Viper
}

// Load reads configFile when it is not empty, then binds every flag of cmd to
// its viper key and OPTRES_<KEY> environment variable.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	v.SetDefault(LogLevel, defaultLogLevel)
	v.SetDefault(HTTPTimeout, defaultHTTPTimeout)
	v.SetDefault(KeyPrefix, defaultKeyPrefix)
	v.SetDefault(SessionCapacity, defaultSessionCapacity)

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
		zap.S().Debugw("using config file", "file", v.ConfigFileUsed())
	}

	bindFlags(cmd, v)

	return &Config{v: v}, nil
}

// Bind each cobra flag to its viper key (dashes become underscores) and to the
// matching environment variable.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		_ = v.BindEnv(key, fmt.Sprintf("%s_%s", prefix, strings.ToUpper(key)))

		if f.Changed {
			v.Set(key, f.Value.String())
			return
		}
		if v.IsSet(key) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key)))
		}
	})
}

func (c *Config) LogLevel() string {
	return c.v.GetString(LogLevel)
}

func (c *Config) HTTPTimeout() time.Duration {
	return c.v.GetDuration(HTTPTimeout)
}

// RedisAddr is empty when no Redis server is configured.
func (c *Config) RedisAddr() string {
	return c.v.GetString(RedisAddr)
}

func (c *Config) RedisPassword() string {
	return c.v.GetString(RedisPassword)
}

func (c *Config) RedisDB() int {
	return c.v.GetInt(RedisDB)
}

func (c *Config) KeyPrefix() string {
	return c.v.GetString(KeyPrefix)
}

func (c *Config) SessionCapacity() int {
	return c.v.GetInt(SessionCapacity)
}

// SessionTTL is zero when session entries never expire.
func (c *Config) SessionTTL() time.Duration {
	return c.v.GetDuration(SessionTTL)
}
