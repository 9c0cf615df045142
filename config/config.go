package config

import (
	"time"

	"github.com/initia-labs/sidecar/types"
)

// Config is the sidecar configuration. Every key is optional; a missing key
// keeps its default.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// TelemetryConfig controls the in-memory metrics sink.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Server: DefaultServerConfig(),
		Engine: DefaultEngineConfig(),
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}

// ExpirationTimeout is the lifetime of built transactions. It follows the
// remote timeout unless set explicitly.
func (c Config) ExpirationTimeout() time.Duration {
	if c.Engine.Basic.ExpirationSeconds > 0 {
		return time.Duration(c.Engine.Basic.ExpirationSeconds) * time.Second
	}
	if c.Engine.Adapter.Kind == AdapterRemote && c.Engine.Adapter.Remote.Timeout > 0 {
		return c.Engine.Adapter.Remote.TimeoutDuration()
	}
	return DefaultExpirationTimeout
}

func invalid(format string, args ...any) error {
	return types.ErrInvalidConfig.Wrapf(format, args...)
}
