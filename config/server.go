package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHost                  = "127.0.0.1"
	DefaultPort                  = 8545
	DefaultRequestTimeoutSeconds = uint64(90)
	DefaultMaxBodyBytes          = 5 * 1024 * 1024
)

// ServerConfig is the `[server]` section.
type ServerConfig struct {
	Host                  string   `mapstructure:"host"`
	Port                  int      `mapstructure:"port"`
	RequestTimeoutSeconds uint64   `mapstructure:"request_timeout_seconds"`
	CORS                  []string `mapstructure:"cors"`
	MaxBodyBytes          int      `mapstructure:"max_body_bytes"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:                  DefaultHost,
		Port:                  DefaultPort,
		RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
		MaxBodyBytes:          DefaultMaxBodyBytes,
	}
}

// Address returns the `host:port` to bind.
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c ServerConfig) Validate() error {
	if c.Host == "" {
		return invalid("server.host cannot be empty")
	}
	if c.Port < 0 || c.Port > 65535 {
		return invalid("server.port %d out of range", c.Port)
	}
	if c.RequestTimeoutSeconds == 0 {
		return invalid("server.request_timeout_seconds must be positive")
	}
	if c.MaxBodyBytes < 0 {
		return invalid("server.max_body_bytes cannot be negative")
	}
	for _, origin := range c.CORS {
		if origin == "" || strings.ContainsAny(origin, "\r\n\x00,") {
			return invalid("invalid server.cors origin %q", origin)
		}
	}
	return nil
}
