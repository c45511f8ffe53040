// internal/config/config.go
package config

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds the server's runtime settings, populated from flags and
// DUELFORGE_* environment variables by the cobra command in cmd/server.
type Config struct {
	Bind    string
	Port    int
	Origins []string
	Verbose bool
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.Bind != "" && net.ParseIP(c.Bind) == nil {
		return fmt.Errorf("invalid bind address: %s", c.Bind)
	}
	return nil
}

// Addr is the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}
