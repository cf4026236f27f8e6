// Package config provides YAML-based platform configuration loading for
// the breakout terminal frontends. Simulation constants are fixed and are
// not part of the configuration.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ArcadeConfig contains all platform configuration.
type ArcadeConfig struct {
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig defines frame driver parameters.
type DisplayConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Ticks per second
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction key stays held after a press
}

// StorageConfig defines where scores and inventory are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate reports the first invalid setting.
func (c ArcadeConfig) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Display.HoldTicks <= 0 {
		return fmt.Errorf("display.hold_ticks must be positive, got %d", c.Display.HoldTicks)
	}
	if c.Storage.DBPath == "" {
		return errors.New("storage.db_path must not be empty")
	}
	if c.Server.Address == "" {
		return errors.New("server.address must not be empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	return nil
}
