package config

import (
	"fmt"
	"slices"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Storage View

type Configuration struct {
	Server    Server  `debugmap:"visible" mapstructure:"server"`
	Storage   Storage `debugmap:"visible" mapstructure:"storage"`
	View      View    `debugmap:"visible" mapstructure:"view"`
	LogFormat string  `debugmap:"visible" mapstructure:"log-format" default:"console"`
	LogLevel  string  `debugmap:"visible" mapstructure:"log-level" default:"info"`
}

type Server struct {
	ServerMode string `debugmap:"visible" mapstructure:"mode" default:"dev"`
	HTTPPort   int    `debugmap:"visible" mapstructure:"http-port" default:"8000"`
}

type Storage struct {
	DatabasePath   string `debugmap:"visible" mapstructure:"database-path" default:"records.duckdb"`
	SlotKey        string `debugmap:"visible" mapstructure:"slot-key" default:"users"`
	SeedDemo       bool   `debugmap:"visible" mapstructure:"seed-demo" default:"true"`
	PersistRetries uint   `debugmap:"visible" mapstructure:"persist-retries" default:"3"`
}

type View struct {
	PerPageChoices []int `debugmap:"visible" mapstructure:"per-page-choices" default:"[5,10,20,50]"`
	DefaultPerPage int   `debugmap:"visible" mapstructure:"per-page" default:"10"`
}

var (
	validServerModes = []string{"dev", "prod"}
	validLogFormats  = []string{"console", "json"}
)

// Validate checks that the configuration is usable.
func (c *Configuration) Validate() error {
	if !slices.Contains(validServerModes, c.Server.ServerMode) {
		return fmt.Errorf("invalid server mode %q: must be one of %v", c.Server.ServerMode, validServerModes)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q: must be one of %v", c.LogFormat, validLogFormats)
	}
	if c.Storage.SlotKey == "" {
		return fmt.Errorf("storage slot key is empty")
	}
	if len(c.View.PerPageChoices) == 0 {
		return fmt.Errorf("per-page choices are empty")
	}
	for _, n := range c.View.PerPageChoices {
		if n <= 0 {
			return fmt.Errorf("invalid per-page choice %d", n)
		}
	}
	if !slices.Contains(c.View.PerPageChoices, c.View.DefaultPerPage) {
		return fmt.Errorf("default per-page %d is not one of %v", c.View.DefaultPerPage, c.View.PerPageChoices)
	}
	return nil
}
