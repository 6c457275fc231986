package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hoverlegend/legend"
)

// Config is the service configuration. The legend section supplies default
// rendering options; requests can override them per call.
type Config struct {
	Addr   string       `yaml:"addr"`
	Legend LegendConfig `yaml:"legend"`
}

type LegendConfig struct {
	Mode            string            `yaml:"mode"`
	ContainerWidth  int               `yaml:"containerWidth"`
	ShowZeroValues  *bool             `yaml:"showZeroValues"`
	SeparateLines   bool              `yaml:"separateLines"`
	ContainerStyles map[string]string `yaml:"containerStyles"`
}

func DefaultConfig() Config {
	return Config{Addr: ":8080"}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.Legend.Mode {
	case "", legend.ModeAlways, legend.ModeFollow, legend.ModeNever:
	default:
		return cfg, fmt.Errorf("invalid legend mode %q", cfg.Legend.Mode)
	}
	return cfg, nil
}

// LegendOptions converts the configured defaults into an option map for the
// renderer. Only explicitly set values appear, so library defaults still
// apply underneath.
func (c Config) LegendOptions() map[string]any {
	opts := map[string]any{}
	if c.Legend.Mode != "" {
		opts[legend.OptMode] = c.Legend.Mode
	}
	if c.Legend.ContainerWidth > 0 {
		opts[legend.OptContainerWidth] = c.Legend.ContainerWidth
	}
	if c.Legend.ShowZeroValues != nil {
		opts[legend.OptShowZeroValues] = *c.Legend.ShowZeroValues
	}
	if c.Legend.SeparateLines {
		opts[legend.OptSeparateLines] = true
	}
	if len(c.Legend.ContainerStyles) > 0 {
		opts[legend.OptContainerStyles] = c.Legend.ContainerStyles
	}
	return opts
}
