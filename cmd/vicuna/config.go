package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the vicuna configuration file
// (~/.config/vicuna/config.yaml).
type Config struct {
	Template      string   `yaml:"template"`
	TemplateFiles []string `yaml:"template_files"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vicuna", "config.yaml")
}

// loadConfig reads the config file. A missing default file yields a zero
// Config; a missing file named with --config is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
	}
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.TemplateFiles = resolvePaths(filepath.Dir(path), cfg.TemplateFiles)
	return cfg, nil
}

// resolvePaths makes relative template files relative to the config file.
func resolvePaths(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		out = append(out, p)
	}
	return out
}

// settings are the global options after config file defaults are applied.
type settings struct {
	LogLevel      string
	LogFormat     string
	TemplateFiles []string
	Template      string
}

// applyConfig fills settings from cfg where the corresponding flag was not
// explicitly set on the command line or through the environment.
func applyConfig(c *cli.Command, cfg Config) settings {
	s := settings{
		LogLevel:      c.String("log-level"),
		LogFormat:     c.String("log-format"),
		TemplateFiles: c.StringSlice("template-file"),
		Template:      cfg.Template,
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		s.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		s.LogFormat = cfg.LogFormat
	}
	if len(cfg.TemplateFiles) > 0 && !c.IsSet("template-file") {
		s.TemplateFiles = cfg.TemplateFiles
	}
	if c.Bool("debug") {
		s.LogLevel = "debug"
	}
	return s
}
