package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hellenic-development/figma-tokens/pkg/serializer"
)

const defaultConfigPath = ".figma-tokens.yaml"

// ProjectConfig holds the contents of .figma-tokens.yaml. Every field is
// optional; command-line flags override the file.
type ProjectConfig struct {
	FileURL        string            `yaml:"file_url"`
	FileKey        string            `yaml:"file_key"`
	AccessTokenEnv string            `yaml:"access_token_env"`
	OutDir         string            `yaml:"out_dir"`
	Formats        []string          `yaml:"formats"`
	Outputs        map[string]string `yaml:"outputs"`  // format name -> file name
	Interval       string            `yaml:"interval"` // Go duration string, e.g. "30s"

	// Accepted for forward compatibility; extraction currently always covers
	// the full document.
	NodeIDs     []string `yaml:"node_ids"`
	StylePrefix string   `yaml:"style_prefix"`
}

// loadProjectConfig reads the YAML project config from path. When path is the
// default location and the file does not exist, returns an empty config
// (no error); an explicitly passed path must exist.
func loadProjectConfig(path string, explicit bool) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// resolveString returns the flag value when set, then the config value, then
// the fallback.
func resolveString(flagValue, configValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}

// resolveFormats applies the flag -> config -> all-formats chain.
func resolveFormats(flagValue string, cfg *ProjectConfig) ([]serializer.Format, error) {
	if flagValue != "" {
		return serializer.ParseFormats(flagValue)
	}
	if len(cfg.Formats) > 0 {
		var out []serializer.Format
		for _, name := range cfg.Formats {
			f := serializer.Format(name)
			if _, ok := serializer.ByFormat(f); !ok {
				return nil, fmt.Errorf("unknown output format %q in config (supported: css, tailwind, scss, json)", name)
			}
			out = append(out, f)
		}
		return out, nil
	}
	return serializer.ParseFormats("")
}

// resolveOutputNames converts the config's outputs map to serializer formats,
// rejecting unknown format names.
func resolveOutputNames(cfg *ProjectConfig) (map[serializer.Format]string, error) {
	if len(cfg.Outputs) == 0 {
		return nil, nil
	}
	out := make(map[serializer.Format]string, len(cfg.Outputs))
	for name, file := range cfg.Outputs {
		f := serializer.Format(name)
		if _, ok := serializer.ByFormat(f); !ok {
			return nil, fmt.Errorf("unknown output format %q in config outputs", name)
		}
		out[f] = file
	}
	return out, nil
}

// resolveInterval applies the flag -> config -> fallback chain for the watch
// polling interval.
func resolveInterval(flagValue time.Duration, cfg *ProjectConfig, fallback time.Duration) (time.Duration, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	if cfg.Interval != "" {
		d, err := time.ParseDuration(cfg.Interval)
		if err != nil {
			return 0, fmt.Errorf("invalid interval %q in config: %w", cfg.Interval, err)
		}
		return d, nil
	}
	return fallback, nil
}

// resolveToken returns the access token: flag first, then the environment
// variable named by the config (default FIGMA_TOKEN).
func resolveToken(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	envName := cfg.AccessTokenEnv
	if envName == "" {
		envName = "FIGMA_TOKEN"
	}
	return os.Getenv(envName)
}
