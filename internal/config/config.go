package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultProfile names the client built from the GFETCH_* variables.
const DefaultProfile = "default"

var ErrReadProfiles = errors.New("config: failed to read profile file")

type Config struct {
	// Default upstream
	BaseURL  string `env:"GFETCH_BASE_URL"`
	Token    string `env:"GFETCH_TOKEN"`
	Redirect string `env:"GFETCH_REDIRECT"  envDefault:"follow"`

	// Application
	LogLevel   string `env:"GFETCH_LOG_LEVEL"   envDefault:"warn"`
	ConfigFile string `env:"GFETCH_CONFIG_FILE"`
}

func New() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) ClientConfig() httpclient.Config {
	return httpclient.Config{
		BaseURL:  c.BaseURL,
		Token:    c.Token,
		Headers:  nil,
		Redirect: httpclient.RedirectPolicy(c.Redirect),
	}
}

// Registry registers every profile from ConfigFile, then the default profile
// when BaseURL is set. The environment wins over a file profile of the same name.
func (c *Config) Registry(opts ...httpclient.Option) (*httpclient.Registry, error) {
	registry := httpclient.NewRegistry(opts...)

	if c.ConfigFile != "" {
		profiles, err := LoadProfiles(c.ConfigFile)
		if err != nil {
			return nil, err
		}

		for name, profile := range profiles {
			if err := registry.Register(name, profile); err != nil {
				return nil, fmt.Errorf("failed to register profile: %w", err)
			}
		}
	}

	if c.BaseURL != "" {
		if err := registry.Register(DefaultProfile, c.ClientConfig()); err != nil {
			return nil, fmt.Errorf("failed to register profile: %w", err)
		}
	}

	return registry, nil
}

type profileFile struct {
	Profiles map[string]httpclient.Config `yaml:"profiles"`
}

// LoadProfiles reads a YAML document of the form
//
//	profiles:
//	  billing:
//	    base_url: https://billing.internal/api
//	    token: secret
//	    redirect: error
//	    headers:
//	      X-Tenant: acme
func LoadProfiles(path string) (map[string]httpclient.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadProfiles, err)
	}

	var file profileFile

	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadProfiles, path, err)
	}

	profiles := make(map[string]httpclient.Config, len(file.Profiles))
	maps.Copy(profiles, file.Profiles)

	return profiles, nil
}
