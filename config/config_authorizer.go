package config

import (
	"errors"
	"strings"

	"github.com/blueputty01/swiftnotes/pkg/auth"
	"github.com/blueputty01/swiftnotes/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Name  string `yaml:"name"`
	Token string `yaml:"token"`
}

func (c *Config) registerAuthorizer(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "static":
		return staticAuthorizer(cfg)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}

func staticAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	return static.New(cfg.Name, cfg.Token)
}
