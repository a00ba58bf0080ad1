package httpclient

import (
	"fmt"

	"github.com/andyle182810/gfetch/validator"
	gvalidator "github.com/go-playground/validator/v10"
)

// RedirectPolicy controls what the Fetcher does with a 3xx response.
type RedirectPolicy string

const (
	RedirectFollow RedirectPolicy = "follow"
	RedirectError  RedirectPolicy = "error"
	RedirectManual RedirectPolicy = "manual"
)

const redirectPolicyTag = "redirect_policy"

func (p RedirectPolicy) IsValid() bool {
	switch p {
	case RedirectFollow, RedirectError, RedirectManual:
		return true
	default:
		return false
	}
}

type Config struct {
	BaseURL  string            `yaml:"base_url" validate:"required,url"`
	Token    string            `yaml:"token"`
	Headers  map[string]string `yaml:"headers"`
	Redirect RedirectPolicy    `yaml:"redirect" validate:"omitempty,redirect_policy"`
}

var configValidator = newConfigValidator() //nolint:gochecknoglobals

func newConfigValidator() *validator.Validator {
	v := validator.New()

	err := v.RegisterCustomValidation(redirectPolicyTag, func(fl gvalidator.FieldLevel) bool {
		return RedirectPolicy(fl.Field().String()).IsValid()
	})
	if err != nil {
		panic(fmt.Sprintf("httpclient: register %s validation: %v", redirectPolicyTag, err))
	}

	return v
}

func (c Config) Validate() error {
	if err := configValidator.Validate(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (c Config) redirectPolicy() RedirectPolicy {
	if c.Redirect == "" {
		return RedirectFollow
	}

	return c.Redirect
}
