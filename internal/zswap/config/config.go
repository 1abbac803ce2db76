// Package config resolves zswapstat settings from defaults, the environment
// and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/zswapstat/internal/zswap/domain"
)

// EnvPrefix marks environment variables read by Load.
const EnvPrefix = "ZSWAPSTAT_"

// AppConfig holds the settings for one invocation.
type AppConfig struct {
	// BlockSize selects the unit derived sizes are scaled to.
	BlockSize string `koanf:"block_size" validate:"required,oneof=b k m g t p e z y"`

	// SI switches size scaling from powers of 1024 to powers of 1000.
	SI bool `koanf:"si"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// unit is BlockSize parsed by Load.
	unit domain.Unit
}

// Unit returns the unit selected by BlockSize.
func (c *AppConfig) Unit() domain.Unit {
	return c.unit
}

// Base returns the size base selected by SI.
func (c *AppConfig) Base() domain.Base {
	return domain.BaseFor(c.SI)
}

// DEFAULT_APP_CONFIG matches running the tool without flags.
var DEFAULT_APP_CONFIG = AppConfig{
	BlockSize: "m",
	SI:        false,
	Env:       "prod",
	LogLevel:  "warn",
}

// defaultLoader loads DEFAULT_APP_CONFIG into k.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// envLoader loads ZSWAPSTAT_* variables into k with the prefix removed and
// the key lowercased. It can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), strings.TrimSpace(value)
		},
	}), nil)
}

// Load merges defaults, environment and flags into a validated AppConfig.
// flags holds only the options given on the command line, keyed like the
// koanf tags of AppConfig.
func Load(flags map[string]any) (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(koanfTagName)
	if err := validate.Struct(&cfg); err != nil {
		return nil, describeValidation(err)
	}

	unit, err := domain.ParseUnit(cfg.BlockSize)
	if err != nil {
		return nil, &UsageError{Msg: err.Error(), Err: err}
	}
	cfg.unit = unit

	return &cfg, nil
}

// describeValidation rewrites validator failures as usage messages naming the
// offending key, its value and the accepted choices.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Field()
		switch fe.Tag() {
		case "oneof":
			choices := strings.Join(strings.Fields(fe.Param()), ", ")
			msgs = append(msgs, fmt.Sprintf("invalid %s %q (choose from %s)", key, fe.Value(), choices))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", key))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s %q", key, fe.Value()))
		}
	}
	return &UsageError{Msg: strings.Join(msgs, "; "), Err: err}
}

// koanfTagName makes validation errors name fields by their config key.
func koanfTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
	if name == "" {
		return field.Name
	}
	return name
}

// UsageError reports a setting outside its accepted values.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	return e.Msg
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
