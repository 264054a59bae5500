// Package configx builds layered configuration (defaults, file, environment) on top of viper.
//
//	cfg, err := configx.NewBuilder().
//		WithDefaults(map[string]any{"strict": false}).
//		FromEnv("CONVX_").
//		Build()
//
//	strict := cfg.Get("strict").AsBool()
//
// Environment variables are mapped to keys by stripping the prefix, lower-casing and
// replacing underscores with dots: CONVX_DECIMAL_SEPARATOR becomes "decimal.separator".
package configx

import (
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/Conversia-AI/craftable-convx/errx"
)

var (
	ErrorRegistry = errx.NewRegistry("CONFIG")

	ErrMissingEnv = ErrorRegistry.Register("MISSING_ENV", errx.TypeValidation, http.StatusBadRequest, "Required environment variable is not set")
	ErrReadFile   = ErrorRegistry.Register("READ_FILE", errx.TypeSystem, http.StatusInternalServerError, "Could not read configuration file")
	ErrUnmarshal  = ErrorRegistry.Register("UNMARSHAL", errx.TypeInternal, http.StatusInternalServerError, "Could not decode configuration")
)

// Builder accumulates configuration sources
type Builder struct {
	defaults    map[string]any
	envPrefixes []string
	files       []string
	required    []string
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{defaults: make(map[string]any)}
}

// WithDefaults sets default values; nested maps become dotted keys
func (b *Builder) WithDefaults(defaults map[string]any) *Builder {
	flatten("", defaults, b.defaults)
	return b
}

// FromFile reads a configuration file (any format viper understands)
func (b *Builder) FromFile(path string) *Builder {
	b.files = append(b.files, path)
	return b
}

// FromEnv loads environment variables that start with prefix
func (b *Builder) FromEnv(prefix string) *Builder {
	b.envPrefixes = append(b.envPrefixes, prefix)
	return b
}

// RequireEnv makes Build fail when any of the variables is unset
func (b *Builder) RequireEnv(names ...string) *Builder {
	b.required = append(b.required, names...)
	return b
}

// Build resolves all sources; later sources override earlier ones
func (b *Builder) Build() (*Config, error) {
	var missing []string
	for _, name := range b.required {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, ErrorRegistry.New(ErrMissingEnv).WithDetail("variables", missing)
	}

	v := viper.New()
	for k, val := range b.defaults {
		v.SetDefault(k, val)
	}

	for _, file := range b.files {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return nil, ErrorRegistry.NewWithCause(ErrReadFile, err).WithDetail("file", file)
		}
	}

	for _, prefix := range b.envPrefixes {
		for _, kv := range os.Environ() {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || !strings.HasPrefix(name, prefix) {
				continue
			}
			key := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, prefix), "_", "."))
			if key != "" {
				v.Set(key, value)
			}
		}
	}

	return &Config{v: v}, nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, val := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := val.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[strings.ToLower(key)] = val
	}
}

// Config is a resolved configuration
type Config struct {
	v *viper.Viper
}

// Get returns the value stored under key
func (c *Config) Get(key string) Value {
	return Value{raw: c.v.Get(key), set: c.v.IsSet(key)}
}

// AllSettings returns the configuration as nested maps
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}

// Unmarshal decodes the configuration into out using mapstructure tags
func (c *Config) Unmarshal(out any) error {
	if err := c.v.Unmarshal(out); err != nil {
		return ErrorRegistry.NewWithCause(ErrUnmarshal, err)
	}
	return nil
}

// Value is a single configuration value
type Value struct {
	raw any
	set bool
}

func (v Value) Exists() bool     { return v.set }
func (v Value) Raw() any         { return v.raw }
func (v Value) AsString() string { return cast.ToString(v.raw) }
func (v Value) AsInt() int       { return cast.ToInt(v.raw) }
func (v Value) AsBool() bool     { return cast.ToBool(v.raw) }
func (v Value) AsFloat() float64 { return cast.ToFloat64(v.raw) }

// AsRune returns the first rune of the string form, or def when empty
func (v Value) AsRune(def rune) rune {
	for _, r := range v.AsString() {
		return r
	}
	return def
}
