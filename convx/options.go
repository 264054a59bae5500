package convx

import "github.com/Conversia-AI/craftable-convx/configx"

// Options configures the built-in converters
type Options struct {
	// DecimalSeparator is the separator expected when parsing decimal strings
	DecimalSeparator rune
	// TimeLayout is used when formatting time.Time as string
	TimeLayout string
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		DecimalSeparator: '.',
		TimeLayout:       "2006-01-02T15:04:05Z07:00",
	}
}

// LoadOptions reads options from configuration keys "decimal.separator" and "time.layout"
func LoadOptions(cfg *configx.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.DecimalSeparator = cfg.Get("decimal.separator").AsRune(opts.DecimalSeparator)
	if layout := cfg.Get("time.layout"); layout.Exists() && layout.AsString() != "" {
		opts.TimeLayout = layout.AsString()
	}
	return opts
}
