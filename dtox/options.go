package dtox

import (
	"github.com/Conversia-AI/craftable-convx/configx"
	"github.com/Conversia-AI/craftable-convx/convx"
	"github.com/Conversia-AI/craftable-convx/logx"
)

// DefaultTagName is the struct tag read for transient markers and renames
const DefaultTagName = "dtox"

// Options configures a Copier
type Options struct {
	// Registry resolves fields whose types are not assignable
	Registry *convx.Registry
	// Strict turns a field that cannot be converted into an error instead of a warning
	Strict bool
	// TagName is the struct tag holding "-", "transient" and "name=Other"
	TagName string
	// DeepCopy copies maps, slices and pointers instead of sharing them
	DeepCopy bool
	// FailOnMissing rejects source fields without a destination field
	FailOnMissing bool
	// FieldMappings renames source fields to destination fields
	FieldMappings map[string]string
	// IgnoreFields are skipped on both sides
	IgnoreFields map[string]bool
	Logger       *logx.Logger
}

// DefaultOptions returns lenient options backed by the default registry
func DefaultOptions() Options {
	return Options{
		Registry: convx.Default(),
		TagName:  DefaultTagName,
		Logger:   logx.Default(),
	}
}

// LoadOptions reads "strict", "tag" and "deepcopy" from cfg on top of the defaults
func LoadOptions(cfg *configx.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	if v := cfg.Get("strict"); v.Exists() {
		opts.Strict = v.AsBool()
	}
	if v := cfg.Get("deepcopy"); v.Exists() {
		opts.DeepCopy = v.AsBool()
	}
	if v := cfg.Get("tag"); v.Exists() && v.AsString() != "" {
		opts.TagName = v.AsString()
	}
	return opts
}

func (o Options) withDefaults() Options {
	if o.TagName == "" {
		o.TagName = DefaultTagName
	}
	if o.Logger == nil {
		o.Logger = logx.Default()
	}
	return o
}
