package convx

import (
	"reflect"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/Conversia-AI/craftable-convx/logx"
)

// DefaultName is the name of the registry returned by Default
const DefaultName = "default"

type typeKey struct {
	from reflect.Type
	to   reflect.Type
}

// Entry describes one registered type pair
type Entry struct {
	From reflect.Type
	To   reflect.Type
}

// Registry maps (source type, destination type) pairs to converters
type Registry struct {
	name       string
	mu         sync.RWMutex
	converters map[typeKey]Converter
	logger     *logx.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(name string) *Registry {
	return &Registry{
		name:       name,
		converters: make(map[typeKey]Converter),
		logger:     logx.Default(),
	}
}

// WithLogger replaces the logger used for registration diagnostics
func (r *Registry) WithLogger(logger *logx.Logger) *Registry {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Name returns the registry name
func (r *Registry) Name() string { return r.name }

// Register stores converters; an existing converter for the same pair is replaced
func (r *Registry) Register(converters ...Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range converters {
		if c == nil || c.From() == nil || c.To() == nil {
			r.logger.Warn("registry %s: ignoring invalid converter %T", r.name, c)
			continue
		}
		key := typeKey{from: c.From(), to: c.To()}
		if _, exists := r.converters[key]; exists {
			r.logger.Debug("registry %s: replacing converter %s -> %s", r.name, key.from, key.to)
		}
		r.converters[key] = c
	}
}

// RegisterFunc registers an untyped conversion function
func (r *Registry) RegisterFunc(from, to reflect.Type, fn func(any) (any, error)) error {
	if from == nil || to == nil || fn == nil {
		return ErrorRegistry.New(ErrInvalidConverter)
	}
	r.Register(NewDynamic(from, to, fn))
	return nil
}

// Lookup returns the converter registered for the pair
func (r *Registry) Lookup(from, to reflect.Type) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[typeKey{from: from, to: to}]
	return c, ok
}

// Has reports whether a converter is registered for the pair
func (r *Registry) Has(from, to reflect.Type) bool {
	_, ok := r.Lookup(from, to)
	return ok
}

// LookupByName finds a converter by the printed names of its types, e.g. "string" and "decimal.Decimal"
func (r *Registry) LookupByName(from, to string) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key, c := range r.converters {
		if key.from.String() == from && key.to.String() == to {
			return c, true
		}
	}
	return nil, false
}

// Convert converts value to the destination type using the converter registered
// for the dynamic type of value
func (r *Registry) Convert(value any, to reflect.Type) (any, error) {
	if value == nil {
		return nil, ErrorRegistry.New(ErrNilValue).WithDetail("target_type", typeName(to))
	}
	return r.ConvertFrom(value, reflect.TypeOf(value), to)
}

// ConvertFrom converts value using the converter registered for (from, to).
// Use it when value may be nil and its static type is known.
func (r *Registry) ConvertFrom(value any, from, to reflect.Type) (any, error) {
	c, ok := r.Lookup(from, to)
	if !ok {
		return nil, ErrorRegistry.New(ErrNoConverter).
			WithDetail("source_type", typeName(from)).
			WithDetail("target_type", typeName(to))
	}

	out, err := c.Convert(value)
	if err != nil {
		return nil, ErrorRegistry.NewWithCause(ErrConversionFailed, err).
			WithDetail("source_type", typeName(from)).
			WithDetail("target_type", typeName(to))
	}
	return out, nil
}

// Entries returns the registered pairs sorted by source then destination type name
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := lo.MapToSlice(r.converters, func(k typeKey, _ Converter) Entry {
		return Entry{From: k.from, To: k.to}
	})
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if a, b := entries[i].From.String(), entries[j].From.String(); a != b {
			return a < b
		}
		return entries[i].To.String() < entries[j].To.String()
	})
	return entries
}

// Count returns the number of registered converters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.converters)
}

// Reset removes all converters
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters = make(map[typeKey]Converter)
}

// ConvertTo converts value to T through r
func ConvertTo[T any](r *Registry, value any) (T, error) {
	var zero T
	out, err := r.Convert(value, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, ErrorRegistry.New(ErrUnexpectedType).
			WithDetail("expected", reflect.TypeFor[T]().String()).
			WithDetail("actual", typeName(reflect.TypeOf(out)))
	}
	return typed, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

var (
	instancesMu sync.Mutex
	instances   = make(map[string]*Registry)
)

// Instance returns the process-wide registry with the given name, creating it on first use
func Instance(name string) *Registry {
	instancesMu.Lock()
	defer instancesMu.Unlock()

	if r, ok := instances[name]; ok {
		return r
	}
	r := NewRegistry(name)
	if name == DefaultName {
		RegisterProviders(r, BasicConverters(), PrimitiveConverters())
	}
	instances[name] = r
	return r
}

// Default returns the default process-wide registry
func Default() *Registry {
	return Instance(DefaultName)
}

// Register registers converters in the default registry
func Register(converters ...Converter) {
	Default().Register(converters...)
}

// Lookup looks up a converter in the default registry
func Lookup(from, to reflect.Type) (Converter, bool) {
	return Default().Lookup(from, to)
}

// Convert converts value with the default registry
func Convert(value any, to reflect.Type) (any, error) {
	return Default().Convert(value, to)
}
