package convx

// Provider bundles related converters
type Provider interface {
	Converters() []Converter
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func() []Converter

// Converters implements Provider
func (f ProviderFunc) Converters() []Converter { return f() }

// ConverterSet is a static list of converters usable as a Provider
type ConverterSet []Converter

// Converters implements Provider
func (c ConverterSet) Converters() []Converter { return c }

// RegisterProviders registers every converter of every provider in r
func RegisterProviders(r *Registry, providers ...Provider) {
	for _, p := range providers {
		if p == nil {
			continue
		}
		r.Register(p.Converters()...)
	}
}
