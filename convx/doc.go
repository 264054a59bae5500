// Package convx provides a registry of value converters keyed by (source type, destination type).
//
// A converter is registered once, usually at start-up, and looked up by the exact pair of
// types it bridges:
//
//	reg := convx.NewRegistry("api")
//	reg.Register(convx.NewFunc(func(s string) (uuid.UUID, error) {
//		return uuid.Parse(s)
//	}))
//
//	id, err := convx.ConvertTo[uuid.UUID](reg, "9b2f6d1e-3c1a-4a8e-9a57-3f3b8d8e7c11")
//
// Converters are grouped into providers so related conversions can be registered together.
// The default registry returned by Default comes populated with BasicConverters and
// PrimitiveConverters; the providers subpackages add conversions for uuid, MongoDB,
// PostgreSQL, pgvector, JWT and SQS types and are registered explicitly:
//
//	convx.RegisterProviders(convx.Default(), convxuuid.Converters(), convxmongo.Converters())
//
// Lookups are safe for concurrent use. Registering the same pair twice replaces the
// earlier converter.
package convx
