package render

// BindingResolver resolves a raw property value (a binding expression such
// as "greeter.message", verbatim as written in the source) into a display
// string. An empty result means "no resolution".
type BindingResolver func(binding string) string

// Resolve applies r to raw. The resolver is best-effort substitution, never
// authoritative: a non-empty result replaces raw, anything else keeps it.
// A nil resolver passes raw through unchanged.
func Resolve(r BindingResolver, raw string) string {
	if r == nil {
		return raw
	}
	if resolved := r(raw); resolved != "" {
		return resolved
	}
	return raw
}

// MapResolver resolves bindings from a fixed table. Bindings without an
// entry resolve to empty, so the raw value survives.
func MapResolver(values map[string]string) BindingResolver {
	return func(binding string) string {
		return values[binding]
	}
}

// Chain tries each resolver in order and returns the first non-empty
// result. Nil entries are skipped.
func Chain(resolvers ...BindingResolver) BindingResolver {
	return func(binding string) string {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if resolved := r(binding); resolved != "" {
				return resolved
			}
		}
		return ""
	}
}
