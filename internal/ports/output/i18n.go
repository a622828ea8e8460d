package output

// Translator renders user-facing messages for a locale (a BCP 47 tag or an
// Accept-Language header value).
type Translator interface {
	// T renders the message key with optional template data; unknown keys
	// render as the key itself.
	T(locale, key string, data map[string]any) string
	// Error renders the message for a domain error, falling back to a generic
	// message for errors without a domain code.
	Error(locale string, err error) string
}
