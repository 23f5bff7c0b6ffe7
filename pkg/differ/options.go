package differ

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithMatcher replaces the matcher used to suggest official keys for
// extra local keys.
func WithMatcher(m Matcher) Option {
	return func(d *differ) {
		d.matcher = m
	}
}

// WithoutSuggestions disables possible-match lookup for extra keys.
func WithoutSuggestions() Option {
	return func(d *differ) {
		d.matcher = nil
	}
}
