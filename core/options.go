package core

import "github.com/rs/zerolog"

type config struct {
	variadic        string
	requireVariadic bool
	repr            bool
	stringRepr      bool
	name            string
	logger          zerolog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// Option configures a record type at definition time.
type Option func(*config)

// WithVariadic marks the named Go field as the variadic field, as an
// alternative to tagging it `starfield:"*"`.
func WithVariadic(field string) Option {
	return func(c *config) { c.variadic = field }
}

// RequireVariadic makes a record type without a variadic field a definition error.
func RequireVariadic() Option {
	return func(c *config) { c.requireVariadic = true }
}

// WithRepr registers the record's structured-display hook with package display.
func WithRepr() Option {
	return func(c *config) { c.repr = true }
}

// WithStringRepr makes Constructor.String render through the display hook.
// It implies WithRepr.
func WithStringRepr() Option {
	return func(c *config) {
		c.repr = true
		c.stringRepr = true
	}
}

// WithName overrides the display name of the record type.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLogger sets the logger that receives definition events. The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
