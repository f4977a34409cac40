package dtoform

import "go.uber.org/zap"

// Option configures how values are flattened and rendered.
type Option func(*config)

type config struct {
	namer      FieldNamer
	converters map[string]ConverterFactory
	logger     *zap.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		namer:  DefaultNamer{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithNamer sets the [FieldNamer] used to name struct fields. The default is
// [DefaultNamer].
func WithNamer(n FieldNamer) Option {
	return func(c *config) {
		if n != nil {
			c.namer = n
		}
	}
}

// WithConverter registers a converter factory under name. Struct fields opt in
// with a formconv tag:
//
//	Born time.Time `formconv:"date"`
func WithConverter(name string, factory ConverterFactory) Option {
	return func(c *config) {
		if c.converters == nil {
			c.converters = make(map[string]ConverterFactory)
		}
		c.converters[name] = factory
	}
}

// WithLogger attaches a logger that receives debug records about omitted
// fields and rejected values. Nothing is logged by default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
