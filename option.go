package infer

// Option customises the configuration New builds an automaton from.
type Option func(c *Config)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(c *Config) {
		if config != nil {
			*c = *config
		}
	}
}

// WithMaxStates sets the hard ceiling on states per automaton.
func WithMaxStates(maxStates int) Option {
	return func(c *Config) {
		c.Automaton.MaxStates = maxStates
	}
}

// WithTracing enables OpenTelemetry instrumentation of bulk operations.
// An empty outputFile exports spans to stdout.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(c *Config) {
		c.Tracing = TracingConfig{
			Enabled:        true,
			ServiceName:    serviceName,
			ServiceVersion: serviceVersion,
			OutputFile:     outputFile,
		}
	}
}
