package infer

import (
	"github.com/jithinanchanattu/infer/model"
	"github.com/jithinanchanattu/infer/tracing"
)

// New builds an automaton from the default configuration amended by the
// supplied options.
func New(options ...Option) (*model.Automaton, error) {
	config := DefaultConfig()
	for _, option := range options {
		option(config)
	}
	return NewFromConfig(config)
}

// NewFromConfig builds an automaton from an explicit configuration,
// initialising tracing first when the configuration asks for it.
func NewFromConfig(config *Config) (*model.Automaton, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Tracing.Enabled {
		if err := tracing.Init(config.Tracing.ServiceName, config.Tracing.ServiceVersion, config.Tracing.OutputFile); err != nil {
			return nil, err
		}
	}
	return model.New(config.Automaton.MaxStates)
}
