package infer

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/jithinanchanattu/infer/model/graph"
)

// Config is a serialisable representation of the library configuration.
// It can be populated from YAML or JSON; zero-value fields inherit their
// package defaults.
type Config struct {
	Automaton AutomatonConfig `json:"automaton" yaml:"automaton"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
}

// AutomatonConfig bounds automaton construction.
type AutomatonConfig struct {
	// MaxStates is the hard ceiling on states per automaton, the safety
	// valve that keeps runaway algorithms from exhausting memory.
	MaxStates int `json:"maxStates" yaml:"maxStates"`
}

// TracingConfig controls the optional OpenTelemetry instrumentation of
// bulk automaton operations.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	// OutputFile receives exported spans; empty selects stdout.
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Automaton: AutomatonConfig{MaxStates: graph.DefaultMaxStates},
		Tracing:   TracingConfig{ServiceName: "infer"},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Automaton.MaxStates <= 0 {
		return fmt.Errorf("automaton.maxStates must be > 0")
	}
	return nil
}

// LoadConfig loads and validates a YAML configuration from the specified
// URL (file path, embed or any other scheme the afs service understands).
// Settings absent from the document keep their defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
