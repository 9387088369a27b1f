package infer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinanchanattu/infer/model/graph"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, graph.DefaultMaxStates, config.Automaton.MaxStates)
	assert.False(t, config.Tracing.Enabled)
	require.NoError(t, config.Validate())
}

func TestValidateRejectsNonPositiveLimit(t *testing.T) {
	config := DefaultConfig()
	config.Automaton.MaxStates = 0
	assert.Error(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(URL, []byte("automaton:\n  maxStates: 128\ntracing:\n  serviceName: test\n"), 0o644)
	require.NoError(t, err)

	config, err := LoadConfig(context.Background(), URL)
	require.NoError(t, err)
	assert.Equal(t, 128, config.Automaton.MaxStates)
	assert.Equal(t, "test", config.Tracing.ServiceName)
}

func TestLoadConfigInvalidLimit(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(URL, []byte("automaton:\n  maxStates: -5\n"), 0o644)
	require.NoError(t, err)

	_, err = LoadConfig(context.Background(), URL)
	assert.Error(t, err)
}

func TestNewAppliesOptions(t *testing.T) {
	a, err := New(WithMaxStates(3))
	require.NoError(t, err)
	assert.Equal(t, 3, a.States().Limit())
	assert.Equal(t, 1, a.States().Count())
}

func TestNewFromNilConfig(t *testing.T) {
	a, err := NewFromConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, graph.DefaultMaxStates, a.States().Limit())
}
