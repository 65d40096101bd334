package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "lookahead", c.Strategy)
	assert.Equal(t, 5, c.Lookahead.Depth)
	assert.Equal(t, 1000, c.MCTS.Iterations)
	assert.InDelta(t, 1.41, c.MCTS.Exploration, 1e-9)
	assert.Equal(t, 20, c.MCTS.RolloutDepth)
}

func TestParse_OverridesDefaults(t *testing.T) {
	c, err := Parse([]byte("strategy: mcts\nmcts:\n  iterations: 50\n  seed: 9\n"))
	require.NoError(t, err)

	assert.Equal(t, "mcts", c.Strategy)
	assert.Equal(t, 50, c.MCTS.Iterations)
	assert.Equal(t, 20, c.MCTS.RolloutDepth)

	opts := c.StrategyOptions()
	assert.Equal(t, 50, opts.MCTSIterations)
	assert.Equal(t, int64(9), opts.Seed)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Unknown strategy", "strategy: oracle\n"},
		{"Zero iterations", "mcts:\n  iterations: 0\n"},
		{"Bad sandbox", "bench:\n  sandbox: chess\n"},
		{"Malformed", "strategy: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("lookahead:\n  depth: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lundao.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: greedy\nlog_level: debug\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "greedy", c.Strategy)
	assert.Equal(t, "debug", c.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
