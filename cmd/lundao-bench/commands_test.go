package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lundao/internal/bench"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvaluateCommand_JSON(t *testing.T) {
	out, err := execute(t, "evaluate", "--games", "3", "--sandbox", "plus", "--strategy", "baseline,greedy", "--json")
	require.NoError(t, err)

	var results []bench.EvaluationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "baseline", results[0].Strategy)
	assert.Equal(t, "greedy", results[1].Strategy)
	assert.Equal(t, 3, results[0].GameCount)
}

func TestEvaluateCommand_UnknownStrategy(t *testing.T) {
	_, err := execute(t, "evaluate", "--games", "1", "--strategy", "oracle", "--json=false")
	assert.Error(t, err)
}

func TestCompareCommand_Text(t *testing.T) {
	out, err := execute(t, "compare", "--a", "baseline", "--b", "baseline", "--games", "5", "--max-diffs", "2", "--sandbox", "vanilla", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "baseline vs baseline")
	assert.Contains(t, out, "0 differing games in 5 played")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  games: 2\n  sandbox: plus\n"), 0o600))

	out, err := execute(t, "--config", path, "evaluate", "--games", "0", "--sandbox", "", "--strategy", "baseline", "--json")
	require.NoError(t, err)

	var results []bench.EvaluationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].GameCount)
	assert.Equal(t, "plus", string(results[0].Sandbox))

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "evaluate", "--games", "1")
	assert.Error(t, err)
	configPath = ""
}
