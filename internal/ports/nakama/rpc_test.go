package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lundao/internal/bench"
	"lundao/internal/config"
	"lundao/internal/domain"
	"lundao/internal/logging"
)

const completableState = `{
	"topics": [{"id": 0, "goals": [1]}],
	"hand": [{"topic": 0, "value": 3}, {"topic": 0, "value": 0}],
	"table": [{"topic": 0, "value": 0}],
	"turns_left": 2,
	"spaces": 2
}`

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	cfg := config.Default()
	cfg.MCTS.Iterations = 50
	h, err := newHandlers(cfg, logging.Nop)
	require.NoError(t, err)
	return h
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var rerr *runtime.Error
	require.True(t, errors.As(err, &rerr), "expected runtime.Error, got %v", err)
	assert.Equal(t, code, rerr.Code)
}

func TestStateFromPayload(t *testing.T) {
	state, err := stateFromPayload(json.RawMessage(completableState))
	require.NoError(t, err)
	assert.False(t, state.IsInvalid())
	assert.Len(t, state.Hand, 2)
	assert.Equal(t, 2, state.Spaces)
	// Original topics default to the current ones.
	assert.Len(t, state.OriginalTopics, 1)
}

func TestStateFromPayload_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Not JSON", "{"},
		{"Negative spaces", `{"topics":[{"id":0,"goals":[1]}],"spaces":-1}`},
		{"Too many goals", `{"topics":[{"id":0,"goals":[1,2,3]}],"spaces":1}`},
		{"No goals", `{"topics":[{"id":0,"goals":[]}],"spaces":1}`},
		{"Duplicate topic", `{"topics":[{"id":0,"goals":[1]},{"id":0,"goals":[2]}],"spaces":1}`},
		{"Negative card", `{"hand":[{"topic":0,"value":-1}],"spaces":1}`},
		{"Turns below -1", `{"turns_left":-2,"spaces":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := stateFromPayload(json.RawMessage(tt.raw))
			assert.Error(t, err)
			assert.True(t, state.IsInvalid())
		})
	}
}

func TestRpcDecide_RoundTrip(t *testing.T) {
	h := testHandlers(t)

	for _, strategy := range []string{"", "baseline", "improved_baseline", "greedy", "lookahead", "mcts"} {
		t.Run("strategy="+strategy, func(t *testing.T) {
			payload, _ := json.Marshal(DecideRequest{Strategy: strategy, State: json.RawMessage(completableState)})

			out, err := h.rpcDecide(context.Background(), logging.Nop, nil, nil, string(payload))
			require.NoError(t, err)

			var resp DecideResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.NotEmpty(t, resp.RequestID)
			if resp.Pass {
				return
			}
			require.NotNil(t, resp.Card)
			played := domain.Card{TopicID: resp.Card.Topic, Value: resp.Card.Value}
			assert.Contains(t, []domain.Card{{TopicID: 0, Value: 3}, {TopicID: 0, Value: 0}}, played)
		})
	}
}

func TestRpcDecide_DefaultStrategy(t *testing.T) {
	h := testHandlers(t)
	payload, _ := json.Marshal(DecideRequest{State: json.RawMessage(completableState)})

	out, err := h.rpcDecide(context.Background(), logging.Nop, nil, nil, string(payload))
	require.NoError(t, err)

	var resp DecideResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "lookahead", resp.Strategy)
}

func TestRpcDecide_Errors(t *testing.T) {
	h := testHandlers(t)

	_, err := h.rpcDecide(context.Background(), logging.Nop, nil, nil, "not json")
	requireCode(t, err, codeInvalidArgument)

	_, err = h.rpcDecide(context.Background(), logging.Nop, nil, nil, `{"strategy":"baseline","state":{"spaces":-3}}`)
	requireCode(t, err, codeInvalidArgument)

	payload, _ := json.Marshal(DecideRequest{Strategy: "oracle", State: json.RawMessage(completableState)})
	_, err = h.rpcDecide(context.Background(), logging.Nop, nil, nil, string(payload))
	requireCode(t, err, codeNotFound)
}

func TestRpcStrategies(t *testing.T) {
	h := testHandlers(t)

	out, err := h.rpcStrategies(context.Background(), logging.Nop, nil, nil, "")
	require.NoError(t, err)

	var resp StrategiesResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "lookahead", resp.Default)
	assert.Len(t, resp.Strategies, 5)
}

func TestRpcBenchmark(t *testing.T) {
	h := testHandlers(t)

	out, err := h.rpcBenchmark(context.Background(), logging.Nop, nil, nil, `{"strategy":"baseline","games":5,"sandbox":"plus"}`)
	require.NoError(t, err)

	var res bench.EvaluationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.GameCount)
	assert.Equal(t, "baseline", res.Strategy)

	_, err = h.rpcBenchmark(context.Background(), logging.Nop, nil, nil, `{"strategy":"baseline","games":0}`)
	requireCode(t, err, codeInvalidArgument)

	_, err = h.rpcBenchmark(context.Background(), logging.Nop, nil, nil, `{"strategy":"oracle","games":1}`)
	requireCode(t, err, codeNotFound)
}

func TestRpcBenchmark_IndependentOfDecideCalls(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()
	req := `{"strategy":"mcts","games":3}`

	run := func() bench.EvaluationResult {
		out, err := h.rpcBenchmark(ctx, logging.Nop, nil, nil, req)
		require.NoError(t, err)
		var res bench.EvaluationResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		return res
	}

	first := run()
	_, err := h.rpcDecide(ctx, logging.Nop, nil, nil, `{"strategy":"mcts","state":`+completableState+`}`)
	require.NoError(t, err)
	second := run()

	assert.Equal(t, first.Wins, second.Wins)
	assert.Equal(t, first.AveragePoints, second.AveragePoints)
	assert.Equal(t, first.AverageTurns, second.AverageTurns)
	assert.Equal(t, first.MinPoints, second.MinPoints)
	assert.Equal(t, first.MaxPoints, second.MaxPoints)
}
