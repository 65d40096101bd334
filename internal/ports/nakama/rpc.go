package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"lundao/internal/bench"
	"lundao/internal/bot"
	"lundao/internal/decision"
	"lundao/internal/sandbox"
)

type rpcFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// handlers holds what the RPCs share.
type handlers struct {
	service         *decision.Service
	defaultStrategy string
	options         bot.Options
}

// DecideRequest is the lundao_decide payload. An empty strategy selects the
// configured default.
type DecideRequest struct {
	Strategy string          `json:"strategy"`
	State    json.RawMessage `json:"state"`
}

type DecideResponse struct {
	RequestID string       `json:"request_id"`
	Strategy  string       `json:"strategy"`
	Pass      bool         `json:"pass"`
	Card      *cardPayload `json:"card,omitempty"`
}

type StrategiesResponse struct {
	Default    string          `json:"default"`
	Strategies []decision.Info `json:"strategies"`
}

type BenchmarkRequest struct {
	Strategy string `json:"strategy" validate:"required"`
	Games    int    `json:"games" validate:"min=1,max=10000"`
	Sandbox  string `json:"sandbox" validate:"omitempty,oneof=vanilla plus"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, h *handlers) error {
	rpcs := map[string]rpcFunc{
		RpcDecide:     h.rpcDecide,
		RpcStrategies: h.rpcStrategies,
		RpcBenchmark:  h.rpcBenchmark,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

func (h *handlers) rpcDecide(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	requestID := uuid.NewString()
	logger = logger.WithField("request_id", requestID)

	var req DecideRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	state, err := stateFromPayload(req.State)
	if err != nil {
		logger.Warn("rpcDecide: rejected state: %v", err)
		return "", runtime.NewError("Invalid state", codeInvalidArgument)
	}

	name := req.Strategy
	if name == "" {
		if name, err = h.service.Registry().Resolve(h.defaultStrategy); err != nil {
			return "", runtime.NewError("No strategies registered", codeInternal)
		}
	}

	action, err := h.service.Decide(ctx, name, state)
	switch {
	case errors.Is(err, decision.ErrUnknownStrategy):
		return "", runtime.NewError("Unknown strategy", codeNotFound)
	case err != nil:
		logger.Error("rpcDecide: %s failed: %v", name, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	resp := DecideResponse{RequestID: requestID, Strategy: name, Pass: action.Pass}
	if !action.Pass {
		resp.Card = cardToPayload(action.Card)
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

func (h *handlers) rpcStrategies(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	resp := StrategiesResponse{
		Default:    h.defaultStrategy,
		Strategies: h.service.Registry().List(),
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

func (h *handlers) rpcBenchmark(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req BenchmarkRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if err := validate.Struct(req); err != nil {
		return "", runtime.NewError("Invalid benchmark request", codeInvalidArgument)
	}
	kind := sandbox.KindVanilla
	if req.Sandbox != "" {
		kind = sandbox.Kind(req.Sandbox)
	}

	// A fresh instance per run: registered strategies are shared with
	// rpcDecide, and MCTS draws from its own seeded source.
	strategy, err := bot.NewStrategy(bot.Kind(req.Strategy), h.options)
	if err != nil {
		return "", runtime.NewError("Unknown strategy", codeNotFound)
	}

	res, err := bench.NewEvaluator(kind, logger).Evaluate(ctx, strategy, req.Games)
	if err != nil {
		logger.Error("rpcBenchmark: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	b, _ := json.Marshal(res)
	return string(b), nil
}
