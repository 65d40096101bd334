package decision

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/heroiclabs/nakama-common/runtime"

	"lundao/internal/domain"
)

// Engine runs the decision loop for one bridge: check the turn, snapshot,
// decide, confirm.
type Engine struct {
	bridge  Bridge
	service *Service
	logger  runtime.Logger

	enabled  atomic.Bool
	mu       sync.Mutex
	strategy string
}

func NewEngine(bridge Bridge, service *Service, strategy string, enabled bool, logger runtime.Logger) *Engine {
	e := &Engine{
		bridge:   bridge,
		service:  service,
		logger:   logger.WithField("bridge", bridge.Name()),
		strategy: strategy,
	}
	e.enabled.Store(enabled)
	e.logger.Info("Decision engine initialized, strategy: %s", strategy)
	return e
}

func (e *Engine) SetEnabled(v bool) { e.enabled.Store(v) }

func (e *Engine) Enabled() bool { return e.enabled.Load() }

// SetStrategy changes the preferred strategy. Unknown names fall back to the
// first registered strategy when the loop runs.
func (e *Engine) SetStrategy(name string) {
	e.mu.Lock()
	e.strategy = name
	e.mu.Unlock()
}

func (e *Engine) Strategy() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.strategy
}

// Execute runs one pass of the loop.
func (e *Engine) Execute(ctx context.Context) (Event, error) {
	if !e.Enabled() {
		return Event{Kind: EventDisabled}, nil
	}

	isTurn, err := e.bridge.IsPlayerTurn(ctx)
	if err != nil {
		e.logger.Error("Execute: failed to determine player turn: %v", err)
		return Event{}, fmt.Errorf("player turn: %w", err)
	}
	if !isTurn {
		return Event{Kind: EventNotPlayerTurn}, nil
	}

	state, err := e.bridge.BuildStateSnapshot(ctx)
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		e.logger.Warn("Execute: game state unavailable: %v", err)
		return Event{Kind: EventInvalidSnapshot}, nil
	case err != nil:
		e.logger.Error("Execute: failed to read game state: %v", err)
		return Event{}, fmt.Errorf("snapshot: %w", err)
	case state.IsInvalid():
		// Usually the game skipped the turn while the snapshot was taken.
		return Event{Kind: EventInvalidSnapshot}, nil
	}

	name, err := e.service.Registry().Resolve(e.Strategy())
	if err != nil {
		e.logger.Error("Execute: cannot select a strategy (configured %q): %v", e.Strategy(), err)
		return Event{}, err
	}

	action, err := e.service.Decide(ctx, name, state)
	if err != nil {
		return Event{Strategy: name}, err
	}

	ev := Event{Strategy: name, Action: action}
	if action.Pass {
		ev.Kind = EventNoBestCard
		ev.Acted, err = e.bridge.ConfirmNoBestCard(ctx)
	} else {
		ev.Kind = EventCardConfirmed
		ev.Acted, err = e.bridge.ConfirmBestCard(ctx, action.Card)
	}
	if err != nil {
		e.logger.Error("Execute: bridge rejected %s: %v", action, err)
		return ev, fmt.Errorf("confirm %s: %w", action, err)
	}
	return ev, nil
}
