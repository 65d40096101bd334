package decision

import (
	"context"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"lundao/internal/bot"
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// Service runs registered strategies against snapshots.
type Service struct {
	registry *Registry
	sim      engine.Simulator
	metrics  *Metrics
	logger   runtime.Logger
}

// NewService wires a registry to the vanilla simulator. A nil metrics set gets
// a private one.
func NewService(registry *Registry, metrics *Metrics, logger runtime.Logger) *Service {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Service{
		registry: registry,
		sim:      engine.NewVanilla(),
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *Service) Registry() *Registry {
	return s.registry
}

// Decide asks the named strategy for its move. Invalid snapshots pass without
// reaching the strategy.
func (s *Service) Decide(ctx context.Context, name string, state domain.State) (domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return domain.PassAction, err
	}

	e, err := s.registry.lookup(name)
	if err != nil {
		return domain.PassAction, err
	}

	if state.IsInvalid() {
		s.metrics.invalidSnapshots.Inc()
		s.logger.Debug("Decide: invalid snapshot, passing without consulting %s", name)
		return domain.PassAction, nil
	}

	e.mu.Lock()
	start := time.Now()
	action, err := (&bot.Agent{Strategy: e.strategy, Simulator: s.sim}).Play(state)
	elapsed := time.Since(start)
	e.mu.Unlock()

	s.metrics.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		s.metrics.decisions.WithLabelValues(name, OutcomeError).Inc()
		s.logger.WithField("strategy", name).Error("Decide: %v", err)
		return domain.PassAction, err
	}

	outcome := OutcomePlay
	if action.Pass {
		outcome = OutcomePass
	}
	s.metrics.decisions.WithLabelValues(name, outcome).Inc()
	s.logger.WithField("strategy", name).Debug("Decide: %s in %s", action, elapsed)
	return action, nil
}
