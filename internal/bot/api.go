package bot

import (
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// Strategy is the interface that all decision strategies must implement.
// Decide returns domain.PassAction to pass. It never fails: the simulator is
// only used to probe hypothetical plays, never to change the given state.
type Strategy interface {
	Name() string
	Description() string
	Decide(state domain.State, sim engine.Simulator) domain.Action
}

// Kind identifies a strategy implementation.
type Kind string

const (
	KindBaseline         Kind = "baseline"
	KindImprovedBaseline Kind = "improved_baseline"
	KindGreedy           Kind = "greedy"
	KindLookahead        Kind = "lookahead"
	KindMCTS             Kind = "mcts"
)

// Kinds lists every strategy kind in registration order.
var Kinds = []Kind{KindBaseline, KindImprovedBaseline, KindGreedy, KindLookahead, KindMCTS}
