package bot

import (
	"fmt"

	"lundao/internal/domain"
	"lundao/internal/engine"
)

// Agent pairs a strategy with the simulator it probes moves with.
type Agent struct {
	Strategy  Strategy
	Simulator engine.Simulator
}

// NewAgent returns an agent backed by the vanilla simulator.
func NewAgent(s Strategy) *Agent {
	return &Agent{Strategy: s, Simulator: engine.NewVanilla()}
}

// Play asks the strategy for its move. Invalid snapshots pass without
// consulting the strategy, and a strategy panic is reported as an error with a
// pass so one bad decision cannot take the caller down.
func (a *Agent) Play(state domain.State) (action domain.Action, err error) {
	if state.IsInvalid() {
		return domain.PassAction, nil
	}

	defer func() {
		if r := recover(); r != nil {
			action = domain.PassAction
			err = fmt.Errorf("strategy %s panicked: %v", a.Strategy.Name(), r)
		}
	}()

	return a.Strategy.Decide(state, a.Simulator), nil
}
