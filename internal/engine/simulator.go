package engine

import (
	"errors"
	"fmt"

	"lundao/internal/domain"
)

// ErrInvalidAction reports a play that breaks the hand or capacity rule.
var ErrInvalidAction = errors.New("invalid action")

// Simulator applies a single action to a state and returns the next state. It
// never handles turn changes; sandboxes do that.
type Simulator interface {
	Apply(state domain.State, action domain.Action) (domain.State, error)
}

// Vanilla implements the base game's play rules in memory.
type Vanilla struct{}

// NewVanilla returns the base-game rule engine.
func NewVanilla() *Vanilla {
	return &Vanilla{}
}

// Apply plays action on state. A pass returns state unchanged. A play moves the
// card to the table, merges the table, and drops the topics it satisfies.
func (v *Vanilla) Apply(state domain.State, action domain.Action) (domain.State, error) {
	if action.Pass {
		return state, nil
	}

	card := action.Card
	hand, ok := domain.RemoveCard(state.Hand, card)
	if !ok {
		return domain.Invalid, fmt.Errorf("%w: card %v not in hand", ErrInvalidAction, card)
	}
	if state.Spaces <= 0 {
		return domain.Invalid, fmt.Errorf("%w: no table space for %v", ErrInvalidAction, card)
	}

	table := make([]domain.Card, 0, len(state.Table)+1)
	table = append(table, state.Table...)
	table = append(table, card)
	table = domain.MergeTable(table)

	topics := domain.ResolveTopics(state.Topics, table)

	spaces := state.Spaces - (len(table) - len(state.Table))
	return domain.NewState(topics, hand, table, state.TurnsLeft, spaces, state.OriginalTopics), nil
}

// MustApply is Apply for callers that only ever pass legal actions. It panics
// on ErrInvalidAction, which is a caller bug.
func MustApply(sim Simulator, state domain.State, action domain.Action) domain.State {
	next, err := sim.Apply(state, action)
	if err != nil {
		panic(err)
	}
	return next
}
