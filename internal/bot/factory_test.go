package bot

import (
	"errors"
	"testing"

	"lundao/internal/domain"
	"lundao/internal/engine"
)

func TestNewStrategy(t *testing.T) {
	for _, kind := range Kinds {
		s, err := NewStrategy(kind, Options{})
		if err != nil {
			t.Fatalf("NewStrategy(%s) failed: %v", kind, err)
		}
		if s.Name() != string(kind) {
			t.Errorf("NewStrategy(%s).Name() = %s", kind, s.Name())
		}
		if s.Description() == "" {
			t.Errorf("%s has no description", kind)
		}
	}

	if _, err := NewStrategy("oracle", Options{}); err == nil {
		t.Error("Expected an error for an unknown kind")
	}
}

func TestNewStrategy_AppliesOptions(t *testing.T) {
	s, _ := NewStrategy(KindLookahead, Options{LookaheadDepth: 2})
	if d := s.(*Lookahead).Depth; d != 2 {
		t.Errorf("Lookahead depth = %d, want 2", d)
	}

	s, _ = NewStrategy(KindMCTS, Options{MCTSIterations: 10, MCTSExploration: 2, MCTSRolloutDepth: 4, Seed: 5})
	m := s.(*MCTS)
	if m.Iterations != 10 || m.Exploration != 2 || m.RolloutDepth != 4 || m.Source().Seed() != 5 {
		t.Errorf("MCTS options not applied: %+v seed=%d", m, m.Source().Seed())
	}
}

type panicky struct{}

func (panicky) Name() string        { return "panicky" }
func (panicky) Description() string { return "" }
func (panicky) Decide(domain.State, engine.Simulator) domain.Action {
	panic(errors.New("boom"))
}

func TestAgent_Play(t *testing.T) {
	state := domain.NewState([]domain.Topic{topic(0, 1)}, []domain.Card{card(0, 0)}, []domain.Card{card(0, 0)}, 1, 2, nil)

	a, err := NewAgent(&Baseline{}).Play(state)
	if err != nil || a != domain.Play(card(0, 0)) {
		t.Errorf("Play = %v, %v", a, err)
	}

	a, err = NewAgent(panicky{}).Play(domain.Invalid)
	if err != nil || !a.Pass {
		t.Errorf("Invalid snapshot should pass without consulting the strategy, got %v, %v", a, err)
	}

	a, err = NewAgent(panicky{}).Play(state)
	if err == nil || !a.Pass {
		t.Errorf("Expected a pass and an error from a panicking strategy, got %v, %v", a, err)
	}
}
