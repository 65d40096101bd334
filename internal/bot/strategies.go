package bot

import (
	botinternal "lundao/internal/bot/internal"
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// Baseline mirrors how the game's own NPCs play. It is the yardstick the other
// strategies are measured against and the opponent used in sandbox rollouts.
type Baseline struct{}

func (b *Baseline) Name() string { return "baseline" }

func (b *Baseline) Description() string {
	return "Plays like the game's NPCs: finish a topic when possible, otherwise the highest useful card."
}

func (b *Baseline) Decide(state domain.State, sim engine.Simulator) domain.Action {
	if botinternal.MustPass(state) {
		return domain.PassAction
	}

	actions := botinternal.LegalActions(state)

	// 1. A card that finishes a topic right away.
	if a, ok := completingAction(state, sim, actions); ok {
		return a
	}

	// 2. The highest card that still helps an open topic.
	candidates := topicCandidates(state, actions)
	if len(candidates) == 0 {
		return domain.PassAction
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Value > best.Value {
			best = c
		}
	}
	return domain.Play(best)
}

// completingAction returns the first action whose simulation closes a topic.
func completingAction(state domain.State, sim engine.Simulator, actions []domain.Action) (domain.Action, bool) {
	for _, a := range actions {
		if a.Pass {
			continue
		}
		next, err := sim.Apply(state, a)
		if err != nil {
			continue
		}
		if len(next.Topics) < len(state.Topics) {
			return a, true
		}
	}
	return domain.PassAction, false
}

// topicCandidates picks, for every open topic in order, its highest playable
// card that does not overshoot the topic's top goal.
func topicCandidates(state domain.State, actions []domain.Action) []domain.Card {
	var candidates []domain.Card
	for _, topic := range state.Topics {
		maxGoal := topic.MaxGoal()
		found := false
		var best domain.Card
		for _, a := range actions {
			if a.Pass || a.Card.TopicID != topic.ID || a.Card.Value > maxGoal {
				continue
			}
			if !found || a.Card.Value > best.Value {
				best = a.Card
				found = true
			}
		}
		if found {
			candidates = append(candidates, best)
		}
	}
	return candidates
}
