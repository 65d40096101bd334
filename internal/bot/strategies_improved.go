package bot

import (
	botinternal "lundao/internal/bot/internal"
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// ImprovedBaseline follows the NPC rules but banks last-turn merges and breaks
// ties between equally high candidates with a short lookahead.
type ImprovedBaseline struct {
	Tuning Tuning
}

func (b *ImprovedBaseline) Name() string { return "improved_baseline" }

func (b *ImprovedBaseline) Description() string {
	return "NPC rules plus banked merges on the final turn and a depth-3 tie-break."
}

func (b *ImprovedBaseline) Decide(state domain.State, sim engine.Simulator) domain.Action {
	if botinternal.MustPass(state) {
		return domain.PassAction
	}

	actions := botinternal.LegalActions(state)

	// 1. Final turn: merge into cards of topics that are already done.
	if state.TurnsLeft == 0 {
		found := false
		var best domain.Card
		for _, c := range botinternal.PlayableCards(state) {
			if !botinternal.BanksMerge(c, state) {
				continue
			}
			if !found || c.Value > best.Value {
				best = c
				found = true
			}
		}
		if found {
			return domain.Play(best)
		}
	}

	// 2. Finish a topic right away.
	if a, ok := completingAction(state, sim, actions); ok {
		return a
	}

	// 3. Baseline candidates, ties at the top broken by lookahead.
	candidates := topicCandidates(state, actions)
	switch len(candidates) {
	case 0:
		return domain.PassAction
	case 1:
		return domain.Play(candidates[0])
	}

	maxValue := candidates[0].Value
	for _, c := range candidates[1:] {
		if c.Value > maxValue {
			maxValue = c.Value
		}
	}
	var top []domain.Card
	for _, c := range candidates {
		if c.Value == maxValue {
			top = append(top, c)
		}
	}
	if len(top) == 1 {
		return domain.Play(top[0])
	}

	tuning := b.tuning()
	best := top[0]
	bestScore := b.evaluateFuture(state, sim, domain.Play(best), tuning.TieBreakDepth, tuning)
	for _, c := range top[1:] {
		if score := b.evaluateFuture(state, sim, domain.Play(c), tuning.TieBreakDepth, tuning); score > bestScore {
			best, bestScore = c, score
		}
	}
	return domain.Play(best)
}

func (b *ImprovedBaseline) tuning() Tuning {
	if b.Tuning.TieBreakDepth == 0 {
		return DefaultTuning
	}
	return b.Tuning
}

// evaluateFuture scores a play by the topics it completes, or else by the best
// follow-up play, discounted per ply.
func (b *ImprovedBaseline) evaluateFuture(state domain.State, sim engine.Simulator, action domain.Action, depth int, tuning Tuning) float64 {
	if depth <= 0 || action.Pass {
		return 0
	}

	next, err := sim.Apply(state, action)
	if err != nil {
		return 0
	}
	if completed := len(state.Topics) - len(next.Topics); completed > 0 {
		return tuning.TieBreakTopicScore * float64(completed)
	}

	best := 0.0
	for _, a := range botinternal.LegalActions(next) {
		if score := b.evaluateFuture(next, sim, a, depth-1, tuning); score > best {
			best = score
		}
	}
	return best * tuning.TieBreakDiscount
}
