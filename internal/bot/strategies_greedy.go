package bot

import (
	botinternal "lundao/internal/bot/internal"
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// Greedy plays the card with the best immediate score.
type Greedy struct {
	Tuning Tuning
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) Description() string {
	return "Plays the card that maximises the immediate merge, completion and progress score."
}

func (g *Greedy) Decide(state domain.State, sim engine.Simulator) domain.Action {
	if botinternal.MustPass(state) {
		return domain.PassAction
	}

	weights := g.Tuning.Weights
	if weights == (botinternal.ScoreWeights{}) {
		weights = DefaultTuning.Weights
	}

	best := domain.PassAction
	bestScore := 0.0
	for _, c := range botinternal.PlayableCards(state) {
		if botinternal.WouldLoseExistingMaxGoal(c, state) {
			continue
		}

		next, err := sim.Apply(state, domain.Play(c))
		if err != nil {
			continue
		}

		score := botinternal.EvaluateTransition(state, next, weights)
		if score <= bestScore {
			continue
		}
		bestScore = score
		best = domain.Play(c)
	}

	return best
}
