package bot

import (
	botinternal "lundao/internal/bot/internal"
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// Lookahead searches a bounded number of own plays ahead and discounts the
// score of every further ply.
type Lookahead struct {
	Depth  int
	Tuning Tuning
}

// NewLookahead returns a lookahead strategy; depth <= 0 selects the default.
func NewLookahead(depth int) *Lookahead {
	if depth <= 0 {
		depth = DefaultTuning.LookaheadDepth
	}
	return &Lookahead{Depth: depth, Tuning: DefaultTuning}
}

func (l *Lookahead) Name() string { return "lookahead" }

func (l *Lookahead) Description() string {
	return "Depth-limited search over own plays with a 0.8 discount per ply."
}

type lookaheadKey struct {
	state string
	card  domain.Card
	depth int
}

type lookaheadSearch struct {
	sim      engine.Simulator
	weights  botinternal.ScoreWeights
	discount float64
	memo     map[lookaheadKey]float64
}

func (l *Lookahead) Decide(state domain.State, sim engine.Simulator) domain.Action {
	if botinternal.MustPass(state) {
		return domain.PassAction
	}

	tuning := l.Tuning
	if tuning.LookaheadDiscount == 0 {
		tuning = DefaultTuning
	}
	depth := l.Depth
	if depth <= 0 {
		depth = tuning.LookaheadDepth
	}

	search := &lookaheadSearch{
		sim:      sim,
		weights:  tuning.Weights,
		discount: tuning.LookaheadDiscount,
		memo:     make(map[lookaheadKey]float64),
	}

	// Zero is the floor: a play has to earn something to beat passing.
	best := domain.PassAction
	bestScore := 0.0
	for _, c := range botinternal.PlayableCards(state) {
		score := search.score(state, c, depth)
		if score <= bestScore {
			continue
		}
		bestScore = score
		best = domain.Play(c)
	}
	return best
}

func (s *lookaheadSearch) score(state domain.State, c domain.Card, depth int) float64 {
	if depth <= 0 || state.Spaces <= 0 {
		return 0
	}

	key := lookaheadKey{state: state.Key(), card: c, depth: depth}
	if v, ok := s.memo[key]; ok {
		return v
	}

	next, err := s.sim.Apply(state, domain.Play(c))
	if err != nil {
		s.memo[key] = 0
		return 0
	}
	score := botinternal.EvaluateTransition(state, next, s.weights)

	future := 0.0
	found := false
	for _, nc := range botinternal.PlayableCards(next) {
		if botinternal.WouldLoseExistingMaxGoal(nc, next) {
			continue
		}
		if v := s.score(next, nc, depth-1); !found || v > future {
			future = v
			found = true
		}
	}

	total := score + future*s.discount
	s.memo[key] = total
	return total
}
