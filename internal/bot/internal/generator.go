package internal

import "lundao/internal/domain"

// LegalActions returns pass followed by every distinct card in hand, in hand
// order. Only pass is legal once the hand is empty or the table is full.
func LegalActions(state domain.State) []domain.Action {
	actions := []domain.Action{domain.PassAction}
	if len(state.Hand) == 0 || state.Spaces <= 0 {
		return actions
	}

	seen := make(map[domain.Card]bool, len(state.Hand))
	for _, c := range state.Hand {
		if seen[c] {
			continue
		}
		seen[c] = true
		actions = append(actions, domain.Play(c))
	}
	return actions
}

// PlayableCards returns the distinct cards of LegalActions without the pass.
func PlayableCards(state domain.State) []domain.Card {
	actions := LegalActions(state)
	cards := make([]domain.Card, 0, len(actions)-1)
	for _, a := range actions {
		if !a.Pass {
			cards = append(cards, a.Card)
		}
	}
	return cards
}

// MustPass reports whether a strategy has nothing to decide: the snapshot is
// unusable, the hand is empty or there is no table space.
func MustPass(state domain.State) bool {
	return state.IsInvalid() || len(state.Hand) == 0 || state.Spaces <= 0
}
