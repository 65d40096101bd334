package domain

import "sort"

// Action is a decision: pass, or play one card from hand.
type Action struct {
	Pass bool
	Card Card
}

// PassAction is the "do nothing this turn" decision.
var PassAction = Action{Pass: true}

// Play returns the action playing card c.
func Play(c Card) Action {
	return Action{Card: c}
}

func (a Action) String() string {
	if a.Pass {
		return "pass"
	}
	return "play " + a.Card.String()
}

// ContainsCard reports whether cards holds at least one card equal to c.
func ContainsCard(cards []Card, c Card) bool {
	for _, card := range cards {
		if card == c {
			return true
		}
	}
	return false
}

// RemoveCard returns a copy of hand without the first card equal to c, and
// whether such a card was found.
func RemoveCard(hand []Card, c Card) ([]Card, bool) {
	for i, card := range hand {
		if card != c {
			continue
		}
		out := make([]Card, 0, len(hand)-1)
		out = append(out, hand[:i]...)
		return append(out, hand[i+1:]...), true
	}
	return hand, false
}

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// CountCards groups cards by value.
func CountCards(cards []Card) map[Card]int {
	counts := make(map[Card]int, len(cards))
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

// SameCards reports whether a and b hold the same multiset of cards.
func SameCards(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	counts := CountCards(a)
	for _, c := range b {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// SortedCards returns a copy of cards ordered by topic id, then value.
func SortedCards(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	SortCards(out)
	return out
}

// SortCards orders cards in place by topic id, then value.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].TopicID != cards[j].TopicID {
			return cards[i].TopicID < cards[j].TopicID
		}
		return cards[i].Value < cards[j].Value
	})
}

// CardsOfTopic returns the cards belonging to the given topic.
func CardsOfTopic(cards []Card, topicID int) []Card {
	var out []Card
	for _, c := range cards {
		if c.TopicID == topicID {
			out = append(out, c)
		}
	}
	return out
}
