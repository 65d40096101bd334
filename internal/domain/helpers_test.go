package domain

import "testing"

func TestRemoveCard(t *testing.T) {
	hand := []Card{{TopicID: 0, Value: 1}, {TopicID: 1, Value: 2}, {TopicID: 0, Value: 1}}

	out, ok := RemoveCard(hand, Card{TopicID: 0, Value: 1})
	if !ok {
		t.Fatal("expected card to be found")
	}
	want := []Card{{TopicID: 1, Value: 2}, {TopicID: 0, Value: 1}}
	if len(out) != len(want) || out[0] != want[0] || out[1] != want[1] {
		t.Fatalf("RemoveCard() = %v, want %v", out, want)
	}
	if len(hand) != 3 || hand[0] != (Card{TopicID: 0, Value: 1}) {
		t.Fatal("RemoveCard modified its input")
	}

	if _, ok := RemoveCard(hand, Card{TopicID: 5, Value: 5}); ok {
		t.Fatal("expected missing card to be reported")
	}
}

func TestRemoveCards(t *testing.T) {
	hand := []Card{{TopicID: 0, Value: 1}, {TopicID: 0, Value: 1}, {TopicID: 0, Value: 2}}
	out := RemoveCards(hand, []Card{{TopicID: 0, Value: 1}})
	if !SameCards(out, []Card{{TopicID: 0, Value: 1}, {TopicID: 0, Value: 2}}) {
		t.Fatalf("RemoveCards() = %v", out)
	}
}

func TestSameCards(t *testing.T) {
	a := []Card{{TopicID: 0, Value: 1}, {TopicID: 0, Value: 1}, {TopicID: 1, Value: 0}}
	b := []Card{{TopicID: 1, Value: 0}, {TopicID: 0, Value: 1}, {TopicID: 0, Value: 1}}
	c := []Card{{TopicID: 1, Value: 0}, {TopicID: 1, Value: 0}, {TopicID: 0, Value: 1}}

	if !SameCards(a, b) {
		t.Error("expected permutations to match")
	}
	if SameCards(a, c) {
		t.Error("expected different multiplicities to differ")
	}
}

func TestNewTopicDeck(t *testing.T) {
	deck := NewTopicDeck(2, 3)
	if len(deck) != DeckLevels*DeckCopies {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckLevels*DeckCopies)
	}
	counts := CountCards(deck)
	for v := 1; v <= 3; v++ {
		if counts[Card{TopicID: 2, Value: v}] != DeckCopies {
			t.Errorf("value %d copies = %d, want %d", v, counts[Card{TopicID: 2, Value: v}], DeckCopies)
		}
	}
	if counts[Card{TopicID: 2, Value: 0}] != 2*DeckCopies {
		t.Errorf("zero-value copies = %d, want %d", counts[Card{TopicID: 2, Value: 0}], 2*DeckCopies)
	}
}

func TestGoalsForLevels(t *testing.T) {
	if g := GoalsForLevels(3, 3); len(g) != 1 || g[0] != 5 {
		t.Errorf("GoalsForLevels(3,3) = %v, want [5]", g)
	}
	if g := GoalsForLevels(2, 4); len(g) != 2 || g[0] != 3 || g[1] != 5 {
		t.Errorf("GoalsForLevels(2,4) = %v, want [3 5]", g)
	}
}
