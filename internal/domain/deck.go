package domain

// DeckLevels is the number of card values a topic deck spans.
const DeckLevels = 5

// DeckCopies is the number of copies of every value in a topic deck.
const DeckCopies = 3

// NewTopicDeck returns the cards a participant holds for one topic. Values
// above the participant's comprehension level are dealt as 0.
func NewTopicDeck(topicID, level int) []Card {
	deck := make([]Card, 0, DeckLevels*DeckCopies)
	for value := 1; value <= DeckLevels; value++ {
		v := value
		if level < value {
			v = 0
		}
		for copyIdx := 0; copyIdx < DeckCopies; copyIdx++ {
			deck = append(deck, Card{TopicID: topicID, Value: v})
		}
	}
	return deck
}

// GoalsForLevels derives a topic's goals from both participants' levels: equal
// levels give a single goal two above, otherwise one goal per participant.
func GoalsForLevels(playerLevel, npcLevel int) []int {
	if playerLevel == npcLevel {
		return []int{playerLevel + 2}
	}
	return []int{playerLevel + 1, npcLevel + 1}
}
