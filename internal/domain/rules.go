package domain

import "sort"

// MergeTable combines equal table cards until none remain: every pair of
// (topic, value) cards becomes one card of value+1, and a freshly formed pair
// carries into the next value. Keys are processed in ascending value order on
// each pass, and the result is sorted by (topic, value), so the output does not
// depend on the input order.
func MergeTable(table []Card) []Card {
	if len(table) == 0 {
		return []Card{}
	}

	counts := CountCards(table)

	for changed := true; changed; {
		changed = false
		for _, card := range sortedKeys(counts) {
			count := counts[card]
			if count < 2 {
				continue
			}
			pairs := count / 2
			counts[card] = count - pairs*2
			counts[Card{TopicID: card.TopicID, Value: card.Value + 1}] += pairs
			changed = true
		}
	}

	merged := make([]Card, 0, len(counts))
	for card, n := range counts {
		for i := 0; i < n; i++ {
			merged = append(merged, card)
		}
	}
	SortCards(merged)
	return merged
}

// sortedKeys orders keys by value first so merges propagate low to high.
func sortedKeys(counts map[Card]int) []Card {
	keys := make([]Card, 0, len(counts))
	for card := range counts {
		keys = append(keys, card)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Value != keys[j].Value {
			return keys[i].Value < keys[j].Value
		}
		return keys[i].TopicID < keys[j].TopicID
	})
	return keys
}

// HasGoalOnTable reports whether the table holds the exact card (topicID, goal).
func HasGoalOnTable(table []Card, topicID, goal int) bool {
	return ContainsCard(table, Card{TopicID: topicID, Value: goal})
}

// IsTopicSatisfied reports whether every goal of the topic is on the table at
// once. Equal goal values each need their own card.
func IsTopicSatisfied(table []Card, topic Topic) bool {
	if len(topic.Goals) == 0 {
		return true
	}
	counts := CountCards(CardsOfTopic(table, topic.ID))
	for _, goal := range topic.Goals {
		key := Card{TopicID: topic.ID, Value: goal}
		if counts[key] == 0 {
			return false
		}
		counts[key]--
	}
	return true
}

// ResolveTopics returns the topics not satisfied by table. The table itself is
// left alone: goal cards stay where they are. When nothing was satisfied the
// input slice is returned as is.
func ResolveTopics(topics []Topic, table []Card) []Topic {
	var remaining []Topic
	for i, topic := range topics {
		if !IsTopicSatisfied(table, topic) {
			if remaining != nil {
				remaining = append(remaining, topic)
			}
			continue
		}
		if remaining == nil {
			remaining = append(make([]Topic, 0, len(topics)), topics[:i]...)
		}
	}
	if remaining == nil {
		return topics
	}
	return remaining
}
