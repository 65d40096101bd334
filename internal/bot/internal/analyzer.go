package internal

import "lundao/internal/domain"

// WouldLoseExistingMaxGoal reports whether playing c merges away a card that
// already matches its topic's highest goal. Topics whose top goal is not on
// the table yet are never flagged.
func WouldLoseExistingMaxGoal(c domain.Card, state domain.State) bool {
	topic, ok := state.TopicByID(c.TopicID)
	if !ok || len(topic.Goals) == 0 {
		return false
	}

	maxGoal := topic.MaxGoal()
	table := domain.CardsOfTopic(state.Table, c.TopicID)
	if !domain.HasGoalOnTable(table, c.TopicID, maxGoal) {
		return false
	}

	merged := domain.MergeTable(append(table, c))
	return !domain.HasGoalOnTable(merged, c.TopicID, maxGoal)
}

// BanksMerge reports whether c belongs to a topic that is no longer active and
// would merge with an equal card already on the table.
func BanksMerge(c domain.Card, state domain.State) bool {
	return !state.HasTopic(c.TopicID) && domain.ContainsCard(state.Table, c)
}
