package internal

import (
	"math"

	"lundao/internal/domain"
)

// ScoreWeights tune how a single play is valued.
type ScoreWeights struct {
	MergeReward      float64
	TopicReward      float64
	ProgressReward   float64
	PartialProgress  float64
	CompletionReward float64
}

// DefaultWeights favour merges first, then completed topics, then progress.
var DefaultWeights = ScoreWeights{
	MergeReward:      1000.0,
	TopicReward:      200.0,
	ProgressReward:   200.0,
	PartialProgress:  0.5,
	CompletionReward: 1.0,
}

// EvaluateTransition scores the step from before to after.
func EvaluateTransition(before, after domain.State, w ScoreWeights) float64 {
	score := 0.0

	// Spaces did not shrink, so the play merged.
	if before.Spaces <= after.Spaces {
		score += float64(after.Spaces-before.Spaces+1) * w.MergeReward
	}

	if completed := len(before.Topics) - len(after.Topics); completed > 0 {
		score += float64(completed) * w.TopicReward
	}

	// Only topics still open afterwards count toward progress.
	progress := 0.0
	for _, topic := range after.Topics {
		progress += Progress(topic, after.Table) - Progress(topic, before.Table)
	}
	score += progress * w.ProgressReward

	return score
}

// Progress expresses a topic's table cards against its goals in units of
// value-0 cards: Σ2^value over Σ2^goal.
func Progress(topic domain.Topic, table []domain.Card) float64 {
	if len(topic.Goals) == 0 {
		return 1.0
	}

	current := 0.0
	for _, c := range table {
		if c.TopicID == topic.ID {
			current += math.Pow(2, float64(c.Value))
		}
	}
	goal := 0.0
	for _, g := range topic.Goals {
		goal += math.Pow(2, float64(g))
	}
	return current / goal
}

// EvaluateOutcome scores a rollout's final state against the topics that were
// active when the decision started, in [0, 1].
func EvaluateOutcome(state domain.State, control []domain.Topic, w ScoreWeights) float64 {
	if len(control) == 0 {
		return 0
	}

	score := 0.0
	for _, topic := range control {
		if !state.HasTopic(topic.ID) {
			score += w.CompletionReward
			continue
		}
		score += w.PartialProgress * math.Min(1.0, Progress(topic, state.Table))
	}
	return score / float64(len(control))
}
