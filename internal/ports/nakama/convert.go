package nakama

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"lundao/internal/domain"
)

var errDuplicateTopic = errors.New("duplicate topic id")

var validate = validator.New()

type cardPayload struct {
	Topic int `json:"topic" validate:"min=0"`
	Value int `json:"value" validate:"min=0,max=30"`
}

type topicPayload struct {
	ID    int   `json:"id" validate:"min=0"`
	Goals []int `json:"goals" validate:"min=1,max=2,dive,min=0,max=30"`
}

type statePayload struct {
	Topics         []topicPayload `json:"topics" validate:"dive"`
	Hand           []cardPayload  `json:"hand" validate:"dive"`
	Table          []cardPayload  `json:"table" validate:"dive"`
	TurnsLeft      int            `json:"turns_left" validate:"min=-1"`
	Spaces         int            `json:"spaces" validate:"min=0"`
	OriginalTopics []topicPayload `json:"original_topics,omitempty" validate:"dive"`
}

// stateFromPayload decodes and checks a posted snapshot. Anything malformed
// yields domain.Invalid next to the reason.
func stateFromPayload(raw json.RawMessage) (domain.State, error) {
	if len(raw) == 0 {
		return domain.Invalid, errors.New("missing state")
	}

	var p statePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Invalid, fmt.Errorf("decode state: %w", err)
	}
	if err := validate.Struct(p); err != nil {
		return domain.Invalid, fmt.Errorf("validate state: %w", err)
	}

	topics, err := topicsFromPayload(p.Topics)
	if err != nil {
		return domain.Invalid, err
	}
	var original []domain.Topic
	if len(p.OriginalTopics) > 0 {
		if original, err = topicsFromPayload(p.OriginalTopics); err != nil {
			return domain.Invalid, err
		}
	}

	return domain.NewState(topics, cardsFromPayload(p.Hand), cardsFromPayload(p.Table), p.TurnsLeft, p.Spaces, original), nil
}

func topicsFromPayload(in []topicPayload) ([]domain.Topic, error) {
	seen := make(map[int]bool, len(in))
	out := make([]domain.Topic, 0, len(in))
	for _, t := range in {
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: %d", errDuplicateTopic, t.ID)
		}
		seen[t.ID] = true
		out = append(out, domain.Topic{ID: t.ID, Goals: append([]int(nil), t.Goals...)})
	}
	return out, nil
}

func cardsFromPayload(in []cardPayload) []domain.Card {
	out := make([]domain.Card, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Card{TopicID: c.Topic, Value: c.Value})
	}
	return out
}

func cardToPayload(c domain.Card) *cardPayload {
	return &cardPayload{Topic: c.TopicID, Value: c.Value}
}
