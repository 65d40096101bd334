package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUpstreamUnavailable is returned next to Invalid by any state source that
// could not read a usable position.
var ErrUpstreamUnavailable = errors.New("state source unavailable")

// Card is a single card: a topic id and a value. Cards compare by value.
type Card struct {
	TopicID int
	Value   int
}

func (c Card) String() string {
	return fmt.Sprintf("(%d,%d)", c.TopicID, c.Value)
}

// Topic is a goal unit cleared when every goal value is on the table at once.
type Topic struct {
	ID    int
	Goals []int
}

// MaxGoal returns the highest goal value, or 0 for a topic without goals.
func (t Topic) MaxGoal() int {
	maxGoal := 0
	for i, g := range t.Goals {
		if i == 0 || g > maxGoal {
			maxGoal = g
		}
	}
	return maxGoal
}

// Equal reports whether both topics have the same id and goal list.
func (t Topic) Equal(o Topic) bool {
	if t.ID != o.ID || len(t.Goals) != len(o.Goals) {
		return false
	}
	for i := range t.Goals {
		if t.Goals[i] != o.Goals[i] {
			return false
		}
	}
	return true
}

// State is an immutable snapshot of a position. Slices held by a State are
// never written after construction, so states may share them freely.
type State struct {
	Topics         []Topic
	Hand           []Card
	Table          []Card
	TurnsLeft      int
	Spaces         int
	OriginalTopics []Topic

	invalid bool
}

// Invalid marks "no usable snapshot". It is never an empty valid state.
var Invalid = State{invalid: true}

// NewState builds a State. When originalTopics is nil the current topics are
// recorded as the original ones.
func NewState(topics []Topic, hand, table []Card, turnsLeft, spaces int, originalTopics []Topic) State {
	if originalTopics == nil {
		originalTopics = CloneTopics(topics)
	}
	return State{
		Topics:         topics,
		Hand:           hand,
		Table:          table,
		TurnsLeft:      turnsLeft,
		Spaces:         spaces,
		OriginalTopics: originalTopics,
	}
}

// IsInvalid reports whether s is the Invalid sentinel.
func (s State) IsInvalid() bool {
	return s.invalid
}

// TopicByID returns the active topic with the given id.
func (s State) TopicByID(id int) (Topic, bool) {
	for _, t := range s.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// HasTopic reports whether a topic with the given id is still active.
func (s State) HasTopic(id int) bool {
	_, ok := s.TopicByID(id)
	return ok
}

// Equal compares content: topics and original topics by id and goals, hand and
// table as multisets, and the counters.
func (s State) Equal(o State) bool {
	if s.invalid || o.invalid {
		return s.invalid == o.invalid
	}
	return s.TurnsLeft == o.TurnsLeft &&
		s.Spaces == o.Spaces &&
		topicsEqual(s.Topics, o.Topics) &&
		topicsEqual(s.OriginalTopics, o.OriginalTopics) &&
		SameCards(s.Hand, o.Hand) &&
		SameCards(s.Table, o.Table)
}

// Key returns a canonical content string; two states have the same key exactly
// when Equal reports true.
func (s State) Key() string {
	if s.invalid {
		return "invalid"
	}
	var b strings.Builder
	writeTopics(&b, s.Topics)
	b.WriteByte('|')
	writeCards(&b, s.Hand)
	b.WriteByte('|')
	writeCards(&b, s.Table)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.TurnsLeft))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.Spaces))
	b.WriteByte('|')
	writeTopics(&b, s.OriginalTopics)
	return b.String()
}

func (s State) String() string {
	if s.invalid {
		return "State(invalid)"
	}
	return "State(" + s.Key() + ")"
}

// CloneTopics deep-copies a topic list.
func CloneTopics(topics []Topic) []Topic {
	out := make([]Topic, 0, len(topics))
	for _, t := range topics {
		out = append(out, Topic{ID: t.ID, Goals: append([]int(nil), t.Goals...)})
	}
	return out
}

func topicsEqual(a, b []Topic) bool {
	if len(a) != len(b) {
		return false
	}
	byID := make(map[int]Topic, len(a))
	for _, t := range a {
		byID[t.ID] = t
	}
	for _, t := range b {
		other, ok := byID[t.ID]
		if !ok || !goalsEqual(other.Goals, t.Goals) {
			return false
		}
	}
	return true
}

func goalsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]int(nil), a...)
	y := append([]int(nil), b...)
	sort.Ints(x)
	sort.Ints(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func writeTopics(b *strings.Builder, topics []Topic) {
	sorted := CloneTopics(topics)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for i, t := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		sort.Ints(t.Goals)
		b.WriteString(strconv.Itoa(t.ID))
		b.WriteByte(':')
		for j, g := range t.Goals {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(g))
		}
	}
}

func writeCards(b *strings.Builder, cards []Card) {
	sorted := SortedCards(cards)
	for i, c := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.TopicID))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Value))
	}
}
