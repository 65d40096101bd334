package decision

import "lundao/internal/domain"

// EventKind identifies how a decision loop run ended.
type EventKind string

const (
	EventDisabled        EventKind = "disabled"
	EventNotPlayerTurn   EventKind = "not_player_turn"
	EventInvalidSnapshot EventKind = "invalid_snapshot"
	EventCardConfirmed   EventKind = "card_confirmed"
	EventNoBestCard      EventKind = "no_best_card"
)

// Event is the result of one Engine.Execute call.
type Event struct {
	Kind     EventKind
	Strategy string
	Action   domain.Action
	// Acted is the bridge's report of whether it changed the game.
	Acted bool
}
