package decision

import (
	"context"

	"lundao/internal/domain"
)

// Bridge connects the decision loop to a live game. Implementations return
// domain.Invalid from BuildStateSnapshot when the game cannot be read, usually
// alongside domain.ErrUpstreamUnavailable.
type Bridge interface {
	Name() string
	IsPlayerTurn(ctx context.Context) (bool, error)
	BuildStateSnapshot(ctx context.Context) (domain.State, error)
	// ConfirmBestCard and ConfirmNoBestCard report whether the game was acted on.
	ConfirmBestCard(ctx context.Context, card domain.Card) (bool, error)
	ConfirmNoBestCard(ctx context.Context) (bool, error)
}
