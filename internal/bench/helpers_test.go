package bench

import (
	"lundao/internal/domain"
	"lundao/internal/engine"
)

// passer never plays a card.
type passer struct{}

func (passer) Name() string        { return "passer" }
func (passer) Description() string { return "Always passes." }
func (passer) Decide(domain.State, engine.Simulator) domain.Action {
	return domain.PassAction
}
