package bot

import (
	"fmt"
)

// Options configures the strategies built by NewStrategy. Zero values select
// DefaultTuning.
type Options struct {
	LookaheadDepth   int
	MCTSIterations   int
	MCTSExploration  float64
	MCTSRolloutDepth int
	Seed             int64
}

// NewStrategy creates a new strategy of the given kind.
func NewStrategy(kind Kind, opts Options) (Strategy, error) {
	switch kind {
	case KindBaseline:
		return &Baseline{}, nil
	case KindImprovedBaseline:
		return &ImprovedBaseline{Tuning: DefaultTuning}, nil
	case KindGreedy:
		return &Greedy{Tuning: DefaultTuning}, nil
	case KindLookahead:
		return NewLookahead(opts.LookaheadDepth), nil
	case KindMCTS:
		m := NewMCTS(opts.MCTSIterations, opts.MCTSExploration, opts.Seed)
		if opts.MCTSRolloutDepth > 0 {
			m.RolloutDepth = opts.MCTSRolloutDepth
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", kind)
	}
}

// NewAll builds one strategy per kind, in Kinds order.
func NewAll(opts Options) ([]Strategy, error) {
	out := make([]Strategy, 0, len(Kinds))
	for _, k := range Kinds {
		s, err := NewStrategy(k, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
