package bench

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"lundao/internal/bot"
	"lundao/internal/domain"
	"lundao/internal/engine"
	"lundao/internal/sandbox"
)

// Outcome is one side of a compared game.
type Outcome struct {
	Strategy        string         `json:"strategy"`
	Score           float64        `json:"score"`
	RemainingTopics []domain.Topic `json:"remaining_topics"`
	Table           []domain.Card  `json:"table"`
	Hand            []domain.Card  `json:"hand"`
}

// Difference is a seed where the two strategies finished a different number
// of topics.
type Difference struct {
	Seed          int64          `json:"seed"`
	InitialTopics []domain.Topic `json:"initial_topics"`
	A             Outcome        `json:"a"`
	B             Outcome        `json:"b"`
}

type Comparison struct {
	RunID       string       `json:"run_id"`
	GamesPlayed int          `json:"games_played"`
	Differences []Difference `json:"differences"`
}

type Comparator struct {
	Kind   sandbox.Kind
	Sim    engine.Simulator
	Logger runtime.Logger
}

func NewComparator(kind sandbox.Kind, logger runtime.Logger) *Comparator {
	return &Comparator{Kind: kind, Sim: engine.NewVanilla(), Logger: logger}
}

// Score rates a finished sandbox: 20 per completed topic plus 100 minus the
// top goals of the topics still open.
func Score(s sandbox.Sandbox) float64 {
	state := s.State()
	completed := len(s.InitialTopics()) - len(state.Topics)
	remaining := 0
	for _, t := range state.Topics {
		remaining += t.MaxGoal()
	}
	return float64(completed)*20 + float64(100-remaining)
}

// Compare plays both strategies on seeds 0..games-1 and collects up to
// maxDiffs seeds where they disagree on the number of remaining topics. A
// maxDiffs of zero or less plays every game.
func (c *Comparator) Compare(ctx context.Context, a, b bot.Strategy, games, maxDiffs int) (Comparison, error) {
	if games <= 0 {
		return Comparison{}, fmt.Errorf("games must be positive, got %d", games)
	}

	res := Comparison{RunID: uuid.NewString()}
	logger := c.Logger.WithField("run_id", res.RunID)
	logger.Info("Compare: %s vs %s over %d games", a.Name(), b.Name(), games)

	for seed := int64(0); seed < int64(games); seed++ {
		if maxDiffs > 0 && len(res.Differences) >= maxDiffs {
			break
		}
		if err := ctx.Err(); err != nil {
			return Comparison{}, err
		}
		res.GamesPlayed++

		sa, err := sandbox.New(c.Kind, seed, c.Sim)
		if err != nil {
			return Comparison{}, err
		}
		sb := sa.Clone()
		for sa.StartNextTurn(a) {
		}
		for sb.StartNextTurn(b) {
		}

		if len(sa.State().Topics) == len(sb.State().Topics) {
			continue
		}
		res.Differences = append(res.Differences, Difference{
			Seed:          seed,
			InitialTopics: sa.InitialTopics(),
			A:             outcome(a, sa),
			B:             outcome(b, sb),
		})
		logger.Debug("Compare: seed %d differs (%s %v, %s %v)", seed, a.Name(), sa.State().Topics, b.Name(), sb.State().Topics)
	}

	logger.Info("Compare: %d differing games in %d played", len(res.Differences), res.GamesPlayed)
	return res, nil
}

func outcome(s bot.Strategy, sb sandbox.Sandbox) Outcome {
	state := sb.State()
	return Outcome{
		Strategy:        s.Name(),
		Score:           Score(sb),
		RemainingTopics: domain.CloneTopics(state.Topics),
		Table:           domain.SortedCards(state.Table),
		Hand:            domain.SortedCards(state.Hand),
	}
}
