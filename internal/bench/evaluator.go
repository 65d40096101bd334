// Package bench measures strategies over many sandbox games.
package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"lundao/internal/bot"
	"lundao/internal/engine"
	"lundao/internal/sandbox"
)

// EvaluationResult summarises a strategy over a run of seeded games.
type EvaluationResult struct {
	RunID         string        `json:"run_id"`
	Strategy      string        `json:"strategy"`
	Sandbox       sandbox.Kind  `json:"sandbox"`
	GameCount     int           `json:"game_count"`
	Wins          int           `json:"wins"`
	WinRate       float64       `json:"win_rate"`
	AveragePoints float64       `json:"average_points"`
	MinPoints     int           `json:"min_points"`
	MaxPoints     int           `json:"max_points"`
	AverageTurns  float64       `json:"average_turns"`
	MinTurns      int           `json:"min_turns"`
	MaxTurns      int           `json:"max_turns"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Evaluator plays game i with seed i, so runs are comparable across strategies.
type Evaluator struct {
	Kind   sandbox.Kind
	Sim    engine.Simulator
	Logger runtime.Logger
}

func NewEvaluator(kind sandbox.Kind, logger runtime.Logger) *Evaluator {
	return &Evaluator{Kind: kind, Sim: engine.NewVanilla(), Logger: logger}
}

// Evaluate plays games seeded 0..games-1. It stops early with ctx's error.
func (e *Evaluator) Evaluate(ctx context.Context, strategy bot.Strategy, games int) (EvaluationResult, error) {
	if games <= 0 {
		return EvaluationResult{}, fmt.Errorf("games must be positive, got %d", games)
	}

	res := EvaluationResult{
		RunID:     uuid.NewString(),
		Strategy:  strategy.Name(),
		Sandbox:   e.Kind,
		GameCount: games,
		MinPoints: math.MaxInt,
		MaxPoints: math.MinInt,
		MinTurns:  math.MaxInt,
		MaxTurns:  math.MinInt,
	}
	logger := e.Logger.WithFields(map[string]interface{}{"run_id": res.RunID, "strategy": res.Strategy})

	start := time.Now()
	totalPoints, totalTurns := 0, 0
	for seed := 0; seed < games; seed++ {
		if err := ctx.Err(); err != nil {
			return EvaluationResult{}, err
		}

		s, err := sandbox.New(e.Kind, int64(seed), e.Sim)
		if err != nil {
			return EvaluationResult{}, err
		}
		turns := 0
		for s.StartNextTurn(strategy) {
			turns++
		}

		if len(s.State().Topics) == 0 {
			res.Wins++
		}
		points := s.Points()
		totalPoints += points
		totalTurns += turns
		res.MinPoints = min(res.MinPoints, points)
		res.MaxPoints = max(res.MaxPoints, points)
		res.MinTurns = min(res.MinTurns, turns)
		res.MaxTurns = max(res.MaxTurns, turns)
	}
	res.Elapsed = time.Since(start)

	res.WinRate = float64(res.Wins) / float64(games)
	res.AveragePoints = float64(totalPoints) / float64(games)
	res.AverageTurns = float64(totalTurns) / float64(games)

	logger.Info("Evaluate: %d games, win rate %.2f%%, avg points %.2f in %s", games, 100*res.WinRate, res.AveragePoints, res.Elapsed)
	return res, nil
}
