package bot

import botinternal "lundao/internal/bot/internal"

// Tuning holds the search constants shared by the strategies.
type Tuning struct {
	Weights botinternal.ScoreWeights

	// TieBreakDepth and TieBreakDiscount drive the improved baseline's lookahead.
	TieBreakDepth      int
	TieBreakDiscount   float64
	TieBreakTopicScore float64

	LookaheadDepth    int
	LookaheadDiscount float64

	MCTSIterations   int
	MCTSExploration  float64
	MCTSRolloutDepth int
}

// DefaultTuning matches the benchmarked configuration of every strategy.
var DefaultTuning = Tuning{
	Weights: botinternal.DefaultWeights,

	TieBreakDepth:      3,
	TieBreakDiscount:   0.9,
	TieBreakTopicScore: 100.0,

	LookaheadDepth:    5,
	LookaheadDiscount: 0.8,

	MCTSIterations:   1000,
	MCTSExploration:  1.41,
	MCTSRolloutDepth: 20,
}
