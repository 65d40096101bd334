package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/spf13/cobra"

	"lundao/internal/bench"
	"lundao/internal/bot"
	"lundao/internal/config"
	"lundao/internal/domain"
	"lundao/internal/logging"
	"lundao/internal/sandbox"
)

var (
	configPath string
	jsonOutput bool

	evalGames      int
	evalSandbox    string
	evalStrategies string

	compareA        string
	compareB        string
	compareGames    int
	compareMaxDiffs int
	compareSandbox  string

	cfg    config.Config
	logger runtime.Logger
)

var rootCmd = &cobra.Command{
	Use:           "lundao-bench",
	Short:         "Benchmark LunDao decision strategies",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		if configPath != "" {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = c
		}
		logger = logging.New(logging.ParseLevel(cfg.LogLevel), cmd.ErrOrStderr())
		return nil
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Play N seeded games per strategy and report win rate, points and turns",
	Long: `Play games seeded 0..N-1 with every listed strategy and print a report.

Examples:
  lundao-bench evaluate --games 1000
  lundao-bench evaluate --sandbox plus --strategy greedy,lookahead --json`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Find seeds where two strategies finish a different number of topics",
	Long: `Play the same seeded games with two strategies and print the games whose
outcomes differ, up to --max-diffs.

Examples:
  lundao-bench compare --a baseline --b improved_baseline --games 1000 --max-diffs 5`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output as JSON for scripting")

	evaluateCmd.Flags().IntVar(&evalGames, "games", 0,
		"Games per strategy (0 = config bench.games)")
	evaluateCmd.Flags().StringVar(&evalSandbox, "sandbox", "",
		"Rule set: vanilla or plus (default from config)")
	evaluateCmd.Flags().StringVar(&evalStrategies, "strategy", "",
		"Comma-separated strategies (default: all)")

	compareCmd.Flags().StringVar(&compareA, "a", string(bot.KindBaseline),
		"First strategy")
	compareCmd.Flags().StringVar(&compareB, "b", string(bot.KindImprovedBaseline),
		"Second strategy")
	compareCmd.Flags().IntVar(&compareGames, "games", 0,
		"Games to play (0 = config bench.games)")
	compareCmd.Flags().IntVar(&compareMaxDiffs, "max-diffs", -1,
		"Stop after this many differing games (0 = no cap, -1 = config bench.max_diffs)")
	compareCmd.Flags().StringVar(&compareSandbox, "sandbox", "",
		"Rule set: vanilla or plus (default from config)")

	rootCmd.AddCommand(evaluateCmd, compareCmd)
}

func sandboxKind(flag string) sandbox.Kind {
	if flag != "" {
		return sandbox.Kind(flag)
	}
	return sandbox.Kind(cfg.Bench.Sandbox)
}

func strategyKinds(list string) []bot.Kind {
	if strings.TrimSpace(list) == "" {
		return bot.Kinds
	}
	var kinds []bot.Kind
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			kinds = append(kinds, bot.Kind(name))
		}
	}
	return kinds
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	games := evalGames
	if games <= 0 {
		games = cfg.Bench.Games
	}
	evaluator := bench.NewEvaluator(sandboxKind(evalSandbox), logger)

	var results []bench.EvaluationResult
	for _, kind := range strategyKinds(evalStrategies) {
		strategy, err := bot.NewStrategy(kind, cfg.StrategyOptions())
		if err != nil {
			return err
		}
		res, err := evaluator.Evaluate(cmd.Context(), strategy, games)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, results)
	}
	for _, r := range results {
		printEvaluation(out, r)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := bot.NewStrategy(bot.Kind(compareA), cfg.StrategyOptions())
	if err != nil {
		return err
	}
	b, err := bot.NewStrategy(bot.Kind(compareB), cfg.StrategyOptions())
	if err != nil {
		return err
	}
	games := compareGames
	if games <= 0 {
		games = cfg.Bench.Games
	}
	maxDiffs := compareMaxDiffs
	if maxDiffs < 0 {
		maxDiffs = cfg.Bench.MaxDiffs
	}

	res, err := bench.NewComparator(sandboxKind(compareSandbox), logger).Compare(cmd.Context(), a, b, games, maxDiffs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, res)
	}
	printComparison(out, a.Name(), b.Name(), res)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printEvaluation(w io.Writer, r bench.EvaluationResult) {
	fmt.Fprintf(w, "[%s] (%s)\n", r.Strategy, r.Sandbox)
	fmt.Fprintf(w, "  games:   %d\n", r.GameCount)
	fmt.Fprintf(w, "  wins:    %d\n", r.Wins)
	fmt.Fprintf(w, "  win rate: %.2f%%\n", 100*r.WinRate)
	fmt.Fprintf(w, "  points:  %.2f (range %d ~ %d)\n", r.AveragePoints, r.MinPoints, r.MaxPoints)
	fmt.Fprintf(w, "  turns:   %.1f (range %d ~ %d)\n", r.AverageTurns, r.MinTurns, r.MaxTurns)
	fmt.Fprintf(w, "  elapsed: %dms\n", r.Elapsed.Milliseconds())
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func printComparison(w io.Writer, nameA, nameB string, res bench.Comparison) {
	fmt.Fprintf(w, "%s vs %s, run %s\n", nameA, nameB, res.RunID)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, d := range res.Differences {
		fmt.Fprintf(w, "\nGame #%d\n", d.Seed)
		fmt.Fprintln(w, "  initial topics:")
		for _, t := range d.InitialTopics {
			fmt.Fprintf(w, "    id=%d goals=%v\n", t.ID, t.Goals)
		}
		for _, o := range []bench.Outcome{d.A, d.B} {
			fmt.Fprintf(w, "  %s: score=%.2f remaining=%s\n", o.Strategy, o.Score, topicIDs(o.RemainingTopics))
			fmt.Fprintf(w, "    table: %s\n", groupByTopic(o.Table))
			fmt.Fprintf(w, "    hand:  %s\n", groupByTopic(o.Hand))
		}
	}

	fmt.Fprintf(w, "\n%d differing games in %d played\n", len(res.Differences), res.GamesPlayed)
}

func topicIDs(topics []domain.Topic) string {
	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		ids = append(ids, fmt.Sprint(t.ID))
	}
	return fmt.Sprintf("(%d){%s}", len(topics), strings.Join(ids, ", "))
}

func groupByTopic(cards []domain.Card) string {
	if len(cards) == 0 {
		return "(empty)"
	}
	var parts []string
	sorted := domain.SortedCards(cards)
	for i := 0; i < len(sorted); {
		j := i
		var values []string
		for ; j < len(sorted) && sorted[j].TopicID == sorted[i].TopicID; j++ {
			values = append(values, fmt.Sprint(sorted[j].Value))
		}
		parts = append(parts, fmt.Sprintf("topic %d: [%s]", sorted[i].TopicID, strings.Join(values, ", ")))
		i = j
	}
	return strings.Join(parts, "; ")
}
