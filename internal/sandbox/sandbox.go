// Package sandbox plays whole games offline: the NPC side is played by the
// baseline strategy and the player side by the strategy under test.
package sandbox

import (
	"fmt"

	"lundao/internal/bot"
	"lundao/internal/domain"
	"lundao/internal/engine"
	"lundao/internal/rng"
)

// Kind selects a rule set.
type Kind string

const (
	// KindVanilla follows the stock rules: up to 4 topics, 5 turns, points.
	KindVanilla Kind = "vanilla"
	// KindPlus follows the extended rules: up to 5 topics, 2n+1 turns.
	KindPlus Kind = "plus"
)

const (
	maxLevel = 5
	handSize = 5
)

// Sandbox is a running game.
type Sandbox interface {
	// State is the current snapshot. Its hand belongs to whoever moved last,
	// so only Topics, Table and TurnsLeft are meaningful for scoring.
	State() domain.State
	InitialTopics() []domain.Topic
	// StartNextTurn plays the NPC's turn and then the player's with strategy.
	// It reports false once the game is over.
	StartNextTurn(strategy bot.Strategy) bool
	Points() int
	Clone() Sandbox
}

// New builds a sandbox of the given kind.
func New(kind Kind, seed int64, sim engine.Simulator) (Sandbox, error) {
	switch kind {
	case KindVanilla:
		return NewVanilla(seed, sim), nil
	case KindPlus:
		return NewPlus(seed, sim), nil
	default:
		return nil, fmt.Errorf("unknown sandbox: %s", kind)
	}
}

type variant struct {
	maxTopics int
	turns     func(topics int) int
	scoring   bool
}

var (
	vanillaRules = variant{
		maxTopics: 4,
		turns:     func(int) int { return 5 },
		scoring:   true,
	}
	plusRules = variant{
		maxTopics: 5,
		turns:     func(n int) int { return 2*n + 1 },
	}
)

// Game implements Sandbox for both rule sets.
type Game struct {
	rules variant
	sim   engine.Simulator
	rng   *rng.Source
	npc   bot.Strategy

	initialTopics []domain.Topic
	playerDeck    []domain.Card
	npcDeck       []domain.Card
	playerLevels  map[int]int
	npcLevels     map[int]int

	state  domain.State
	points int
}

// NewVanilla deals a stock-rules game from seed.
func NewVanilla(seed int64, sim engine.Simulator) *Game {
	return newGame(vanillaRules, seed, sim)
}

// NewPlus deals an extended-rules game from seed.
func NewPlus(seed int64, sim engine.Simulator) *Game {
	return newGame(plusRules, seed, sim)
}

func newGame(rules variant, seed int64, sim engine.Simulator) *Game {
	g := &Game{
		rules:        rules,
		sim:          sim,
		rng:          rng.New(seed),
		npc:          &bot.Baseline{},
		playerLevels: make(map[int]int),
		npcLevels:    make(map[int]int),
	}
	g.deal()
	return g
}

func (g *Game) deal() {
	count := g.rng.IntRange(1, g.rules.maxTopics+1)
	for id := 0; id < count; id++ {
		player := g.rng.IntRange(1, maxLevel+1)
		npc := g.rng.IntRange(1, maxLevel+1)
		g.playerLevels[id] = player
		g.npcLevels[id] = npc

		g.initialTopics = append(g.initialTopics, domain.Topic{ID: id, Goals: domain.GoalsForLevels(player, npc)})
		g.playerDeck = append(g.playerDeck, domain.NewTopicDeck(id, player)...)
		g.npcDeck = append(g.npcDeck, domain.NewTopicDeck(id, npc)...)
	}

	topics := domain.CloneTopics(g.initialTopics)
	g.state = domain.NewState(topics, nil, nil, g.rules.turns(count), 0, g.initialTopics)
}

func (g *Game) State() domain.State { return g.state }

func (g *Game) InitialTopics() []domain.Topic {
	return domain.CloneTopics(g.initialTopics)
}

func (g *Game) Points() int { return g.points }

// Seed and Draws locate the game's random source.
func (g *Game) Seed() int64  { return g.rng.Seed() }
func (g *Game) Draws() int64 { return g.rng.Draws() }

func (g *Game) StartNextTurn(strategy bot.Strategy) bool {
	if g.state.TurnsLeft-1 < 0 || len(g.state.Topics) == 0 {
		return false
	}

	// Unplayed cards go back into the deck.
	g.playerDeck = append(g.playerDeck, g.state.Hand...)

	npcState := g.playNpcTurn()
	// Each side gains one space per turn; the NPC's placements do not count
	// against the player's allowance.
	g.state = domain.NewState(npcState.Topics, g.dealPlayer(), npcState.Table, g.state.TurnsLeft-1, g.state.Spaces+1, g.initialTopics)
	g.state = g.playOut(g.state, strategy)
	return true
}

func (g *Game) playNpcTurn() domain.State {
	state := domain.NewState(g.state.Topics, g.dealNpc(), g.state.Table, g.state.TurnsLeft, g.state.Spaces+1, g.initialTopics)
	state = g.playOut(state, g.npc)
	g.npcDeck = append(g.npcDeck, state.Hand...)
	return state
}

// playOut lets strategy play until it passes.
func (g *Game) playOut(state domain.State, strategy bot.Strategy) domain.State {
	for {
		action := strategy.Decide(state, g.sim)
		if action.Pass {
			return state
		}
		next, err := g.sim.Apply(state, action)
		if err != nil {
			return state
		}
		g.award(state, next)
		state = next
	}
}

func (g *Game) dealNpc() []domain.Card {
	if len(g.npcDeck) < handSize {
		return nil
	}
	cards := make([]domain.Card, 0, handSize)
	for i := 0; i < handSize; i++ {
		cards = append(cards, g.draw(&g.npcDeck))
	}
	return cards
}

func (g *Game) dealPlayer() []domain.Card {
	limit := min(handSize, len(g.playerDeck))
	cards := make([]domain.Card, 0, limit)
	for i := 0; i < limit; i++ {
		cards = append(cards, g.draw(&g.playerDeck))
	}
	return cards
}

func (g *Game) draw(deck *[]domain.Card) domain.Card {
	d := *deck
	idx := g.rng.Intn(len(d))
	c := d[idx]
	*deck = append(d[:idx:idx], d[idx+1:]...)
	return c
}

// Clone returns an independent copy in the same position. The random source
// is rebuilt from its seed and draw count.
func (g *Game) Clone() Sandbox {
	return &Game{
		rules:         g.rules,
		sim:           g.sim,
		rng:           g.rng.Fork(),
		npc:           g.npc,
		initialTopics: domain.CloneTopics(g.initialTopics),
		playerDeck:    append([]domain.Card(nil), g.playerDeck...),
		npcDeck:       append([]domain.Card(nil), g.npcDeck...),
		playerLevels:  g.playerLevels,
		npcLevels:     g.npcLevels,
		state:         g.state,
		points:        g.points,
	}
}
