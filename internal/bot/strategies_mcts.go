package bot

import (
	"math"

	botinternal "lundao/internal/bot/internal"
	"lundao/internal/domain"
	"lundao/internal/engine"
	"lundao/internal/rng"
)

// MCTS runs Monte Carlo tree search with UCB1 selection and random rollouts.
// An instance owns its random source and must not be shared between
// goroutines.
type MCTS struct {
	Iterations   int
	Exploration  float64
	RolloutDepth int
	Weights      botinternal.ScoreWeights

	rng *rng.Source
}

// NewMCTS returns a tree search strategy. Non-positive iterations or
// exploration select the defaults.
func NewMCTS(iterations int, exploration float64, seed int64) *MCTS {
	if iterations <= 0 {
		iterations = DefaultTuning.MCTSIterations
	}
	if exploration <= 0 {
		exploration = DefaultTuning.MCTSExploration
	}
	return &MCTS{
		Iterations:   iterations,
		Exploration:  exploration,
		RolloutDepth: DefaultTuning.MCTSRolloutDepth,
		Weights:      DefaultTuning.Weights,
		rng:          rng.New(seed),
	}
}

func (m *MCTS) Name() string { return "mcts" }

func (m *MCTS) Description() string {
	return "Monte Carlo tree search with UCB1 selection; returns the most visited play."
}

// Source exposes the random source so callers can record or fork its position.
func (m *MCTS) Source() *rng.Source {
	return m.rng
}

// Node is one position in the search tree.
type Node struct {
	state         domain.State
	action        domain.Action
	parent        *Node
	children      []*Node
	visits        int
	totalScore    float64
	fullyExpanded bool
}

// Visits returns how many iterations passed through the node.
func (n *Node) Visits() int { return n.visits }

// Children returns the expanded children in creation order.
func (n *Node) Children() []*Node { return n.children }

// Action returns the action that produced the node; the root holds a pass.
func (n *Node) Action() domain.Action { return n.action }

// MeanScore returns the average rollout score, 0 when unvisited.
func (n *Node) MeanScore() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.totalScore / float64(n.visits)
}

func (m *MCTS) Decide(state domain.State, sim engine.Simulator) domain.Action {
	if botinternal.MustPass(state) {
		return domain.PassAction
	}

	root := m.Search(state, sim)

	// Robust child: most visits wins, pass children never do.
	var best *Node
	for _, child := range root.children {
		if child.action.Pass {
			continue
		}
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	if best == nil {
		return domain.PassAction
	}
	return best.action
}

// Search runs the iteration budget from state and returns the root.
func (m *MCTS) Search(state domain.State, sim engine.Simulator) *Node {
	if m.rng == nil {
		m.rng = rng.New(0)
	}

	root := &Node{state: state, action: domain.PassAction}
	control := domain.CloneTopics(state.Topics)

	for i := 0; i < m.Iterations; i++ {
		node := m.selectNode(root)
		node = m.expand(node, sim)
		score := m.simulate(node.state, sim, control)
		backpropagate(node, score)
	}
	return root
}

func (m *MCTS) selectNode(node *Node) *Node {
	for node.fullyExpanded && len(node.children) > 0 {
		best := node.children[0]
		bestUCB := m.ucb(best)
		for _, child := range node.children[1:] {
			if v := m.ucb(child); v > bestUCB {
				best, bestUCB = child, v
			}
		}
		node = best
	}
	return node
}

func (m *MCTS) ucb(n *Node) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.totalScore / float64(n.visits)
	exploration := m.Exploration * math.Sqrt(math.Log(float64(n.parent.visits))/float64(n.visits))
	return exploitation + exploration
}

func isTerminal(state domain.State) bool {
	return state.TurnsLeft < 0 || len(state.Topics) == 0
}

func (m *MCTS) expand(node *Node, sim engine.Simulator) *Node {
	if isTerminal(node.state) {
		return node
	}

	actions := botinternal.LegalActions(node.state)
	var unexpanded []domain.Action
	for _, a := range actions {
		if !hasChild(node, a) {
			unexpanded = append(unexpanded, a)
		}
	}
	if len(unexpanded) == 0 {
		node.fullyExpanded = true
		return node
	}

	action := unexpanded[m.rng.Intn(len(unexpanded))]
	next := node.state
	if !action.Pass {
		var err error
		next, err = sim.Apply(node.state, action)
		if err != nil {
			// Stale speculative branch: drop it.
			return node
		}
	}

	child := &Node{state: next, action: action, parent: node}
	node.children = append(node.children, child)
	if len(node.children) >= len(actions) {
		node.fullyExpanded = true
	}
	return child
}

func hasChild(node *Node, a domain.Action) bool {
	for _, c := range node.children {
		if c.action == a {
			return true
		}
	}
	return false
}

func (m *MCTS) simulate(state domain.State, sim engine.Simulator, control []domain.Topic) float64 {
	depth := m.RolloutDepth
	if depth <= 0 {
		depth = DefaultTuning.MCTSRolloutDepth
	}

	s := state
	for i := 0; i < depth && !isTerminal(s); i++ {
		actions := botinternal.LegalActions(s)
		action := actions[m.rng.Intn(len(actions))]
		if action.Pass {
			break
		}
		next, err := sim.Apply(s, action)
		if err != nil {
			break
		}
		s = next
	}

	weights := m.Weights
	if weights == (botinternal.ScoreWeights{}) {
		weights = DefaultTuning.Weights
	}
	return botinternal.EvaluateOutcome(s, control, weights)
}

func backpropagate(node *Node, score float64) {
	for n := node; n != nil; n = n.parent {
		n.visits++
		n.totalScore += score
	}
}
