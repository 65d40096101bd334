package sandbox

import "lundao/internal/domain"

var (
	// mergeRewards is indexed by the value of the card merged away.
	mergeRewards = []int{30, 120, 240, 480, 960, 1920, 4000, 8000, 20000, 20000, 20000, 20000, 20000}
	// levelPointsReduce is the percentage kept when the NPC out-levels the
	// player on a topic, indexed by the level gap.
	levelPointsReduce = []int{100, 86, 73, 56, 40, 23, 6, 0, 0}
	// goalPoints is indexed by goal value - 1.
	goalPoints = []int{75, 375, 1500, 3000, 6000, 12000, 30000}
)

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}

func (g *Game) experience(topicID, num int) int {
	player, npc := g.playerLevels[topicID], g.npcLevels[topicID]
	if player < npc {
		num = num * levelPointsReduce[clampIndex(npc-player, len(levelPointsReduce))] / 100
	}
	return num
}

// award credits points for the topics finished and the cards merged away
// between before and after.
func (g *Game) award(before, after domain.State) {
	if !g.rules.scoring {
		return
	}

	finished := make(map[int]domain.Topic)
	for _, t := range before.Topics {
		if !after.HasTopic(t.ID) {
			finished[t.ID] = t
		}
	}
	for _, t := range finished {
		total := 0
		for _, goal := range t.Goals {
			total += goalPoints[clampIndex(goal-1, len(goalPoints))]
		}
		g.points += g.experience(t.ID, total)
	}

	for _, c := range before.Table {
		if domain.ContainsCard(after.Table, c) {
			continue
		}
		g.points += g.experience(c.TopicID, mergeRewards[clampIndex(c.Value, len(mergeRewards))])
	}
}
