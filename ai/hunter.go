// Package ai implements the hunter snake's decision procedure: a
// per-tick greedy chase with a commitment lock on the chosen target so
// the hunter does not oscillate between the player and nearby food.
package ai

import (
	"github.com/dmitrykrivaltsevich/battle-snake/game/entity"
	"github.com/dmitrykrivaltsevich/battle-snake/game/manager"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

const (
	// CommitTicks locks a chosen target for a minimum number of ticks.
	CommitTicks = 20
	// FoodPreferenceMargin: food is preferred over the player when it
	// is at least this many cells closer to the hunter's head.
	FoodPreferenceMargin = 4

	turnPenalty     = 1 // changing direction costs one cell of distance
	reversalPenalty = 5 // a 180-degree turn costs more, against thrash
	revisitPenalty  = 8 // per earlier visit to the candidate cell
	recentWindow    = 16
)

// TargetKind says what the hunter is currently chasing.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetPlayer
	TargetFood
)

// Hunter holds the small cross-tick state of the hunter AI: the
// committed target and a short memory of recently occupied cells used
// to break movement cycles around concave walls.
type Hunter struct {
	grid      types.Grid
	obstacles *manager.ObstacleManager

	target     types.Point
	targetKind TargetKind
	commit     int

	recent []types.Point
}

func NewHunter(grid types.Grid, obstacles *manager.ObstacleManager) *Hunter {
	return &Hunter{
		grid:      grid,
		obstacles: obstacles,
	}
}

// Reset drops the target lock and visit memory, for game restarts.
func (h *Hunter) Reset() {
	h.target = types.Point{}
	h.targetKind = TargetNone
	h.commit = 0
	h.recent = h.recent[:0]
}

// Target returns the committed target cell and its kind.
func (h *Hunter) Target() (types.Point, TargetKind) {
	return h.target, h.targetKind
}

// NextDirection picks the hunter's move for this tick. The returned
// direction never lands on a brick, the hunter's own body, or the
// player's body when any safe candidate exists; when the hunter is
// fully boxed in it returns the least hazardous candidate instead of
// failing.
func (h *Hunter) NextDirection(hunter, player *entity.Snake, food []types.Point) types.Direction {
	head := hunter.Head()
	h.remember(head)
	h.updateTarget(head, player, food)

	type candidate struct {
		dir  types.Direction
		cell types.Point
	}
	// Current direction first so it wins distance ties, then the fixed
	// priority order.
	order := make([]candidate, 0, 4)
	if hunter.Direction != types.None {
		order = append(order, candidate{hunter.Direction, h.grid.Wrap(head.Add(hunter.Direction.ToPoint()))})
	}
	for _, d := range types.Directions {
		if d == hunter.Direction {
			continue
		}
		order = append(order, candidate{d, h.grid.Wrap(head.Add(d.ToPoint()))})
	}

	best := types.None
	bestScore := 0
	for _, c := range order {
		if h.hazards(c.cell, hunter, player) > 0 {
			continue
		}
		score := h.grid.Distance(c.cell, h.target)
		if c.dir != hunter.Direction {
			score += turnPenalty
		}
		if c.dir == hunter.Direction.Opposite() {
			score += reversalPenalty
		}
		score += revisitPenalty * h.visits(c.cell)
		if best == types.None || score < bestScore {
			best = c.dir
			bestScore = score
		}
	}
	if best != types.None {
		return best
	}

	// Boxed in: accept the candidate overlapping the fewest hazards.
	// This is the designed fallback, not an error path.
	least := order[0].dir
	leastHazards := h.hazards(order[0].cell, hunter, player)
	for _, c := range order[1:] {
		if n := h.hazards(c.cell, hunter, player); n < leastHazards {
			least = c.dir
			leastHazards = n
		}
	}
	return least
}

// updateTarget re-targets when there is no commitment, the committed
// food was eaten, or the lock expired. A player target tracks the
// moving head for the whole commitment.
func (h *Hunter) updateTarget(head types.Point, player *entity.Snake, food []types.Point) {
	h.commit--

	valid := h.targetKind == TargetPlayer ||
		(h.targetKind == TargetFood && containsPoint(food, h.target))
	if h.commit > 0 && valid {
		if h.targetKind == TargetPlayer {
			h.target = player.Head()
		}
		return
	}

	playerDist := h.grid.Distance(head, player.Head())
	nearestFood, foodDist := h.nearestFood(head, food)

	if nearestFood != nil && playerDist-foodDist >= FoodPreferenceMargin {
		h.target = *nearestFood
		h.targetKind = TargetFood
	} else {
		h.target = player.Head()
		h.targetKind = TargetPlayer
	}
	h.commit = CommitTicks
}

func (h *Hunter) nearestFood(head types.Point, food []types.Point) (*types.Point, int) {
	var nearest *types.Point
	best := 0
	for i := range food {
		d := h.grid.Distance(head, food[i])
		if nearest == nil || d < best {
			nearest = &food[i]
			best = d
		}
	}
	return nearest, best
}

// hazards counts immediate dangers on a cell: brick walls, the
// hunter's own body (minus the departing tail), and the player's body.
// The player's head is not a hazard; reaching it is the hunt's goal.
func (h *Hunter) hazards(cell types.Point, hunter, player *entity.Snake) int {
	n := 0
	if h.obstacles.IsObstacle(cell) {
		n++
	}
	if hunter.OccupiesBody(cell, true) {
		n++
	}
	if player.OccupiesBody(cell, true) {
		n++
	}
	return n
}

func (h *Hunter) remember(head types.Point) {
	h.recent = append(h.recent, head)
	if len(h.recent) > recentWindow {
		h.recent = h.recent[1:]
	}
}

func (h *Hunter) visits(cell types.Point) int {
	n := 0
	for _, p := range h.recent {
		if p == cell {
			n++
		}
	}
	return n
}

func containsPoint(list []types.Point, p types.Point) bool {
	for _, c := range list {
		if c == p {
			return true
		}
	}
	return false
}
