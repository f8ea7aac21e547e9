package manager

import (
	"golang.org/x/exp/rand"

	"github.com/dmitrykrivaltsevich/battle-snake/game/entity"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

// FoodManager keeps the set of active food cells at a target count,
// spawning replacements on cells free of snakes and bricks.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	target       int
	foodList     []types.Point
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager, target int) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		target:       target,
		foodList:     make([]types.Point, 0, target),
	}
}

// Refill spawns food until the active count reaches the target. When
// the grid has no free cell left the spawn is skipped; the next tick
// retries.
func (fm *FoodManager) Refill(snakes ...*entity.Snake) {
	for len(fm.foodList) < fm.target {
		food, ok := fm.spawn(snakes)
		if !ok {
			return
		}
		fm.foodList = append(fm.foodList, food)
	}
}

// spawn picks a uniformly random free cell. Random probing handles the
// common case; a sparse grid falls back to scanning every cell so a
// single remaining free cell is still found.
func (fm *FoodManager) spawn(snakes []*entity.Snake) (types.Point, bool) {
	for attempt := 0; attempt < 200; attempt++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.validPosition(food, snakes) {
			return food, true
		}
	}

	var free []types.Point
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.validPosition(p, snakes) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) validPosition(p types.Point, snakes []*entity.Snake) bool {
	if !fm.collisionMgr.IsFree(p, snakes...) {
		return false
	}
	for _, f := range fm.foodList {
		if f == p {
			return false
		}
	}
	return true
}

// AddFood places a food item on a specific cell, bypassing random
// spawning.
func (fm *FoodManager) AddFood(p types.Point) {
	fm.foodList = append(fm.foodList, p)
}

// Consume removes the food at the given cell, reporting whether
// anything was eaten there.
func (fm *FoodManager) Consume(p types.Point) bool {
	for i, f := range fm.foodList {
		if f == p {
			fm.foodList[i] = fm.foodList[len(fm.foodList)-1]
			fm.foodList = fm.foodList[:len(fm.foodList)-1]
			return true
		}
	}
	return false
}

// Contains reports whether a food item sits on the cell.
func (fm *FoodManager) Contains(p types.Point) bool {
	for _, f := range fm.foodList {
		if f == p {
			return true
		}
	}
	return false
}

// FoodList returns the active food cells.
func (fm *FoodManager) FoodList() []types.Point {
	return fm.foodList
}

// Target returns the configured concurrent food count.
func (fm *FoodManager) Target() int {
	return fm.target
}
