package ai

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/dmitrykrivaltsevich/battle-snake/game/entity"
	"github.com/dmitrykrivaltsevich/battle-snake/game/manager"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

func newTestHunter(grid types.Grid) (*Hunter, *manager.ObstacleManager) {
	om := manager.NewObstacleManager(grid, rand.New(rand.NewSource(1)))
	return NewHunter(grid, om), om
}

func TestHunterMovesTowardPlayer(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := &entity.Snake{
		Body:      []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}},
		Direction: types.Right,
	}
	player := entity.NewSnake(types.Point{X: 14, Y: 10}, types.Right)

	dir := h.NextDirection(hunter, player, nil)
	if dir != types.Right {
		t.Errorf("hunter should keep moving right toward the player, got %v", dir)
	}
	if _, kind := h.Target(); kind != TargetPlayer {
		t.Errorf("with no food the target must be the player, got %v", kind)
	}
}

func TestHunterPrefersMuchCloserFood(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right)
	player := entity.NewSnake(types.Point{X: 60, Y: 40}, types.Right)
	food := []types.Point{{X: 12, Y: 10}}

	h.NextDirection(hunter, player, food)
	target, kind := h.Target()
	if kind != TargetFood || target != food[0] {
		t.Errorf("nearby food should win target selection, got kind %v target %v", kind, target)
	}
}

func TestHunterTargetsPlayerWithinMargin(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right)
	player := entity.NewSnake(types.Point{X: 13, Y: 10}, types.Right)
	// Food only marginally closer than the player: prey wins.
	food := []types.Point{{X: 11, Y: 10}}

	h.NextDirection(hunter, player, food)
	if _, kind := h.Target(); kind != TargetPlayer {
		t.Errorf("player should win inside the preference margin, got %v", kind)
	}
}

func TestHunterCommitmentHoldsAcrossTicks(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right)
	player := entity.NewSnake(types.Point{X: 40, Y: 30}, types.Right)
	food := []types.Point{{X: 12, Y: 10}}

	h.NextDirection(hunter, player, food)
	if _, kind := h.Target(); kind != TargetFood {
		t.Fatal("expected initial food target")
	}

	// Player suddenly adjacent: the lock keeps the food target.
	player.Body[0] = types.Point{X: 11, Y: 11}
	h.NextDirection(hunter, player, food)
	if _, kind := h.Target(); kind != TargetFood {
		t.Error("commitment should hold while the food target is valid")
	}
}

func TestHunterRetargetsWhenFoodEaten(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right)
	player := entity.NewSnake(types.Point{X: 40, Y: 30}, types.Right)
	food := []types.Point{{X: 12, Y: 10}}

	h.NextDirection(hunter, player, food)
	if _, kind := h.Target(); kind != TargetFood {
		t.Fatal("expected initial food target")
	}

	// The committed food disappears (someone ate it).
	h.NextDirection(hunter, player, nil)
	if _, kind := h.Target(); kind != TargetPlayer {
		t.Error("eaten food must force a re-target")
	}
}

func TestHunterPlayerTargetTracksMovingHead(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right)
	player := entity.NewSnake(types.Point{X: 20, Y: 10}, types.Right)

	h.NextDirection(hunter, player, nil)
	player.Body[0] = types.Point{X: 20, Y: 14}
	h.NextDirection(hunter, player, nil)

	target, _ := h.Target()
	if target != (types.Point{X: 20, Y: 14}) {
		t.Errorf("player target should follow the head, got %v", target)
	}
}

func TestHunterNeverPicksHazardWhenSafeMoveExists(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	h, om := newTestHunter(grid)
	// Brick directly right of the hunter, target beyond it.
	om.AddWall(manager.Wall{X: 11, Y: 10, W: 2, H: 2})

	hunter := &entity.Snake{
		Body:      []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}},
		Direction: types.Right,
	}
	player := entity.NewSnake(types.Point{X: 15, Y: 10}, types.Right)

	for i := 0; i < 40; i++ {
		dir := h.NextDirection(hunter, player, nil)
		next := grid.Wrap(hunter.Head().Add(dir.ToPoint()))
		if om.IsObstacle(next) {
			t.Fatalf("tick %d: hunter chose brick cell %v", i, next)
		}
		if hunter.OccupiesBody(next, true) {
			t.Fatalf("tick %d: hunter chose own body cell %v", i, next)
		}
		if player.OccupiesBody(next, true) {
			t.Fatalf("tick %d: hunter chose player body cell %v", i, next)
		}
		hunter.SetDirection(dir)
		hunter.Step(next)
		if next == player.Head() {
			return // caught the prey, hunt over
		}
	}
}

func TestHunterUsesWrapShortcut(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	h, _ := newTestHunter(grid)

	// Target just across the left edge: wrapping left is 2 steps,
	// walking across the middle is 17.
	hunter := &entity.Snake{
		Body:      []types.Point{{X: 0, Y: 10}, {X: 1, Y: 10}},
		Direction: types.Left,
	}
	player := entity.NewSnake(types.Point{X: 18, Y: 10}, types.Right)

	dir := h.NextDirection(hunter, player, nil)
	if dir != types.Left {
		t.Errorf("hunter should take the wrap shortcut left, got %v", dir)
	}
}

func TestHunterBoxedInFallsBackToLeastBad(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	h, om := newTestHunter(grid)
	// Brick on three sides of the hunter, own body on the fourth.
	om.AddWall(manager.Wall{X: 10, Y: 9, W: 1, H: 1})  // up
	om.AddWall(manager.Wall{X: 11, Y: 10, W: 1, H: 1}) // right
	om.AddWall(manager.Wall{X: 10, Y: 11, W: 1, H: 1}) // down

	hunter := &entity.Snake{
		Body:      []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		Direction: types.Right,
	}
	hunter.Grow(1) // pin the tail so left is body too
	// Player body doubles up the hazards right and below the hunter.
	player := &entity.Snake{
		Body:      []types.Point{{X: 5, Y: 5}, {X: 11, Y: 10}, {X: 10, Y: 11}},
		Direction: types.Right,
	}

	// Must return some direction without panicking.
	dir := h.NextDirection(hunter, player, nil)
	if dir == types.None {
		t.Fatal("boxed-in hunter must still pick a direction")
	}
	// Right and down carry two hazards each; the fallback must settle
	// on one of the single-hazard cells.
	if dir == types.Right || dir == types.Down {
		t.Errorf("fallback picked a double-hazard cell: %v", dir)
	}
}

func TestHunterResetClearsCommitment(t *testing.T) {
	grid := types.Grid{Width: 80, Height: 60}
	h, _ := newTestHunter(grid)

	hunter := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right)
	player := entity.NewSnake(types.Point{X: 40, Y: 30}, types.Right)
	h.NextDirection(hunter, player, []types.Point{{X: 12, Y: 10}})

	h.Reset()
	if _, kind := h.Target(); kind != TargetNone {
		t.Errorf("Reset should clear the target, got %v", kind)
	}
}
