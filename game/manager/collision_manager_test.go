package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/dmitrykrivaltsevich/battle-snake/game/entity"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

func newTestCollisionManager(grid types.Grid) (*CollisionManager, *ObstacleManager) {
	om := NewObstacleManager(grid, rand.New(rand.NewSource(1)))
	return NewCollisionManager(grid, om), om
}

func TestNextHeadWrapsAcrossEdges(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, _ := newTestCollisionManager(grid)

	s := entity.NewSnake(types.Point{X: 0, Y: 7}, types.Left)
	if got := cm.NextHead(s, types.Left); got != (types.Point{X: 19, Y: 7}) {
		t.Errorf("NextHead across left edge = %v, want (19,7)", got)
	}

	s = entity.NewSnake(types.Point{X: 7, Y: 19}, types.Down)
	if got := cm.NextHead(s, types.Down); got != (types.Point{X: 7, Y: 0}) {
		t.Errorf("NextHead across bottom edge = %v, want (7,0)", got)
	}
}

func TestCheckPlayerFatalObstacle(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, om := newTestCollisionManager(grid)
	om.AddWall(Wall{X: 6, Y: 5, W: 2, H: 2})

	player := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	newHead := cm.NextHead(player, types.Right)
	if ct := cm.CheckPlayerFatal(newHead, player, nil); ct != ObstacleCollision {
		t.Errorf("collision = %v, want ObstacleCollision", ct)
	}
}

func TestCheckPlayerFatalSelf(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, _ := newTestCollisionManager(grid)

	// Head at (5,5), neck at (6,5): stepping right is a reversal into
	// the neck and must be fatal.
	player := &entity.Snake{
		Body:      []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}},
		Direction: types.Left,
	}
	newHead := cm.NextHead(player, types.Right)
	if ct := cm.CheckPlayerFatal(newHead, player, nil); ct != SelfCollision {
		t.Errorf("collision = %v, want SelfCollision", ct)
	}
}

func TestCheckPlayerFatalTailCellIsSafe(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, _ := newTestCollisionManager(grid)

	// A tight loop about to step onto its own tail cell. The tail
	// moves away the same tick, so this is not a collision.
	player := &entity.Snake{
		Body: []types.Point{
			{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6},
		},
		Direction: types.Down,
	}
	newHead := cm.NextHead(player, types.Down) // (5,6) = tail
	if ct := cm.CheckPlayerFatal(newHead, player, nil); ct != NoCollision {
		t.Errorf("stepping onto the departing tail should be safe, got %v", ct)
	}

	// With growth pending the tail stays and the same move is fatal.
	player.Grow(1)
	if ct := cm.CheckPlayerFatal(newHead, player, nil); ct != SelfCollision {
		t.Errorf("tail cell must be fatal while growth is pending, got %v", ct)
	}
}

func TestCheckPlayerFatalHunter(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, _ := newTestCollisionManager(grid)

	player := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	hunter := &entity.Snake{
		Body:      []types.Point{{X: 7, Y: 5}, {X: 6, Y: 5}},
		Direction: types.Right,
	}

	newHead := cm.NextHead(player, types.Right) // (6,5) = hunter body
	if ct := cm.CheckPlayerFatal(newHead, player, hunter); ct != HunterCollision {
		t.Errorf("collision = %v, want HunterCollision", ct)
	}
}

func TestFatalPrecedenceObstacleBeforeHunter(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, om := newTestCollisionManager(grid)
	om.AddWall(Wall{X: 6, Y: 4, W: 2, H: 2})

	player := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	hunter := entity.NewSnake(types.Point{X: 6, Y: 5}, types.Right)

	newHead := cm.NextHead(player, types.Right)
	if ct := cm.CheckPlayerFatal(newHead, player, hunter); ct != ObstacleCollision {
		t.Errorf("obstacle check must take precedence, got %v", ct)
	}
}

func TestIsFree(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	cm, om := newTestCollisionManager(grid)
	om.AddWall(Wall{X: 0, Y: 0, W: 2, H: 2})

	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	if cm.IsFree(types.Point{X: 1, Y: 1}, snake) {
		t.Error("brick cell reported free")
	}
	if cm.IsFree(types.Point{X: 5, Y: 5}, snake) {
		t.Error("snake cell reported free")
	}
	if !cm.IsFree(types.Point{X: 10, Y: 10}, snake) {
		t.Error("empty cell reported occupied")
	}
	// nil snakes are tolerated (single-snake mode).
	if !cm.IsFree(types.Point{X: 10, Y: 10}, snake, nil) {
		t.Error("nil snake must be ignored")
	}
}
