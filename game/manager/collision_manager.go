package manager

import (
	"github.com/dmitrykrivaltsevich/battle-snake/game/entity"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

// CollisionType represents the kind of fatal collision that ended a
// game, shown on the game-over screen.
type CollisionType int

const (
	NoCollision CollisionType = iota
	ObstacleCollision
	SelfCollision
	HunterCollision
)

func (c CollisionType) String() string {
	switch c {
	case ObstacleCollision:
		return "hit a brick wall"
	case SelfCollision:
		return "ran into yourself"
	case HunterCollision:
		return "were caught by the hunter"
	default:
		return ""
	}
}

// CollisionManager answers wrap-aware collision queries for the rules
// engine and the hunter AI.
type CollisionManager struct {
	grid      types.Grid
	obstacles *ObstacleManager
}

func NewCollisionManager(grid types.Grid, obstacles *ObstacleManager) *CollisionManager {
	return &CollisionManager{
		grid:      grid,
		obstacles: obstacles,
	}
}

// NextHead computes the prospective head cell for a snake moving in
// dir, teleporting across grid edges.
func (cm *CollisionManager) NextHead(s *entity.Snake, dir types.Direction) types.Point {
	return cm.grid.Wrap(s.Head().Add(dir.ToPoint()))
}

// CheckPlayerFatal resolves the player's prospective head against every
// fatal condition, in precedence order: brick walls, the player's own
// body, then the hunter. The tail cell moves away this tick, so it only
// counts while growth is pending. Death short-circuits eating: the
// caller must not resolve food for a tick that returns non-NoCollision.
func (cm *CollisionManager) CheckPlayerFatal(newHead types.Point, player, hunter *entity.Snake) CollisionType {
	if cm.obstacles.IsObstacle(newHead) {
		return ObstacleCollision
	}
	if player.OccupiesBody(newHead, true) {
		return SelfCollision
	}
	if hunter != nil && hunter.Occupies(newHead) {
		return HunterCollision
	}
	return NoCollision
}

// IsFree reports whether the cell holds neither brick nor any part of
// the given snakes. Used to validate food spawn positions.
func (cm *CollisionManager) IsFree(p types.Point, snakes ...*entity.Snake) bool {
	if cm.obstacles.IsObstacle(p) {
		return false
	}
	for _, s := range snakes {
		if s != nil && s.Occupies(p) {
			return false
		}
	}
	return true
}

// FreeCells counts cells with neither brick nor snake on them.
func (cm *CollisionManager) FreeCells(snakes ...*entity.Snake) int {
	occupied := cm.obstacles.CellCount()
	for _, s := range snakes {
		if s != nil {
			occupied += s.Len()
		}
	}
	return cm.grid.Cells() - occupied
}
