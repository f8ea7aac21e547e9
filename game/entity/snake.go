package entity

import (
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

// Snake is an ordered sequence of grid cells. The head is the first
// element of Body, the tail the last. Growth after eating is delayed:
// PendingGrowth counts future steps where tail removal is skipped.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	PendingGrowth int
}

func NewSnake(start types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{start},
		Direction: dir,
	}
}

// Head returns the snake's head cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Tail returns the snake's tail cell.
func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection records the intended direction for the next step. A
// 180-degree reversal is accepted here; whether it kills the snake is
// decided by the collision check, not by the input layer.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	s.Direction = dir
}

// Step moves the snake so its head occupies newHead. With growth
// pending the tail stays put and the counter decrements (net length
// +1); otherwise the tail cell is released (pure translation).
func (s *Snake) Step(newHead types.Point) {
	s.Body = append([]types.Point{newHead}, s.Body...)
	if s.PendingGrowth > 0 {
		s.PendingGrowth--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Grow schedules n future steps without tail removal.
func (s *Snake) Grow(n int) {
	s.PendingGrowth += n
}

// Occupies reports whether any body cell (head included) is at p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, c := range s.Body {
		if c == p {
			return true
		}
	}
	return false
}

// OccupiesBody reports whether a non-head body cell is at p. When
// excludeTail is set the tail cell is ignored: it moves away on the
// same tick the head advances, so stepping onto it is safe unless
// growth is pending.
func (s *Snake) OccupiesBody(p types.Point, excludeTail bool) bool {
	last := len(s.Body)
	if excludeTail && s.PendingGrowth == 0 && last > 1 {
		last--
	}
	for i := 1; i < last; i++ {
		if s.Body[i] == p {
			return true
		}
	}
	return false
}
