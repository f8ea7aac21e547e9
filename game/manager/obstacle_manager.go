package manager

import (
	"golang.org/x/exp/rand"

	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

// Obstacle layout constants, in grid cells. Walls are built from 2x2
// brick units like the Battle City walls they imitate.
const (
	BrickUnit      = 2
	NumWalls       = 5 // straight walls per game
	NumShapedWalls = 2 // additional L/T compounds per game
	SpawnBuffer    = 5 // min distance between a wall and a snake spawn
)

// Wall is an axis-aligned rectangle of impassable brick cells.
type Wall struct {
	X, Y, W, H int
}

// Cells enumerates every cell covered by the wall.
func (w Wall) Cells() []types.Point {
	cells := make([]types.Point, 0, w.W*w.H)
	for y := w.Y; y < w.Y+w.H; y++ {
		for x := w.X; x < w.X+w.W; x++ {
			cells = append(cells, types.Point{X: x, Y: y})
		}
	}
	return cells
}

// ObstacleManager generates the brick walls for a session and answers
// impassability queries. Walls are generated once per game and stay
// fixed until restart.
type ObstacleManager struct {
	grid  types.Grid
	rng   *rand.Rand
	walls []Wall
	cells map[types.Point]bool
}

func NewObstacleManager(grid types.Grid, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		grid:  grid,
		rng:   rng,
		cells: make(map[types.Point]bool),
	}
}

// Generate builds a fresh obstacle layout. Walls never overlap each
// other and keep SpawnBuffer cells of clearance around every point in
// spawns (the snakes' starting positions).
func (om *ObstacleManager) Generate(spawns []types.Point) {
	om.walls = om.walls[:0]
	om.cells = make(map[types.Point]bool)

	for i := 0; i < NumWalls; i++ {
		om.placeWall(om.randomStraightWall(), spawns)
	}
	for i := 0; i < NumShapedWalls; i++ {
		base, attached := om.randomShapedWall()
		// The compound only goes in whole: skip it if either part
		// fails placement checks.
		if om.fits(base, spawns) && om.fits(attached, spawns) {
			om.AddWall(base)
			om.AddWall(attached)
		}
	}
}

// randomStraightWall picks a horizontal or vertical brick wall sized in
// brick units: long side 3-8 units, short side 1-2 units.
func (om *ObstacleManager) randomStraightWall() Wall {
	long := (om.rng.Intn(6) + 3) * BrickUnit
	short := (om.rng.Intn(2) + 1) * BrickUnit
	var w Wall
	if om.rng.Intn(2) == 0 {
		w = Wall{W: long, H: short}
	} else {
		w = Wall{W: short, H: long}
	}
	w.X = om.randomAligned(om.grid.Width - w.W)
	w.Y = om.randomAligned(om.grid.Height - w.H)
	return w
}

// randomShapedWall builds an L- or T-shaped compound: a horizontal base
// with a vertical piece attached below it, at one end for an L or
// centered for a T.
func (om *ObstacleManager) randomShapedWall() (base, attached Wall) {
	base = Wall{
		W: (om.rng.Intn(3) + 3) * BrickUnit,
		H: BrickUnit,
	}
	attached = Wall{
		W: BrickUnit,
		H: (om.rng.Intn(3) + 2) * BrickUnit,
	}
	base.X = om.randomAligned(om.grid.Width - base.W)
	base.Y = om.randomAligned(om.grid.Height - base.H - attached.H)
	attached.Y = base.Y + base.H

	if om.rng.Intn(2) == 0 { // L-shape: vertical piece at one end
		if om.rng.Intn(2) == 0 {
			attached.X = base.X
		} else {
			attached.X = base.X + base.W - attached.W
		}
	} else { // T-shape: vertical piece in the middle
		attached.X = base.X + (base.W-attached.W)/2
	}
	return base, attached
}

func (om *ObstacleManager) randomAligned(max int) int {
	if max <= 0 {
		return 0
	}
	return om.rng.Intn(max/BrickUnit+1) * BrickUnit
}

// placeWall adds the wall if it fits, retrying with fresh positions a
// bounded number of times. A crowded grid simply ends up with fewer
// walls.
func (om *ObstacleManager) placeWall(w Wall, spawns []types.Point) {
	for attempt := 0; attempt < 20; attempt++ {
		if om.fits(w, spawns) {
			om.AddWall(w)
			return
		}
		w.X = om.randomAligned(om.grid.Width - w.W)
		w.Y = om.randomAligned(om.grid.Height - w.H)
	}
}

func (om *ObstacleManager) fits(w Wall, spawns []types.Point) bool {
	if w.X < 0 || w.Y < 0 || w.X+w.W > om.grid.Width || w.Y+w.H > om.grid.Height {
		return false
	}
	for _, c := range w.Cells() {
		if om.cells[c] {
			return false
		}
		for _, s := range spawns {
			if om.grid.Distance(c, s) < SpawnBuffer {
				return false
			}
		}
	}
	return true
}

// AddWall places a specific wall, bypassing the random layout. Fixed
// layouts (and tests) build maps through this.
func (om *ObstacleManager) AddWall(w Wall) {
	om.walls = append(om.walls, w)
	for _, c := range w.Cells() {
		om.cells[c] = true
	}
}

// IsObstacle reports whether the cell is impassable brick.
func (om *ObstacleManager) IsObstacle(p types.Point) bool {
	return om.cells[p]
}

// Walls returns the wall rectangles for rendering.
func (om *ObstacleManager) Walls() []Wall {
	return om.walls
}

// CellCount returns the number of brick cells on the grid.
func (om *ObstacleManager) CellCount() int {
	return len(om.cells)
}
