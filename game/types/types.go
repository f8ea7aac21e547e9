package types

// Point is a single grid cell. Points compare by value.
type Point struct {
	X, Y int
}

// Add returns the cell offset by the given delta (not wrapped).
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents a cardinal movement direction.
type Direction int

const (
	None  Direction = iota // 0
	Up                     // 1
	Right                  // 2
	Down                   // 3
	Left                   // 4
)

// Directions lists the four cardinal directions in fixed priority order,
// used for tie-breaking when candidate moves score equally.
var Directions = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction into a movement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the 180-degree reversal of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "NONE"
	}
}

// Grid represents the game grid dimensions.
type Grid struct {
	Width  int
	Height int
}

// Wrap maps any coordinate onto the grid, teleporting across edges.
// Total over all integer coordinates and idempotent on canonical cells.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Distance computes the Manhattan distance between two cells taking
// grid wrapping into account: leaving one edge and re-entering on the
// opposite side counts as a single step.
func (g Grid) Distance(a, b Point) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}
	return dx + dy
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// GameState is the top-level state of a session.
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// InputEvent is a discrete input consumed by the session. The input
// layer never validates events against game rules; the rules engine is
// authoritative (an immediate reversal is delivered as-is).
type InputEvent int

const (
	InputNone InputEvent = iota
	InputUp
	InputRight
	InputDown
	InputLeft
	InputPause
	InputContinue
	InputRestart
	InputQuit
)

// Direction returns the movement direction of a directional event, or
// None for control events.
func (e InputEvent) Direction() Direction {
	switch e {
	case InputUp:
		return Up
	case InputRight:
		return Right
	case InputDown:
		return Down
	case InputLeft:
		return Left
	default:
		return None
	}
}

// Game constants
const (
	FoodScore        = 10 // points per food eaten by the player
	FoodTargetSingle = 1  // concurrent food in single-snake mode
	FoodTargetHunter = 2  // concurrent food when the hunter is active
)
