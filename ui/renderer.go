package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dmitrykrivaltsevich/battle-snake/game"
	"github.com/dmitrykrivaltsevich/battle-snake/game/manager"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

const borderPadding = 10

// NES-style palette.
var (
	colorSnakeBody    = rl.Color{R: 0, G: 180, B: 0, A: 255}
	colorSnakeHead    = rl.Color{R: 50, G: 255, B: 50, A: 255}
	colorSnakeOutline = rl.Color{R: 0, G: 100, B: 0, A: 255}
	colorHunterBody   = rl.Color{R: 150, G: 0, B: 180, A: 255}
	colorHunterHead   = rl.Color{R: 220, G: 60, B: 255, A: 255}
	colorBrick        = rl.Color{R: 180, G: 100, B: 50, A: 255}
	colorMortar       = rl.Color{R: 210, G: 210, B: 210, A: 255}
	colorApple        = rl.Color{R: 255, G: 0, B: 0, A: 255}
	colorAppleDim     = rl.Color{R: 220, G: 50, B: 50, A: 255}
	colorAppleOutline = rl.Color{R: 150, G: 0, B: 0, A: 255}
	colorStem         = rl.Color{R: 0, G: 100, B: 0, A: 255}
	colorTitle        = rl.Color{R: 255, G: 50, B: 50, A: 255}
	colorSubtitle     = rl.Color{R: 50, G: 255, B: 50, A: 255}
	colorScoreBox     = rl.Color{R: 50, G: 50, B: 200, A: 255}
)

// Renderer draws one frame from a session snapshot. It owns no game
// state and recomputes its layout every frame so window resizes just
// work.
type Renderer struct {
	grid         types.Grid
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{grid: grid}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2

	cellW := availableWidth / int32(r.grid.Width)
	cellH := availableHeight / int32(r.grid.Height)
	r.cellSize = min32(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.offsetX = (r.screenWidth - r.cellSize*int32(r.grid.Width)) / 2
	r.offsetY = (r.screenHeight - r.cellSize*int32(r.grid.Height)) / 2
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch snap.State {
	case types.StateTitle:
		r.drawTitleScreen()
	case types.StateGameOver:
		r.drawGameOverScreen(snap)
	default:
		r.drawPlayfield(snap)
		if snap.State == types.StatePaused {
			r.drawPauseOverlay(snap)
		}
	}

	rl.EndDrawing()
}

func (r *Renderer) drawPlayfield(snap game.Snapshot) {
	for _, w := range snap.Walls {
		r.drawWall(w)
	}

	// Blinking apple, with a little stem on top.
	appleColor := colorApple
	if snap.Tick%8 >= 4 {
		appleColor = colorAppleDim
	}
	for _, f := range snap.Food {
		x := r.cellX(f.X)
		y := r.cellY(f.Y)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, appleColor)
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, colorAppleOutline)
		rl.DrawLine(x+r.cellSize/2, y, x+r.cellSize/2, y-r.cellSize/3, colorStem)
	}

	r.drawSnake(snap.Player, colorSnakeBody, colorSnakeHead)
	if snap.HunterEnabled {
		r.drawSnake(snap.Hunter, colorHunterBody, colorHunterHead)
	}

	fontSize := r.screenHeight / 30
	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	rl.DrawText(scoreText, r.screenWidth-rl.MeasureText(scoreText, fontSize)-10, 10, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Hi: %d", snap.HighScore), 10, 10, fontSize, rl.Gray)
}

// drawSnake paints body cells dark with pixel-art outlines and the
// head bright, head first in the slice.
func (r *Renderer) drawSnake(body []types.Point, bodyColor, headColor rl.Color) {
	for i := len(body) - 1; i >= 0; i-- {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		x := r.cellX(body[i].X)
		y := r.cellY(body[i].Y)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, c)
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, colorSnakeOutline)
	}
}

// drawWall paints a brick rectangle with mortar lines, alternating the
// vertical joints every row like real brickwork.
func (r *Renderer) drawWall(w manager.Wall) {
	x := r.cellX(w.X)
	y := r.cellY(w.Y)
	width := int32(w.W) * r.cellSize
	height := int32(w.H) * r.cellSize
	rl.DrawRectangle(x, y, width, height, colorBrick)

	brickW := r.cellSize * manager.BrickUnit
	brickH := r.cellSize

	for by := y + brickH; by < y+height; by += brickH {
		rl.DrawLine(x, by, x+width-1, by, colorMortar)
	}
	for row := int32(0); row < height/brickH; row++ {
		offset := (row % 2) * (brickW / 2)
		for bx := x + offset; bx < x+width; bx += brickW {
			if bx > x && bx < x+width-1 {
				rl.DrawLine(bx, y+row*brickH, bx, y+(row+1)*brickH, colorMortar)
			}
		}
	}
}

func (r *Renderer) drawTitleScreen() {
	titleSize := r.screenHeight / 12
	textSize := r.screenHeight / 24

	r.drawCentered("BATTLE SNAKE", r.screenHeight/4, titleSize, colorTitle)
	r.drawCentered("NES EDITION", r.screenHeight/4+titleSize+10, textSize, colorSubtitle)

	instructions := []string{
		"ARROW KEYS: Move Snake",
		"SPACE: Pause Game",
		"Q: Quit Game",
		"R: Restart Game",
		"",
		"AVOID BRICK WALLS",
		"COLLECT RED APPLES",
		"",
		"PRESS ANY KEY TO START",
	}
	y := r.screenHeight / 2
	for _, line := range instructions {
		r.drawCentered(line, y, textSize, rl.White)
		y += textSize + 8
	}
}

func (r *Renderer) drawPauseOverlay(snap game.Snapshot) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{A: 180})
	textSize := r.screenHeight / 20
	r.drawCentered("PAUSED", r.screenHeight/3, textSize*2, rl.White)
	r.drawCentered("Press C to continue or Q to quit", r.screenHeight/2, textSize, rl.White)
	r.drawCentered(fmt.Sprintf("Score: %d", snap.Score), r.screenHeight/2+textSize*2, textSize, rl.Gray)
}

func (r *Renderer) drawGameOverScreen(snap game.Snapshot) {
	titleSize := r.screenHeight / 12
	textSize := r.screenHeight / 24

	// Blinking GAME OVER.
	blink := colorTitle
	if int64(rl.GetTime()*2)%2 == 0 {
		blink = rl.Color{R: 255, G: 100, B: 100, A: 255}
	}
	r.drawCentered("GAME OVER", r.screenHeight/3, titleSize, blink)
	if snap.GameOverReason != "" {
		r.drawCentered("You "+snap.GameOverReason, r.screenHeight/3+titleSize+8, textSize, rl.Gray)
	}

	// 8-bit style score box.
	boxW := int32(260)
	boxH := int32(90)
	boxX := (r.screenWidth - boxW) / 2
	boxY := r.screenHeight/2 - boxH/2
	rl.DrawRectangle(boxX, boxY, boxW, boxH, colorScoreBox)
	rl.DrawRectangleLines(boxX, boxY, boxW, boxH, rl.White)
	r.drawCentered(fmt.Sprintf("SCORE: %d", snap.Score), boxY+15, textSize, rl.White)
	r.drawCentered(fmt.Sprintf("HIGH SCORE: %d", snap.HighScore), boxY+boxH-15-textSize, textSize, rl.White)

	r.drawCentered("PRESS R TO RESTART", r.screenHeight*3/4, textSize, colorSubtitle)
	r.drawCentered("PRESS Q TO QUIT", r.screenHeight*3/4+textSize+10, textSize, colorTitle)
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-w)/2, y, size, color)
}

func (r *Renderer) cellX(x int) int32 {
	return r.offsetX + int32(x)*r.cellSize
}

func (r *Renderer) cellY(y int) int32 {
	return r.offsetY + int32(y)*r.cellSize
}
