package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dmitrykrivaltsevich/battle-snake/game"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
	"github.com/dmitrykrivaltsevich/battle-snake/ui"
)

const (
	gridWidth  = 80
	gridHeight = 60
)

func main() {
	speed := flag.Int("speed", 100, "Tick interval in milliseconds (lower = faster)")
	hunter := flag.Bool("hunter", false, "Enable the AI-controlled hunter snake")
	stats := flag.String("stats", "data/gamestats.json", "Path to the persisted stats file")
	flag.Parse()

	rl.InitWindow(800, 600, "Battle Snake - NES Style")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)

	grid := types.Grid{Width: gridWidth, Height: gridHeight}
	session := game.NewSession(game.Config{
		Grid:          grid,
		HunterEnabled: *hunter,
		Seed:          uint64(time.Now().UnixNano()),
		StatsPath:     *stats,
	})

	renderer := ui.NewRenderer(grid)
	lastUpdate := time.Now()
	tickInterval := time.Duration(*speed) * time.Millisecond

	for !rl.WindowShouldClose() && !session.ShouldQuit() {
		for _, e := range pollInput() {
			session.HandleInput(e)
		}

		if time.Since(lastUpdate) >= tickInterval {
			session.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(session.Snapshot())
	}
}

// pollInput translates this frame's key presses into input events.
// Rule validation (e.g. reversing into the own body) is left entirely
// to the session.
func pollInput() []types.InputEvent {
	var events []types.InputEvent
	keymap := []struct {
		key   int32
		event types.InputEvent
	}{
		{rl.KeyUp, types.InputUp},
		{rl.KeyRight, types.InputRight},
		{rl.KeyDown, types.InputDown},
		{rl.KeyLeft, types.InputLeft},
		{rl.KeySpace, types.InputPause},
		{rl.KeyC, types.InputContinue},
		{rl.KeyR, types.InputRestart},
		{rl.KeyQ, types.InputQuit},
		{rl.KeyEnter, types.InputContinue},
	}
	for _, k := range keymap {
		if rl.IsKeyPressed(k.key) {
			events = append(events, k.event)
		}
	}
	return events
}
