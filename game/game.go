package game

import (
	"log"

	"golang.org/x/exp/rand"

	"github.com/dmitrykrivaltsevich/battle-snake/ai"
	"github.com/dmitrykrivaltsevich/battle-snake/game/entity"
	"github.com/dmitrykrivaltsevich/battle-snake/game/manager"
	"github.com/dmitrykrivaltsevich/battle-snake/game/types"
)

// Config carries the session parameters fixed at startup.
type Config struct {
	Grid          types.Grid
	HunterEnabled bool
	Seed          uint64
	StatsPath     string
}

// Session owns all mutable game state and advances it one tick at a
// time. It is single-threaded: the caller alternates HandleInput and
// Tick from one loop, then reads a Snapshot for rendering.
type Session struct {
	cfg  Config
	grid types.Grid
	rng  *rand.Rand

	state types.GameState
	tick  uint64
	score int
	quit  bool

	player   *entity.Snake
	hunter   *entity.Snake
	hunterAI *ai.Hunter

	obstacleMgr  *manager.ObstacleManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	pendingDir    types.Direction
	lastCollision manager.CollisionType
}

func NewSession(cfg Config) *Session {
	rng := rand.New(rand.NewSource(cfg.Seed))
	obstacleMgr := manager.NewObstacleManager(cfg.Grid, rng)
	return &Session{
		cfg:          cfg,
		grid:         cfg.Grid,
		rng:          rng,
		state:        types.StateTitle,
		obstacleMgr:  obstacleMgr,
		collisionMgr: manager.NewCollisionManager(cfg.Grid, obstacleMgr),
		stateMgr:     manager.NewStateManager(cfg.StatsPath),
	}
}

// HandleInput applies one discrete input event. Quit works from every
// state; the other control keys only where the state machine defines
// them. Direction keys are queued without rule validation: the
// collision check on the next tick is authoritative, so an immediate
// reversal is delivered and may end the game.
func (s *Session) HandleInput(e types.InputEvent) {
	if e == types.InputQuit {
		s.quit = true
		return
	}

	switch s.state {
	case types.StateTitle:
		// Any key starts; a direction key doubles as the first move.
		if d := e.Direction(); d != types.None {
			s.pendingDir = d
		}
		s.startGame()
	case types.StatePlaying:
		if d := e.Direction(); d != types.None {
			s.pendingDir = d
		} else if e == types.InputPause {
			s.state = types.StatePaused
		}
	case types.StatePaused:
		if e == types.InputContinue {
			s.state = types.StatePlaying
		}
	case types.StateGameOver:
		if e == types.InputRestart {
			s.startGame()
		}
	}
}

// startGame (re)initializes snakes, walls, food, and score. The
// highscore survives restarts.
func (s *Session) startGame() {
	playerStart := types.Point{X: s.grid.Width / 2, Y: s.grid.Height / 2}
	hunterStart := types.Point{X: s.grid.Width / 4, Y: s.grid.Height / 4}

	spawns := []types.Point{playerStart}
	if s.cfg.HunterEnabled {
		spawns = append(spawns, hunterStart)
	}
	s.obstacleMgr.Generate(spawns)

	s.player = entity.NewSnake(playerStart, types.None)
	target := types.FoodTargetSingle
	if s.cfg.HunterEnabled {
		s.hunter = entity.NewSnake(hunterStart, types.Right)
		s.hunterAI = ai.NewHunter(s.grid, s.obstacleMgr)
		target = types.FoodTargetHunter
	} else {
		s.hunter = nil
		s.hunterAI = nil
	}

	s.foodMgr = manager.NewFoodManager(s.grid, s.rng, s.collisionMgr, target)
	s.foodMgr.Refill(s.player, s.hunter)

	s.score = 0
	s.tick = 0
	s.lastCollision = manager.NoCollision
	s.state = types.StatePlaying
}

// Tick advances the simulation by one step while Playing: player move,
// hunter move, food resolution, refill. A fatal player collision
// short-circuits the player's food check for that tick and transitions
// to GameOver.
func (s *Session) Tick() {
	if s.state != types.StatePlaying {
		return
	}
	s.tick++

	if s.pendingDir != types.None {
		s.player.SetDirection(s.pendingDir)
		s.pendingDir = types.None
	}

	// The player sits still until the first direction key, like the
	// original game.
	if s.player.Direction != types.None {
		newHead := s.collisionMgr.NextHead(s.player, s.player.Direction)
		if ct := s.collisionMgr.CheckPlayerFatal(newHead, s.player, s.hunter); ct != manager.NoCollision {
			s.gameOver(ct)
			return
		}
		s.player.Step(newHead)
		if s.foodMgr.Consume(newHead) {
			s.score += types.FoodScore
			s.player.Grow(1)
		}
	}

	if s.hunter != nil {
		dir := s.hunterAI.NextDirection(s.hunter, s.player, s.foodMgr.FoodList())
		s.hunter.SetDirection(dir)
		newHead := s.collisionMgr.NextHead(s.hunter, dir)
		if newHead == s.player.Head() {
			// Predator reaches prey head-on.
			s.gameOver(manager.HunterCollision)
			return
		}
		s.hunter.Step(newHead)
		// The player moved first, so shared food already went to the
		// player this tick.
		if s.foodMgr.Consume(newHead) {
			s.hunter.Grow(1)
		}
	}

	s.foodMgr.Refill(s.player, s.hunter)
}

func (s *Session) gameOver(ct manager.CollisionType) {
	s.lastCollision = ct
	s.state = types.StateGameOver
	if err := s.stateMgr.RecordScore(s.score); err != nil {
		log.Printf("warning: could not persist highscore: %v", err)
	}
}

// ShouldQuit reports whether a quit input was received.
func (s *Session) ShouldQuit() bool {
	return s.quit
}

// State returns the current game state.
func (s *Session) State() types.GameState {
	return s.state
}

// Score returns the player's current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the persisted best score.
func (s *Session) HighScore() int {
	return s.stateMgr.HighScore()
}

// Snapshot is the read-only view of one frame handed to the renderer.
type Snapshot struct {
	State          types.GameState
	Tick           uint64
	Score          int
	HighScore      int
	Player         []types.Point
	PlayerDir      types.Direction
	Hunter         []types.Point
	Food           []types.Point
	Walls          []manager.Wall
	HunterEnabled  bool
	GameOverReason string
}

// Snapshot copies the state the renderer needs. The core keeps no
// reference to the returned slices.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:          s.state,
		Tick:           s.tick,
		Score:          s.score,
		HighScore:      s.stateMgr.HighScore(),
		HunterEnabled:  s.cfg.HunterEnabled,
		GameOverReason: s.lastCollision.String(),
		Walls:          append([]manager.Wall(nil), s.obstacleMgr.Walls()...),
	}
	if s.player != nil {
		snap.Player = append([]types.Point(nil), s.player.Body...)
		snap.PlayerDir = s.player.Direction
	}
	if s.hunter != nil {
		snap.Hunter = append([]types.Point(nil), s.hunter.Body...)
	}
	if s.foodMgr != nil {
		snap.Food = append([]types.Point(nil), s.foodMgr.FoodList()...)
	}
	return snap
}
