package manager

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxScoreHistory = 50

// GameStats is the persisted shape of the stats file.
type GameStats struct {
	HighScore    int    `json:"highScore"`
	ScoreHistory []int  `json:"scoreHistory"`
	LastSession  string `json:"lastSession"`
}

// StateManager persists the highscore and a bounded score history
// across runs. The file is read once at startup and written once per
// game-over; a missing or corrupt file silently falls back to zero.
type StateManager struct {
	path         string
	sessionID    string
	highScore    int
	scoreHistory []int
}

func NewStateManager(path string) *StateManager {
	sm := &StateManager{
		path:      path,
		sessionID: uuid.New().String(),
	}
	sm.load()
	return sm
}

func (sm *StateManager) load() {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return
	}
	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return
	}
	if stats.HighScore < 0 {
		return
	}
	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
}

func (sm *StateManager) save() error {
	stats := GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
		LastSession:  sm.sessionID,
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(sm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(sm.path, data, 0644)
}

// RecordScore folds a finished game's score into the highscore and the
// history, then persists. The stored highscore never decreases.
func (sm *StateManager) RecordScore(score int) error {
	if score > sm.highScore {
		sm.highScore = score
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
	if len(sm.scoreHistory) > maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[len(sm.scoreHistory)-maxScoreHistory:]
	}
	return sm.save()
}

// HighScore returns the best score seen across all runs.
func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// ScoreHistory returns the recorded scores, oldest first.
func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}

// SessionID identifies this process run in the persisted stats.
func (sm *StateManager) SessionID() string {
	return sm.sessionID
}
