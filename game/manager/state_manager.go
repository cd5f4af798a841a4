package manager

import "time"

// RoundStats describes a finished round
type RoundStats struct {
	Score     int
	StartTime time.Time
	EndTime   time.Time
}

// StateManager keeps the session score. Nothing is written to disk.
type StateManager struct {
	score     int
	highScore int
	rounds    []RoundStats
	roundFrom time.Time
	now       func() time.Time
}

// NewStateManager starts the first round now
func NewStateManager() *StateManager {
	sm := &StateManager{now: time.Now}
	sm.roundFrom = sm.now()
	return sm
}

// AddPoint records an eaten food item
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// EndRound archives the running round and starts a new one
func (sm *StateManager) EndRound() RoundStats {
	end := sm.now()
	r := RoundStats{Score: sm.score, StartTime: sm.roundFrom, EndTime: end}
	sm.rounds = append(sm.rounds, r)
	sm.score = 0
	sm.roundFrom = end
	return r
}

// GetScore returns the score of the running round
func (sm *StateManager) GetScore() int {
	return sm.score
}

// GetHighScore returns the best score of the session
func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetRoundsPlayed returns the number of finished rounds
func (sm *StateManager) GetRoundsPlayed() int {
	return len(sm.rounds)
}

// GetAverageScore returns the mean score of finished rounds
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}
