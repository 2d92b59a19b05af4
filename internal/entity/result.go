package entity

import "time"

// GameResult is the archived outcome of a finished game.
type GameResult struct {
	ID         string    `json:"id"`
	Creator    string    `json:"creator"`
	Winner     string    `json:"winner"`
	Loser      string    `json:"loser"`
	FinishedAt time.Time `json:"finished_at"`
}
