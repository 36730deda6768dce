package domain

import "errors"

// ErrGameNotFound indicates that no game is registered under the given name.
var ErrGameNotFound = errors.New("game not found")

// GameResult holds the score of a single play and the running total.
type GameResult struct {
	Game  string `json:"game"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}
