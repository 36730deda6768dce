// Package gameservice manages business logic layer of games.
package gameservice

import (
	"context"
	"sync"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/randompkg"
	"github.com/go-petr/super-app/pkg/registrypkg"
)

// DefaultGame is the name of the game played when none is given.
const DefaultGame = "default"

// Game produces a score for a single play.
type Game interface {
	Play(ctx context.Context, username string) int
}

// GameFunc adapts an ordinary function to the Game interface.
type GameFunc func(ctx context.Context, username string) int

// Play calls f(ctx, username).
func (f GameFunc) Play(ctx context.Context, username string) int {
	return f(ctx, username)
}

// DiceGame scores a uniformly random number in [1, 100].
var DiceGame = GameFunc(func(context.Context, string) int {
	return randompkg.IntBetween(1, 100)
})

// DefaultGames returns the games available at startup.
func DefaultGames() map[string]Game {
	return map[string]Game{
		DefaultGame: DiceGame,
	}
}

// Auditor records user actions.
type Auditor interface {
	Record(ctx context.Context, action, user string) domain.AuditEvent
}

// Service facilitates game service layer logic.
type Service struct {
	games *registrypkg.Registry[Game]
	audit Auditor

	mu     sync.Mutex
	totals map[string]int
}

// New returns game service struct. The set of games is fixed after New returns.
func New(games map[string]Game, a Auditor) *Service {
	return &Service{
		games:  registrypkg.New(games),
		audit:  a,
		totals: make(map[string]int),
	}
}

// Play runs the named game for the user and adds the score to the user's total.
func (s *Service) Play(ctx context.Context, username, game string) (domain.GameResult, error) {
	if username == "" {
		return domain.GameResult{}, domain.ErrInvalidUsername
	}

	if game == "" {
		game = DefaultGame
	}

	g, ok := s.games.Get(game)
	if !ok {
		return domain.GameResult{}, domain.ErrGameNotFound
	}

	score := g.Play(ctx, username)

	s.mu.Lock()
	s.totals[username] += score
	total := s.totals[username]
	s.mu.Unlock()

	s.audit.Record(ctx, domain.ActionPlayGame, username)

	return domain.GameResult{Game: game, Score: score, Total: total}, nil
}

// Games returns the names of the available games.
func (s *Service) Games() []string {
	return s.games.Names()
}
