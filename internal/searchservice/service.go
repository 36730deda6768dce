// Package searchservice answers search queries online or from a local index.
package searchservice

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/rs/zerolog"
)

// Service facilitates search service layer logic.
type Service struct {
	online atomic.Bool
	index  map[string][]string
}

// New returns search service struct. The index is copied and never changes.
func New(online bool, index map[string][]string) *Service {
	s := &Service{index: make(map[string][]string, len(index))}
	s.online.Store(online)

	for q, results := range index {
		s.index[q] = append([]string(nil), results...)
	}

	return s
}

// Mode returns domain.ModeOnline or domain.ModeOffline.
func (s *Service) Mode() string {
	if s.online.Load() {
		return domain.ModeOnline
	}

	return domain.ModeOffline
}

// SetOnline switches between online and offline search.
func (s *Service) SetOnline(online bool) {
	s.online.Store(online)
}

// Search returns the results for query. Offline queries missing from the index
// return an empty result list.
func (s *Service) Search(ctx context.Context, query string) domain.SearchResult {
	mode := s.Mode()

	res := domain.SearchResult{
		Query:   query,
		Mode:    mode,
		Results: make([]string, 0),
	}

	if mode == domain.ModeOnline {
		res.Results = append(res.Results, fmt.Sprintf("Online result for %s", query))
		return res
	}

	res.Results = append(res.Results, s.index[query]...)

	zerolog.Ctx(ctx).Debug().
		Str("query", query).
		Int("hits", len(res.Results)).
		Msg("offline search")

	return res
}
