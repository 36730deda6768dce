// Package statusservice builds the public status snapshot of the application.
package statusservice

import (
	"context"

	"github.com/go-petr/super-app/internal/domain"
)

// ModeSource reports the current search mode.
type ModeSource interface {
	Mode() string
}

// AccountCounter reports the number of registered accounts.
type AccountCounter interface {
	Count() int
}

// PluginLister lists registered plugin names.
type PluginLister interface {
	List(ctx context.Context) []string
}

// Service facilitates status service layer logic.
type Service struct {
	info     domain.AppInfo
	features map[string]bool
	mode     ModeSource
	accounts AccountCounter
	plugins  PluginLister
}

// New returns status service struct. The feature map is copied.
func New(info domain.AppInfo, features map[string]bool, m ModeSource, a AccountCounter, p PluginLister) *Service {
	f := make(map[string]bool, len(features))
	for name, enabled := range features {
		f[name] = enabled
	}

	return &Service{
		info:     info,
		features: f,
		mode:     m,
		accounts: a,
		plugins:  p,
	}
}

// Status returns the current snapshot.
func (s *Service) Status(ctx context.Context) domain.Status {
	features := make(map[string]bool, len(s.features))
	for name, enabled := range s.features {
		features[name] = enabled
	}

	return domain.Status{
		App:      s.info,
		Mode:     s.mode.Mode(),
		Features: features,
		Users:    s.accounts.Count(),
		Plugins:  s.plugins.List(ctx),
	}
}
