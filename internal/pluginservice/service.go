// Package pluginservice manages runtime registered plugins.
package pluginservice

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/rs/zerolog"
)

// Plugin produces the output of a plugin run.
type Plugin func() string

// BuiltinPlugins returns the plugins registered at startup.
func BuiltinPlugins() map[string]Plugin {
	return map[string]Plugin{
		"plugin_example": func() string { return "Hello from plugin_example!" },
		"ai_enhancer":    func() string { return "AI enhancement active!" },
	}
}

// Auditor records user actions.
type Auditor interface {
	Record(ctx context.Context, action, user string) domain.AuditEvent
}

// Service facilitates plugin service layer logic.
type Service struct {
	audit Auditor

	mu      sync.RWMutex
	plugins map[string]Plugin
}

// New returns plugin service struct holding the given plugins.
func New(plugins map[string]Plugin, a Auditor) *Service {
	s := &Service{
		audit:   a,
		plugins: make(map[string]Plugin, len(plugins)),
	}

	for name, p := range plugins {
		s.plugins[name] = p
	}

	return s
}

// Add registers a plugin named name on behalf of actor.
// Adding an existing name replaces that plugin.
func (s *Service) Add(ctx context.Context, actor, name string) (domain.PluginOutput, error) {
	if name == "" {
		return domain.PluginOutput{}, domain.ErrInvalidPluginName
	}

	output := fmt.Sprintf("Plugin %s loaded", name)

	s.mu.Lock()
	s.plugins[name] = func() string { return output }
	s.mu.Unlock()

	zerolog.Ctx(ctx).Info().Str("plugin", name).Str("actor", actor).Msg("plugin added")
	s.audit.Record(ctx, domain.ActionAddPlugin, actor)

	return domain.PluginOutput{Plugin: name, Output: output}, nil
}

// Run runs the named plugin.
func (s *Service) Run(_ context.Context, name string) (domain.PluginOutput, error) {
	s.mu.RLock()
	p, ok := s.plugins[name]
	s.mu.RUnlock()

	if !ok {
		return domain.PluginOutput{}, domain.ErrPluginNotFound
	}

	return domain.PluginOutput{Plugin: name, Output: p()}, nil
}

// List returns the plugin names in ascending order.
func (s *Service) List(_ context.Context) []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.plugins))
	for name := range s.plugins {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)

	return names
}
