package domain

import "errors"

var (
	// ErrPluginNotFound indicates that no plugin is registered under the given name.
	ErrPluginNotFound = errors.New("plugin not found")
	// ErrInvalidPluginName indicates an empty plugin name.
	ErrInvalidPluginName = errors.New("invalid plugin name")
)

// PluginOutput is the result of running a plugin.
type PluginOutput struct {
	Plugin string `json:"plugin"`
	Output string `json:"output"`
}

// AppInfo describes the running application.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Engine  string `json:"engine"`
}

// Status is the public snapshot of the application state.
type Status struct {
	App      AppInfo         `json:"app"`
	Mode     string          `json:"mode"`
	Features map[string]bool `json:"features"`
	Users    int             `json:"users"`
	Plugins  []string        `json:"plugins"`
}
