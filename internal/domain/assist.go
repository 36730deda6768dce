package domain

import "errors"

// ErrSkillNotFound indicates that no AI skill is registered under the given name.
var ErrSkillNotFound = errors.New("skill not found")

// Search modes.
const (
	ModeOnline  = "ONLINE"
	ModeOffline = "OFFLINE"
)

// SearchResult holds the results for a query.
type SearchResult struct {
	Query   string   `json:"query"`
	Mode    string   `json:"mode"`
	Results []string `json:"results"`
}

// Answer holds the AI response to a question.
type Answer struct {
	Skill  string `json:"skill"`
	Answer string `json:"answer"`
}
