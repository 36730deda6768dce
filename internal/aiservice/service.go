// Package aiservice answers questions with a named skill.
package aiservice

import (
	"context"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/registrypkg"
)

// BasicSkill is the name of the skill used when none is given.
const BasicSkill = "basic"

// Skill answers a question.
type Skill func(question string) string

// DefaultSkills returns the skills available at startup.
func DefaultSkills() map[string]Skill {
	return map[string]Skill{
		BasicSkill: func(question string) string {
			return "Basic AI response to: " + question
		},
	}
}

// Service facilitates AI service layer logic.
type Service struct {
	skills *registrypkg.Registry[Skill]
}

// New returns AI service struct. The set of skills is fixed after New returns.
func New(skills map[string]Skill) *Service {
	return &Service{skills: registrypkg.New(skills)}
}

// Ask answers question with the named skill.
func (s *Service) Ask(_ context.Context, skill, question string) (domain.Answer, error) {
	if skill == "" {
		skill = BasicSkill
	}

	respond, ok := s.skills.Get(skill)
	if !ok {
		return domain.Answer{}, domain.ErrSkillNotFound
	}

	return domain.Answer{Skill: skill, Answer: respond(question)}, nil
}

// Skills returns the names of the available skills.
func (s *Service) Skills() []string {
	return s.skills.Names()
}
