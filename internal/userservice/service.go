// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"time"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/tokenpkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, username, credential, role string) (domain.Account, error)
	Authenticate(ctx context.Context, username, credential string) bool
	Get(ctx context.Context, username string) (domain.Account, error)
}

// Auditor records user actions.
type Auditor interface {
	Record(ctx context.Context, action, user string) domain.AuditEvent
}

// Service facilitates user service layer logic.
type Service struct {
	repo          Repo
	audit         Auditor
	tokenMaker    tokenpkg.Maker
	tokenDuration time.Duration
}

// New returns user service struct to manage user business logic.
func New(r Repo, a Auditor, tm tokenpkg.Maker, tokenDuration time.Duration) *Service {
	return &Service{
		repo:          r,
		audit:         a,
		tokenMaker:    tm,
		tokenDuration: tokenDuration,
	}
}

// Register creates an account with a zero balance. An empty role means domain.RoleUser.
func (s *Service) Register(ctx context.Context, username, password, role string) (domain.Account, error) {
	if role == "" {
		role = domain.RoleUser
	}

	if role != domain.RoleUser && role != domain.RoleAdmin {
		return domain.Account{}, domain.ErrInvalidRole
	}

	if len(password) > domain.MaxPasswordBytes {
		return domain.Account{}, domain.ErrPasswordTooLong
	}

	account, err := s.repo.Create(ctx, username, password, role)
	if err != nil {
		switch err {
		case domain.ErrDuplicateAccount, domain.ErrInvalidUsername:
			return domain.Account{}, err
		}

		zerolog.Ctx(ctx).Error().Err(err).Send()

		return domain.Account{}, errorspkg.ErrInternal
	}

	s.audit.Record(ctx, domain.ActionRegister, username)

	return account, nil
}

// Login checks the credentials and issues an access token.
//
// Unknown usernames and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	l := zerolog.Ctx(ctx)

	if !s.repo.Authenticate(ctx, username, password) {
		l.Info().Str("username", username).Msg("login failed")
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	account, err := s.repo.Get(ctx, username)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Session{}, errorspkg.ErrInternal
	}

	token, payload, err := s.tokenMaker.CreateToken(account.Username, account.Role, s.tokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Session{}, errorspkg.ErrInternal
	}

	s.audit.Record(ctx, domain.ActionLogin, username)

	session := domain.Session{
		AccessToken:          token,
		AccessTokenExpiresAt: payload.ExpiredAt,
		Account:              account,
	}

	return session, nil
}
