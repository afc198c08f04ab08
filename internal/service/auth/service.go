package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/dental-tech/internal/model"
	"github.com/jwalitptl/dental-tech/internal/repository"
	apperrors "github.com/jwalitptl/dental-tech/pkg/errors"
	"github.com/jwalitptl/dental-tech/pkg/logger"
	"github.com/jwalitptl/dental-tech/pkg/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is an authenticated user with the roles granted to it.
type Session struct {
	User  *model.Utilisateur `json:"user"`
	Roles []*model.Role      `json:"roles"`
}

// HasRole reports whether one of the session roles is of type t.
func (s *Session) HasRole(t model.RoleType) bool {
	for _, r := range s.Roles {
		if r.Type == t {
			return true
		}
	}
	return false
}

type Service struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	log      *logger.Logger
}

func NewService(userRepo repository.UserRepository, hasher security.PasswordHasher, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log,
	}
}

// Login checks the password of login and loads its roles. Unknown logins
// and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (*Session, error) {
	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := user.VerifyPassword(s.hasher, password); err != nil {
		switch {
		case errors.Is(err, security.ErrPasswordMismatch), errors.Is(err, model.ErrNoPassword):
			s.log.Info("login rejected", "login", login)
			return nil, ErrInvalidCredentials
		default:
			s.log.Error(err, "password check failed", "login", login)
			return nil, fmt.Errorf("failed to verify password: %w", err)
		}
	}

	roles, err := s.userRepo.ListRoles(ctx, *user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	s.log.Debug("login accepted", "login", login, "roles", len(roles))
	return &Session{User: user, Roles: roles}, nil
}
