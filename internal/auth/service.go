package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"hts_portal/internal/models"
)

// UserFinder looks users up by exact username, joined with their company.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
}

// Verifier resolves credentials into an Identity.
type Verifier struct {
	users     UserFinder
	passwords PasswordScheme
	log       zerolog.Logger
}

func NewVerifier(users UserFinder, passwords PasswordScheme, log zerolog.Logger) *Verifier {
	return &Verifier{users: users, passwords: passwords, log: log}
}

// Verify succeeds only when exactly one user has this username and the
// password matches. Every failure, including lookup errors, comes back as
// ErrInvalidCredentials.
func (v *Verifier) Verify(ctx context.Context, username, password string) (Identity, error) {
	if username == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	users, err := v.users.FindByUsername(ctx, username)
	if err != nil {
		v.log.Warn().Err(err).Str("username", username).Msg("credential lookup failed")
		return Identity{}, ErrInvalidCredentials
	}
	if len(users) != 1 || !v.passwords.Matches(users[0].Password, password) {
		return Identity{}, ErrInvalidCredentials
	}
	return IdentityFromUser(users[0]), nil
}

// Service ties credential checks, the session store and session tokens
// together.
type Service struct {
	verifier *Verifier
	sessions SessionStore
	tokens   *Tokens
}

func NewService(verifier *Verifier, sessions SessionStore, tokens *Tokens) *Service {
	return &Service{verifier: verifier, sessions: sessions, tokens: tokens}
}

// Login verifies the credentials, opens a session and returns its token.
func (s *Service) Login(ctx context.Context, username, password string) (Identity, string, error) {
	id, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return Identity{}, "", err
	}
	sid, err := s.sessions.Save(ctx, id)
	if err != nil {
		return Identity{}, "", errors.Wrap(err, "open session")
	}
	token, err := s.tokens.Issue(sid)
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		return Identity{}, "", err
	}
	return id, token, nil
}

// Resolve returns the identity behind token.
func (s *Service) Resolve(ctx context.Context, token string) (Identity, error) {
	sid, err := s.tokens.Parse(token)
	if err != nil {
		return Identity{}, err
	}
	return s.sessions.Load(ctx, sid)
}

// Logout destroys the session behind token. Unknown or invalid tokens are
// ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	sid, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}
