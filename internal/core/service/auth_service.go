package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

const sessionTokenBytes = 32

// SessionCache abstracts the optional token lookup cache (Redis).
type SessionCache interface {
	Get(ctx context.Context, token string) (*domain.User, error) // nil, nil on miss
	Set(ctx context.Context, token string, user *domain.User) error
	Delete(ctx context.Context, token string) error
}

// AuthOptions tunes hashing cost and session lifetime.
type AuthOptions struct {
	BcryptCost int
	SessionTTL time.Duration // zero keeps sessions until logout
	Cache      SessionCache  // optional
	Now        func() time.Time
	NewToken   func() (string, error)
}

// AuthService implements registration, login and session checks.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	opts     AuthOptions
	log      zerolog.Logger

	// dummyHash is compared against when the email is unknown so both login
	// failures cost one bcrypt comparison.
	dummyHash []byte
	compare   func(hash, password []byte) error
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, opts AuthOptions, log zerolog.Logger) *AuthService {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewToken == nil {
		opts.NewToken = newSessionToken
	}
	// An error here only leaves dummyHash empty; the comparison then fails fast.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), opts.BcryptCost)
	return &AuthService{
		users:     users,
		sessions:  sessions,
		opts:      opts,
		log:       log,
		dummyHash: dummy,
		compare:   bcrypt.CompareHashAndPassword,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (uint, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return 0, domain.Validation("Email and password are required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return 0, &domain.Error{Kind: domain.KindInternal, Message: domain.ErrHashingFailure.Message, Err: err}
	}

	id, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			s.log.Warn().Msg("registration rejected: email already registered")
		}
		return 0, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Uint("user_id", id).Msg("user registered")
	return id, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.compare(s.dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if s.compare([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.opts.NewToken()
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindInternal, Message: domain.ErrSessionCreation.Message, Err: err}
	}

	session := &domain.Session{UserID: user.ID, Token: token, CreatedAt: s.opts.Now().UTC()}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("login: create session: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("session created")
	return &ports.LoginResult{User: user, SessionToken: token}, nil
}

// CheckSession resolves a token to its user. The cache is consulted first;
// cache failures fall through to the store.
func (s *AuthService) CheckSession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	// Cached entries are only trusted when sessions never expire; otherwise the
	// store row is needed for its creation time.
	if s.opts.Cache != nil && s.opts.SessionTTL <= 0 {
		user, err := s.opts.Cache.Get(ctx, token)
		if err != nil {
			s.log.Warn().Err(err).Msg("session cache lookup failed")
		} else if user != nil {
			return user, nil
		}
	}

	session, user, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(s.opts.SessionTTL, s.opts.Now()) {
		if delErr := s.sessions.DeleteByToken(ctx, token); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to purge expired session")
		}
		return nil, domain.ErrInvalidSession
	}

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Set(ctx, token, user); err != nil {
			s.log.Warn().Err(err).Msg("session cache store failed")
		}
	}
	return user, nil
}

// Logout evicts the cached session before deleting the row. A failed eviction
// aborts the logout so a cached entry never outlives its session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.opts.Cache != nil {
		if err := s.opts.Cache.Delete(ctx, token); err != nil {
			s.log.Error().Err(err).Msg("session cache eviction failed")
			return domain.StoreFailure("logout: evict session", err)
		}
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Msg("session closed")
	return nil
}

// Profile returns the public view of a user.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ActiveSession returns the most recent session, or nil when nobody is signed in.
func (s *AuthService) ActiveSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("active session: %w", err)
	}
	if session != nil && session.Expired(s.opts.SessionTTL, s.opts.Now()) {
		return nil, nil
	}
	return session, nil
}

// newSessionToken returns 256 bits from crypto/rand, hex encoded.
func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
