package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

func newTestAuthService(opts AuthOptions) (*AuthService, *stubUserRepo, *stubSessionRepo) {
	users := newStubUserRepo()
	sessions := &stubSessionRepo{users: users}
	opts.BcryptCost = bcrypt.MinCost
	return NewAuthService(users, sessions, opts, zerolog.Nop()), users, sessions
}

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	svc, users, _ := newTestAuthService(AuthOptions{})
	ctx := context.Background()

	id, err := svc.Register(ctx, "Alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	stored, _ := users.FindByID(ctx, id)
	if stored.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	first, err := svc.Login(ctx, "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if first.User.ID != id || first.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", first.User)
	}
	second, err := svc.Login(ctx, "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("second Login returned error: %v", err)
	}
	if first.SessionToken == "" || first.SessionToken == second.SessionToken {
		t.Fatalf("expected distinct non-empty tokens, got %q and %q", first.SessionToken, second.SessionToken)
	}
	if len(first.SessionToken) != 2*sessionTokenBytes {
		t.Fatalf("unexpected token length %d", len(first.SessionToken))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(AuthOptions{})

	for _, tc := range []struct{ email, password string }{{"", "pw"}, {"  ", "pw"}, {"a@b.c", ""}} {
		_, err := svc.Register(context.Background(), "x", tc.email, tc.password)
		if domain.KindOf(err) != domain.KindValidation {
			t.Fatalf("Register(%q, %q): expected validation error, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(AuthOptions{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "dup@example.com", "pw"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	_, err := svc.Register(ctx, "", "dup@example.com", "other")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if domain.MessageOf(err) != "Registration failed. Email might already exist." {
		t.Fatalf("unexpected message %q", domain.MessageOf(err))
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, sessions := newTestAuthService(AuthOptions{})
	ctx := context.Background()
	if _, err := svc.Register(ctx, "", "alice@example.com", "right"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "alice@example.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "right")
	_, empty := svc.Login(ctx, "", "")

	for _, err := range []error{wrongPassword, unknownEmail, empty} {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("failed logins must not create sessions, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Login_UnknownEmailStillComparesHash(t *testing.T) {
	svc, _, _ := newTestAuthService(AuthOptions{})
	ctx := context.Background()
	_, _ = svc.Register(ctx, "", "alice@example.com", "right")

	var compared [][]byte
	svc.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	if _, err := svc.Login(ctx, "nobody@example.com", "right"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(compared) != 2 {
		t.Fatalf("expected one hash comparison per failed login, got %d", len(compared))
	}
	if len(compared[0]) == 0 {
		t.Fatalf("unknown email should be compared against a real bcrypt hash")
	}
	if cost, err := bcrypt.Cost(compared[0]); err != nil || cost != bcrypt.MinCost {
		t.Fatalf("dummy hash should use the configured cost, got %d (%v)", cost, err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, users, _ := newTestAuthService(AuthOptions{})
	users.err = domain.StoreFailure("find user", errBoom)

	_, err := svc.Login(context.Background(), "alice@example.com", "pw")
	if domain.KindOf(err) != domain.KindStore {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	svc, _, sessions := newTestAuthService(AuthOptions{
		NewToken: func() (string, error) { return "", errBoom },
	})
	ctx := context.Background()
	if _, err := svc.Register(ctx, "", "alice@example.com", "pw"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(ctx, "alice@example.com", "pw")
	if domain.MessageOf(err) != domain.ErrSessionCreation.Message {
		t.Fatalf("expected session creation failure, got %v", err)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session should be stored")
	}
}

func TestAuthService_CheckSessionAndLogout(t *testing.T) {
	svc, _, _ := newTestAuthService(AuthOptions{})
	ctx := context.Background()
	id, _ := svc.Register(ctx, "Alice", "alice@example.com", "pw")
	res, _ := svc.Login(ctx, "alice@example.com", "pw")

	user, err := svc.CheckSession(ctx, res.SessionToken)
	if err != nil {
		t.Fatalf("CheckSession returned error: %v", err)
	}
	if user.ID != id {
		t.Fatalf("expected user %d, got %d", id, user.ID)
	}

	if _, err := svc.CheckSession(ctx, "unknown"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for unknown token, got %v", err)
	}
	if _, err := svc.CheckSession(ctx, ""); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for empty token, got %v", err)
	}

	if err := svc.Logout(ctx, res.SessionToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.CheckSession(ctx, res.SessionToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}
	if err := svc.Logout(ctx, res.SessionToken); err != nil {
		t.Fatalf("second Logout should be a no-op, got %v", err)
	}
}

func TestAuthService_SessionTTL(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, _, sessions := newTestAuthService(AuthOptions{
		SessionTTL: time.Hour,
		Now:        func() time.Time { return now },
	})
	ctx := context.Background()
	_, _ = svc.Register(ctx, "", "alice@example.com", "pw")
	res, _ := svc.Login(ctx, "alice@example.com", "pw")

	now = now.Add(59 * time.Minute)
	if _, err := svc.CheckSession(ctx, res.SessionToken); err != nil {
		t.Fatalf("session should still be valid: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := svc.CheckSession(ctx, res.SessionToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected expired session to be rejected, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expired session should be purged")
	}
}

func TestAuthService_CheckSession_UsesCache(t *testing.T) {
	cache := newStubCache()
	svc, _, sessions := newTestAuthService(AuthOptions{Cache: cache})
	ctx := context.Background()
	_, _ = svc.Register(ctx, "Alice", "alice@example.com", "pw")
	res, _ := svc.Login(ctx, "alice@example.com", "pw")

	if _, err := svc.CheckSession(ctx, res.SessionToken); err != nil {
		t.Fatalf("CheckSession returned error: %v", err)
	}
	if cache.entries[res.SessionToken] == nil {
		t.Fatalf("expected the user to be cached after a store hit")
	}

	// Served from cache even though the store row is gone.
	sessions.sessions = nil
	if _, err := svc.CheckSession(ctx, res.SessionToken); err != nil {
		t.Fatalf("expected cache hit, got %v", err)
	}

	if err := svc.Logout(ctx, res.SessionToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, ok := cache.entries[res.SessionToken]; ok {
		t.Fatalf("logout should evict the cache entry")
	}
}

func TestAuthService_CheckSession_CacheFailureFallsBack(t *testing.T) {
	cache := newStubCache()
	cache.getErr = errBoom
	svc, _, _ := newTestAuthService(AuthOptions{Cache: cache})
	ctx := context.Background()
	_, _ = svc.Register(ctx, "", "alice@example.com", "pw")
	res, _ := svc.Login(ctx, "alice@example.com", "pw")

	if _, err := svc.CheckSession(ctx, res.SessionToken); err != nil {
		t.Fatalf("expected store fallback, got %v", err)
	}
	if cache.gets != 1 {
		t.Fatalf("expected one cache lookup, got %d", cache.gets)
	}
}

func TestAuthService_Logout_CacheEvictionFailure(t *testing.T) {
	cache := newStubCache()
	svc, _, sessions := newTestAuthService(AuthOptions{Cache: cache})
	ctx := context.Background()
	_, _ = svc.Register(ctx, "", "a@x.com", "pw")
	res, _ := svc.Login(ctx, "a@x.com", "pw")
	if _, err := svc.CheckSession(ctx, res.SessionToken); err != nil {
		t.Fatalf("CheckSession returned error: %v", err)
	}

	cache.deleteErr = errBoom
	err := svc.Logout(ctx, res.SessionToken)
	if domain.KindOf(err) != domain.KindStore {
		t.Fatalf("expected store error when eviction fails, got %v", err)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("a failed logout must keep the session row")
	}

	cache.deleteErr = nil
	if err := svc.Logout(ctx, res.SessionToken); err != nil {
		t.Fatalf("retried Logout returned error: %v", err)
	}
	if _, err := svc.CheckSession(ctx, res.SessionToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}
}

func TestAuthService_CheckSession_CacheIgnoredWithTTL(t *testing.T) {
	cache := newStubCache()
	svc, _, _ := newTestAuthService(AuthOptions{Cache: cache, SessionTTL: time.Hour})
	ctx := context.Background()
	_, _ = svc.Register(ctx, "", "alice@example.com", "pw")
	res, _ := svc.Login(ctx, "alice@example.com", "pw")

	if _, err := svc.CheckSession(ctx, res.SessionToken); err != nil {
		t.Fatalf("CheckSession returned error: %v", err)
	}
	if cache.gets != 0 {
		t.Fatalf("cache must not be read when sessions expire, got %d reads", cache.gets)
	}
}

func TestAuthService_Profile(t *testing.T) {
	svc, _, _ := newTestAuthService(AuthOptions{})
	ctx := context.Background()
	id, _ := svc.Register(ctx, "Alice", "alice@example.com", "pw")

	user, err := svc.Profile(ctx, id)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("unexpected name %q", user.Name)
	}
	if _, err := svc.Profile(ctx, id+1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ActiveSession(t *testing.T) {
	n := 0
	svc, _, _ := newTestAuthService(AuthOptions{
		NewToken: func() (string, error) { n++; return fmt.Sprintf("token-%d", n), nil },
	})
	ctx := context.Background()

	got, err := svc.ActiveSession(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected no active session, got %+v, %v", got, err)
	}

	id, _ := svc.Register(ctx, "", "alice@example.com", "pw")
	_, _ = svc.Login(ctx, "alice@example.com", "pw")
	_, _ = svc.Login(ctx, "alice@example.com", "pw")

	got, err = svc.ActiveSession(ctx)
	if err != nil {
		t.Fatalf("ActiveSession returned error: %v", err)
	}
	if got.Token != "token-2" || got.UserID != id {
		t.Fatalf("expected the latest session, got %+v", got)
	}
}
