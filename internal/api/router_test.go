package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type fakeAuth struct{}

func (fakeAuth) Register(context.Context, string, string, string) (uint, error) {
	return 0, domain.ErrDuplicateEmail
}

func (fakeAuth) Login(_ context.Context, email, _ string) (*ports.LoginResult, error) {
	return nil, domain.ErrInvalidCredentials
}

func (fakeAuth) CheckSession(_ context.Context, token string) (*domain.User, error) {
	if token == "good" {
		return &domain.User{ID: 1, Email: "alice@example.com"}, nil
	}
	return nil, domain.ErrInvalidSession
}

func (fakeAuth) Logout(context.Context, string) error { return nil }

func (fakeAuth) Profile(context.Context, uint) (*domain.User, error) {
	return &domain.User{ID: 1}, nil
}

func (fakeAuth) ActiveSession(context.Context) (*domain.Session, error) {
	return &domain.Session{UserID: 1, Token: "good"}, nil
}

type fakeMembership struct{}

func (fakeMembership) ListMembers(context.Context, ports.MemberFilter) ([]domain.Member, error) {
	return []domain.Member{{ID: 1, Name: "Bob"}}, nil
}

func (fakeMembership) ListMembershipTypes(context.Context) ([]domain.MembershipType, error) {
	return []domain.MembershipType{}, nil
}

func (fakeMembership) AddMember(context.Context, ports.MemberInput) (uint, error) {
	return 0, domain.ErrMissingMembershipType
}

func (fakeMembership) UpdateMember(context.Context, uint, ports.MemberInput) error {
	return domain.StoreFailure("update member", errors.New("database is locked"))
}

func (fakeMembership) DeleteMember(context.Context, uint) error { return errors.New("boom") }

func newTestRouter(desktop bool) *echo.Echo {
	return NewRouter(Services{
		Auth:       fakeAuth{},
		Membership: fakeMembership{},
	}, Options{
		DesktopMode: desktop,
		LoginRate:   0.001,
		LoginBurst:  2,
		Registerer:  prometheus.NewRegistry(),
	}, zerolog.Nop())
}

func do(e *echo.Echo, method, target, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.RemoteAddr = "127.0.0.1:5000"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	e := newTestRouter(false)

	cases := []struct {
		name    string
		method  string
		target  string
		body    string
		token   string
		status  int
		message string
	}{
		{"duplicate email", http.MethodPost, "/auth/register", `{"email":"a@b.c","password":"x"}`, "", http.StatusConflict, "Registration failed. Email might already exist."},
		{"bad login", http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"x"}`, "", http.StatusUnauthorized, "Invalid email or password."},
		{"no bearer", http.MethodGet, "/members", "", "", http.StatusUnauthorized, "Invalid session."},
		{"bad bearer", http.MethodGet, "/members", "", "stale", http.StatusUnauthorized, "Invalid session."},
		{"missing type", http.MethodPost, "/members", `{"name":"Bob"}`, "good", http.StatusBadRequest, "Invalid membership type ID."},
		{"store failure", http.MethodPut, "/members/1", `{"name":"Bob"}`, "good", http.StatusServiceUnavailable, "Database query failed."},
		{"unexpected", http.MethodDelete, "/members/1", "", "good", http.StatusInternalServerError, "Internal error."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := do(e, tc.method, tc.target, tc.body, tc.token)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, rec.Code, rec.Body.String())
			}
			if resp["success"] != false || resp["message"] != tc.message {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
		})
	}
}

func TestRouter_AuthenticatedRead(t *testing.T) {
	e := newTestRouter(false)

	rec, resp := do(e, http.MethodGet, "/members", "", "good")
	if rec.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatal("expected a request id header")
	}
}

func TestRouter_ActiveSessionOnlyInDesktopMode(t *testing.T) {
	rec, _ := do(newTestRouter(false), http.MethodGet, "/auth/session/active", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside desktop mode, got %d", rec.Code)
	}

	rec, resp := do(newTestRouter(true), http.MethodGet, "/auth/session/active", "", "")
	if rec.Code != http.StatusOK || resp["sessionToken"] != "good" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_LoginRateLimited(t *testing.T) {
	e := newTestRouter(false)
	body := `{"email":"a@b.c","password":"x"}`

	for i := 0; i < 2; i++ {
		if rec, _ := do(e, http.MethodPost, "/auth/login", body, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, rec.Code)
		}
	}
	rec, resp := do(e, http.MethodPost, "/auth/login", body, "")
	if rec.Code != http.StatusTooManyRequests || resp["success"] != false {
		t.Fatalf("expected 429 envelope, got %d %s", rec.Code, rec.Body.String())
	}
}
