package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type stubAuthService struct {
	registerFn      func(ctx context.Context, name, email, password string) (uint, error)
	loginFn         func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	checkFn         func(ctx context.Context, token string) (*domain.User, error)
	logoutFn        func(ctx context.Context, token string) error
	profileFn       func(ctx context.Context, id uint) (*domain.User, error)
	activeSessionFn func(ctx context.Context) (*domain.Session, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (uint, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CheckSession(ctx context.Context, token string) (*domain.User, error) {
	return s.checkFn(ctx, token)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Profile(ctx context.Context, id uint) (*domain.User, error) {
	return s.profileFn(ctx, id)
}

func (s *stubAuthService) ActiveSession(ctx context.Context) (*domain.Session, error) {
	return s.activeSessionFn(ctx)
}

type stubMembershipService struct {
	listFn      func(ctx context.Context, filter ports.MemberFilter) ([]domain.Member, error)
	listTypesFn func(ctx context.Context) ([]domain.MembershipType, error)
	addFn       func(ctx context.Context, in ports.MemberInput) (uint, error)
	updateFn    func(ctx context.Context, id uint, in ports.MemberInput) error
	deleteFn    func(ctx context.Context, id uint) error
}

func (s *stubMembershipService) ListMembers(ctx context.Context, filter ports.MemberFilter) ([]domain.Member, error) {
	return s.listFn(ctx, filter)
}

func (s *stubMembershipService) ListMembershipTypes(ctx context.Context) ([]domain.MembershipType, error) {
	return s.listTypesFn(ctx)
}

func (s *stubMembershipService) AddMember(ctx context.Context, in ports.MemberInput) (uint, error) {
	return s.addFn(ctx, in)
}

func (s *stubMembershipService) UpdateMember(ctx context.Context, id uint, in ports.MemberInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubMembershipService) DeleteMember(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubPaymentService struct {
	addFn    func(ctx context.Context, in ports.PaymentInput) (uint, error)
	listFn   func(ctx context.Context, in ports.ListPaymentsInput) (*ports.ListPaymentsResult, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubPaymentService) AddPayment(ctx context.Context, in ports.PaymentInput) (uint, error) {
	return s.addFn(ctx, in)
}

func (s *stubPaymentService) ListPayments(ctx context.Context, in ports.ListPaymentsInput) (*ports.ListPaymentsResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubPaymentService) DeletePayment(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context with the validator installed.
func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}
