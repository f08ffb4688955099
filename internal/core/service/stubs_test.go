package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[uint]*domain.User
	nextID uint
	err    error // if set, every call returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uint]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (uint, error) {
	if r.err != nil {
		return 0, r.err
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return 0, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	clone := *u
	clone.ID = r.nextID
	r.byID[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubSessionRepo struct {
	users    *stubUserRepo
	sessions []*domain.Session
	deleted  []string
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	clone := *s
	clone.ID = uint(len(r.sessions) + 1)
	r.sessions = append(r.sessions, &clone)
	s.ID = clone.ID
	return nil
}

func (r *stubSessionRepo) FindByToken(ctx context.Context, token string) (*domain.Session, *domain.User, error) {
	for _, s := range r.sessions {
		if s.Token == token {
			u, err := r.users.FindByID(ctx, s.UserID)
			if err != nil {
				return nil, nil, domain.ErrInvalidSession
			}
			clone := *s
			return &clone, u, nil
		}
	}
	return nil, nil, domain.ErrInvalidSession
}

func (r *stubSessionRepo) DeleteByToken(_ context.Context, token string) error {
	r.deleted = append(r.deleted, token)
	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if s.Token != token {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return nil
}

func (r *stubSessionRepo) Latest(_ context.Context) (*domain.Session, error) {
	if len(r.sessions) == 0 {
		return nil, nil
	}
	clone := *r.sessions[len(r.sessions)-1]
	return &clone, nil
}

type stubCache struct {
	entries   map[string]*domain.User
	getErr    error
	deleteErr error
	gets      int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.User)}
}

func (c *stubCache) Get(_ context.Context, token string) (*domain.User, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[token], nil
}

func (c *stubCache) Set(_ context.Context, token string, u *domain.User) error {
	c.entries[token] = u
	return nil
}

func (c *stubCache) Delete(_ context.Context, token string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.entries, token)
	return nil
}

type stubMemberRepo struct {
	mu      sync.Mutex
	byID    map[uint]domain.Member
	nextID  uint
	listErr error
	created []string // names in insert order
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{byID: make(map[uint]domain.Member)}
}

func (r *stubMemberRepo) List(_ context.Context, f ports.MemberFilter) ([]domain.Member, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []domain.Member{}
	for _, m := range r.byID {
		if f.Search != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id uint) (*domain.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return &m, nil
}

func (r *stubMemberRepo) Create(_ context.Context, m *domain.Member) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *m
	clone.ID = r.nextID
	r.byID[clone.ID] = clone
	r.created = append(r.created, clone.Name)
	return clone.ID, nil
}

func (r *stubMemberRepo) Update(_ context.Context, m *domain.Member) error {
	if _, ok := r.byID[m.ID]; !ok {
		return domain.ErrMemberNotFound
	}
	r.byID[m.ID] = *m
	return nil
}

func (r *stubMemberRepo) Delete(_ context.Context, id uint) error {
	delete(r.byID, id)
	return nil
}

type stubTypeRepo struct {
	types []domain.MembershipType
}

func (r *stubTypeRepo) List(_ context.Context) ([]domain.MembershipType, error) {
	return append([]domain.MembershipType{}, r.types...), nil
}

func (r *stubTypeRepo) FindByID(_ context.Context, id uint) (*domain.MembershipType, error) {
	for _, t := range r.types {
		if t.ID == id {
			clone := t
			return &clone, nil
		}
	}
	return nil, domain.ErrInvalidMembershipType
}

func (r *stubTypeRepo) Create(_ context.Context, t *domain.MembershipType) (uint, error) {
	r.types = append(r.types, *t)
	return t.ID, nil
}

func (r *stubTypeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.types)), nil
}

type stubPaymentRepo struct {
	payments   []domain.Payment
	lastFilter ports.PaymentFilter
	total      int64
	err        error
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (uint, error) {
	clone := *p
	clone.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, clone)
	return clone.ID, nil
}

func (r *stubPaymentRepo) List(_ context.Context, f ports.PaymentFilter) ([]domain.Payment, int64, error) {
	r.lastFilter = f
	if r.err != nil {
		return nil, 0, r.err
	}
	total := r.total
	if total == 0 {
		total = int64(len(r.payments))
	}
	return append([]domain.Payment{}, r.payments...), total, nil
}

func (r *stubPaymentRepo) Delete(_ context.Context, id uint) error {
	return nil
}

// stubTx runs fn directly; rollback is exercised by the store tests.
type stubTx struct{ calls int }

func (t *stubTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

var errBoom = errors.New("boom")
