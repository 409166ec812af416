package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

// In-memory stand-ins for the repository ports, shared by the service tests.

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by email
	nextID   int

	updateErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneAccount(account)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("acc-%d", r.nextID)
	}
	r.accounts[copy.Email] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) UpdateProfile(_ context.Context, email string, fields map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	a, ok := r.accounts[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "full_name":
			a.FullName = s
		case "panchayat":
			a.Panchayat = s
		case "ward":
			a.Ward = s
		case "occupation":
			a.Occupation = s
		case "address":
			a.Address = s
		case "bank_account_no":
			a.BankAccountNo = s
		case "ifsc_code":
			a.IFSCCode = s
		case "phone_number":
			a.PhoneNumber = s
		default:
			return fmt.Errorf("unexpected field %q reached the repository", k)
		}
	}
	return nil
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role string) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, cloneAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAccountRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

type stubProfileRepo struct {
	profiles map[string][]*domain.EligibilityProfile // keyed by user id, insertion order
	nextID   int

	insertErr error
	findErr   error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string][]*domain.EligibilityProfile)}
}

func (r *stubProfileRepo) Insert(_ context.Context, profile *domain.EligibilityProfile) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	r.nextID++
	id := fmt.Sprintf("prof-%d", r.nextID)
	clone := *profile
	clone.ID = id
	r.profiles[profile.UserID] = append(r.profiles[profile.UserID], &clone)
	return id, nil
}

func (r *stubProfileRepo) FindLatestByUser(_ context.Context, userID string) (*domain.EligibilityProfile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	subs := r.profiles[userID]
	if len(subs) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	latest := subs[0]
	for _, p := range subs[1:] {
		if !p.CreatedAt.Before(latest.CreatedAt) {
			latest = p
		}
	}
	clone := *latest
	return &clone, nil
}

type stubSchemeRepo struct {
	schemes []*domain.Scheme
	nextID  int

	findAllCalls int
	insertErr    error
}

func newStubSchemeRepo() *stubSchemeRepo {
	return &stubSchemeRepo{}
}

func (r *stubSchemeRepo) Insert(_ context.Context, scheme *domain.Scheme) (*domain.Scheme, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.nextID++
	clone := *scheme
	clone.ID = fmt.Sprintf("scheme-%d", r.nextID)
	r.schemes = append(r.schemes, &clone)
	out := clone
	return &out, nil
}

func (r *stubSchemeRepo) FindAll(_ context.Context) ([]*domain.Scheme, error) {
	r.findAllCalls++
	out := make([]*domain.Scheme, 0, len(r.schemes))
	for _, s := range r.schemes {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubSchemeRepo) FindByID(_ context.Context, id string) (*domain.Scheme, error) {
	for _, s := range r.schemes {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSchemeNotFound
}

func (r *stubSchemeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.schemes)), nil
}

type stubSchemeCache struct {
	cached []*domain.Scheme

	getErr  error
	setErr  error
	invErr  error
	getHits int
	sets    int
	invs    int
}

func (c *stubSchemeCache) Get(_ context.Context) ([]*domain.Scheme, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.cached != nil {
		c.getHits++
	}
	return c.cached, nil
}

func (c *stubSchemeCache) Set(_ context.Context, schemes []*domain.Scheme) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.cached = schemes
	return nil
}

func (c *stubSchemeCache) Invalidate(_ context.Context) error {
	if c.invErr != nil {
		return c.invErr
	}
	c.invs++
	c.cached = nil
	return nil
}

type stubApplicationRepo struct {
	apps   []*domain.Application
	nextID int

	insertErr error
	updateErr error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{}
}

func (r *stubApplicationRepo) Insert(_ context.Context, app *domain.Application) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	r.nextID++
	id := fmt.Sprintf("app-%d", r.nextID)
	clone := *app
	clone.ID = id
	r.apps = append(r.apps, &clone)
	return id, nil
}

func (r *stubApplicationRepo) FindByUser(_ context.Context, userID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmissionDate.After(out[j].SubmissionDate) })
	return out, nil
}

func (r *stubApplicationRepo) FindPending(_ context.Context) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.Status == domain.StatusPending {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmissionDate.After(out[j].SubmissionDate) })
	return out, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus, reviewer string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, a := range r.apps {
		if a.ID == id {
			a.Status = status
			a.ReviewedBy = reviewer
			return nil
		}
	}
	return domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.apps))
	r.apps = nil
	return n, nil
}

func (r *stubApplicationRepo) CountByStatus(_ context.Context, status domain.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}
