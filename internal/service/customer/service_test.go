package customer

import (
	"context"
	"errors"
	"testing"

	"shopcart/internal/domain"
	tokenrepo "shopcart/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

type stubCustomerRepo struct {
	created    *domain.Customer
	createErr  error
	byEmail    *domain.Customer
	byEmailErr error
	byID       *domain.Customer
	byIDErr    error
}

func (s *stubCustomerRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := c
	out.ID = "cust-id"
	s.created = &out
	return &out, nil
}

func (s *stubCustomerRepo) GetByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubCustomerRepo) GetByID(_ context.Context, _ string) (*domain.Customer, error) {
	return s.byID, s.byIDErr
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: map[string]tokenrepo.Token{}}
}

func (m *memoryTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := m.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *memoryTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memoryTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(m.tokens, token)
	return nil
}

func TestSignupValidation(t *testing.T) {
	svc := New(&stubCustomerRepo{}, newMemoryTokenRepo())

	if _, err := svc.Signup(context.Background(), SignupInput{Email: "not-an-email", Password: "Abcdefg1"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad email, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "short"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for short password, got %v", err)
	}
}

func TestSignupHashesPassword(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := New(repo, newMemoryTokenRepo())

	c, err := svc.Signup(context.Background(), SignupInput{Email: "User@Example.com", Password: "Abcdefg1"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if c.Email != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", c.Email)
	}
	if repo.created.PasswordHash == "Abcdefg1" || repo.created.PasswordHash == "" {
		t.Fatalf("password stored unhashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("Abcdefg1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := New(&stubCustomerRepo{createErr: domain.ErrAlreadyExists}, newMemoryTokenRepo())
	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "Abcdefg1"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Abcdefg1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cust := &domain.Customer{ID: "cust-id", Email: "a@b.com", PasswordHash: string(hash)}
	repo := &stubCustomerRepo{byEmail: cust, byID: cust}
	svc := New(repo, newMemoryTokenRepo())

	got, access, refresh, err := svc.Login(context.Background(), "a@b.com", "Abcdefg1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != "cust-id" || access == "" || refresh == "" || access == refresh {
		t.Fatalf("unexpected login result: %+v access=%q refresh=%q", got, access, refresh)
	}

	resolved, err := svc.LookupByToken(context.Background(), access)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if resolved.ID != "cust-id" {
		t.Fatalf("unexpected customer: %+v", resolved)
	}

	// Refresh tokens must not authenticate requests.
	if _, err := svc.LookupByToken(context.Background(), refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for refresh token, got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Abcdefg1"), bcrypt.DefaultCost)
	repo := &stubCustomerRepo{byEmail: &domain.Customer{ID: "cust-id", PasswordHash: string(hash)}}
	svc := New(repo, newMemoryTokenRepo())

	if _, _, _, err := svc.Login(context.Background(), "a@b.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	svc = New(&stubCustomerRepo{byEmailErr: domain.ErrNotFound}, newMemoryTokenRepo())
	if _, _, _, err := svc.Login(context.Background(), "nobody@b.com", "Abcdefg1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestLookupByTokenUnknown(t *testing.T) {
	svc := New(&stubCustomerRepo{}, newMemoryTokenRepo())
	if _, err := svc.LookupByToken(context.Background(), "no-such-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
