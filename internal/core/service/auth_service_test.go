package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestAuthService_Validate_MissingCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{"alice", ""},
		{"", ""},
	} {
		if _, err := svc.Validate(context.Background(), tc.username, tc.password); !errors.Is(err, domain.ErrMissingCredentials) {
			t.Fatalf("Validate(%q, %q) = %v, want ErrMissingCredentials", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Validate_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Validate(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Validate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	_, _ = repo.Create(context.Background(), &domain.User{Username: "alice", Password: "pw1"})
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Validate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
}

func TestAuthService_Validate_Success(t *testing.T) {
	repo := newStubUserRepo()
	// Stored flag is false; a successful login still yields an administrator.
	_, _ = repo.Create(context.Background(), &domain.User{Username: "alice", Password: "pw1", IsAdmin: false})
	svc := NewAuthService(repo, zerolog.Nop())

	user, err := svc.Validate(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !user.IsAdmin {
		t.Fatalf("expected forced admin flag")
	}
}

func TestAuthService_Validate_PasswordIsCaseSensitive(t *testing.T) {
	repo := newStubUserRepo()
	_, _ = repo.Create(context.Background(), &domain.User{Username: "alice", Password: "Secret"})
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Validate(context.Background(), "alice", "secret"); !errors.Is(err, domain.ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
}
