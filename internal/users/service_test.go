package users

import (
	"context"
	"errors"
	"testing"
)

func seedUser(t *testing.T, repo *MemoryRepo, email, password, role string) {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := repo.Upsert(context.Background(), User{
		ID:           "user-" + role,
		Email:        email,
		Name:         "Test User",
		Role:         role,
		PasswordHash: hash,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	repo := NewMemoryRepo()
	seedUser(t, repo, "hr@example.com", "s3cret", "hr")
	svc := NewService(repo)

	user, err := svc.VerifyCredentials(context.Background(), "hr@example.com", "s3cret", "hr")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	if user.Role != "hr" {
		t.Fatalf("expected hr role, got %q", user.Role)
	}

	// Email lookup is case-insensitive.
	if _, err := svc.VerifyCredentials(context.Background(), "HR@Example.com", "s3cret", "hr"); err != nil {
		t.Fatalf("expected case-insensitive email lookup, got %v", err)
	}
}

func TestVerifyCredentialsRejectsBadPassword(t *testing.T) {
	repo := NewMemoryRepo()
	seedUser(t, repo, "hr@example.com", "s3cret", "hr")
	svc := NewService(repo)

	if _, err := svc.VerifyCredentials(context.Background(), "hr@example.com", "wrong", "hr"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyCredentialsRejectsRoleMismatch(t *testing.T) {
	repo := NewMemoryRepo()
	seedUser(t, repo, "user@example.com", "s3cret", "user")
	svc := NewService(repo)

	if _, err := svc.VerifyCredentials(context.Background(), "user@example.com", "s3cret", "admin"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyCredentialsUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.VerifyCredentials(context.Background(), "nobody@example.com", "s3cret", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
