package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users map[string]User
}

func (f *fakeRepo) GetUserByMobile(_ context.Context, mobile string) (User, error) {
	u, ok := f.users[mobile]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func repoWithAgent(t *testing.T, mobile, password string) *fakeRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &fakeRepo{users: map[string]User{
		mobile: {
			UID:          "u-1",
			AgentID:      "42",
			FullName:     "Asha Rao",
			Mobile:       mobile,
			Role:         RoleAgent,
			PasswordHash: string(hash),
			Payout:       "10",
		},
	}}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc := NewService(repoWithAgent(t, "9999900001", "s3cret"), "test-secret")

	result, err := svc.Login(context.Background(), LoginRequest{Mobile: "9999900001", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a session token")
	}
	if result.User.AgentID != "42" || result.User.Role != RoleAgent {
		t.Errorf("unexpected user: %+v", result.User)
	}

	uid, role, err := svc.VerifyToken(result.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if uid != "u-1" || role != RoleAgent {
		t.Errorf("unexpected claims: uid=%q role=%q", uid, role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(repoWithAgent(t, "9999900001", "s3cret"), "test-secret")

	_, err := svc.Login(context.Background(), LoginRequest{Mobile: "9999900001", Password: "nope"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownMobile(t *testing.T) {
	svc := NewService(&fakeRepo{}, "test-secret")

	_, err := svc.Login(context.Background(), LoginRequest{Mobile: "0000000000", Password: "s3cret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := NewService(&fakeRepo{}, "test-secret")

	if _, err := svc.Login(context.Background(), LoginRequest{Mobile: "9"}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestVerifyToken_RejectsForeignSecret(t *testing.T) {
	issuer := NewService(repoWithAgent(t, "9999900001", "s3cret"), "secret-a")
	verifier := NewService(&fakeRepo{}, "secret-b")

	result, err := issuer.Login(context.Background(), LoginRequest{Mobile: "9999900001", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := verifier.VerifyToken(result.Token); err == nil {
		t.Fatalf("expected verification to fail under a different secret")
	}
}
