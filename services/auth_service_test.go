package services

import (
	"errors"
	"testing"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/configs"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
)

func (f *fixture) authSvc() *AuthService {
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	return NewAuthService(f.Users, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := f.authSvc()

	in := &RegisterIn{Email: "a@example.com", Password: "secret1", FullName: "A"}
	u, err := svc.Register(in)
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.Password == "secret1" {
		t.Error("password stored in plaintext")
	}

	if _, err := svc.Register(in); !apperr.IsKind(err, apperr.Conflict) {
		t.Errorf("duplicate Register() kind = %v, want Conflict", apperr.KindOf(err))
	}

	token, got, err := svc.Login("a@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token == "" {
		t.Error("login should issue a token")
	}
	if got.ID != u.ID {
		t.Errorf("login user = %d, want %d", got.ID, u.ID)
	}

	if _, _, err := svc.Login("a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := newFixture(t)
	svc := f.authSvc()

	u, err := svc.Register(&RegisterIn{Email: "a@example.com", Password: "secret1", FullName: "A"})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	// แอดมินปิด account
	u.IsActive = false
	if err := f.Users.Save(u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if _, _, err := svc.Login("a@example.com", "secret1"); !apperr.IsKind(err, apperr.Forbidden) {
		t.Errorf("disabled Login() kind = %v, want Forbidden", apperr.KindOf(err))
	}

	// เปิดกลับแล้วเข้าได้ตามเดิม
	u.IsActive = true
	if err := f.Users.Save(u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if _, _, err := svc.Login("a@example.com", "secret1"); err != nil {
		t.Errorf("reactivated Login() error = %v, want nil", err)
	}
}

func TestListUsersPaged(t *testing.T) {
	f := newFixture(t)
	f.user(t, "a@example.com")
	f.user(t, "b@example.com")
	f.user(t, "c@example.com")

	page, err := f.Users.List(2, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("first page = %d users, want 2", len(page))
	}
	rest, err := f.Users.List(2, 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("second page = %d users, want 1", len(rest))
	}
	if page[0].ID >= page[1].ID || page[1].ID >= rest[0].ID {
		t.Error("listing should be ordered by id")
	}
}
