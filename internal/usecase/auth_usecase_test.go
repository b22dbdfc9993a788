package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobhunt/internal/config"
	"jobhunt/internal/pkg/jwt"
	ucauth "jobhunt/internal/usecase/auth"
)

func newTestAuth() (*Auth, *fakeUserRepo, *jwt.HMACService) {
	users := newFakeUserRepo()
	svc := jwt.NewHMACService(config.JWTConfig{
		AccessSecret:     "a",
		RefreshSecret:    "r",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	})
	return NewAuthUsecase(users, svc), users, svc
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	uc, _, svc := newTestAuth()
	ctx := context.Background()

	usr, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{Name: "Ana", Email: " Ana@X.io ", Password: "password1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "ana@x.io" || usr.Name != "Ana" || usr.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected tokens")
	}

	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Name: "Ana", Email: "ana@x.io", Password: "password1"}); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	if _, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "ana@x.io", Password: "wrong-password"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "ana@x.io", Password: "password1"}); err != nil {
		t.Fatalf("unexpected login err: %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("unexpected refresh err: %v", err)
	}
	claims, err := svc.ValidateToken(newAccess)
	if err != nil || claims.UserID != usr.ID {
		t.Fatalf("unexpected claims %+v err=%v", claims, err)
	}
	if newRefresh == "" {
		t.Fatalf("expected rotated refresh token")
	}

	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc, _, _ := newTestAuth()
	cases := []ucauth.RegisterInput{
		{Name: "", Email: "a@b.c", Password: "password1"},
		{Name: "A", Email: "", Password: "password1"},
		{Name: "A", Email: "no-at-sign", Password: "password1"},
		{Name: "A", Email: "a@b.c", Password: "short"},
	}
	for i, in := range cases {
		if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ucauth.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}
