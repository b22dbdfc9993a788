package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobhunt/internal/config"
	"jobhunt/internal/pkg/jwt"
	"jobhunt/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func newJWT() *jwt.HMACService {
	return jwt.NewHMACService(config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	})
}

func newApp(logger *log.Logger, h fiber.Handler, auth *AuthMiddleware) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())
	if auth != nil {
		app.Use(auth.Middleware())
	}
	app.Get("/", h)
	return app
}

func call(t *testing.T, app *fiber.App, authHeader string) (int, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var env response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, env
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		in    string
		token string
		ok    bool
	}{
		{in: "Bearer abc", token: "abc", ok: true},
		{in: "  bearer   abc ", token: "abc", ok: true},
		{in: "Basic abc"},
		{in: "Bearer "},
		{in: ""},
	}
	for _, tc := range cases {
		token, ok := BearerToken(tc.in)
		if ok != tc.ok || token != tc.token {
			t.Fatalf("BearerToken(%q): expected (%q,%v), got (%q,%v)", tc.in, tc.token, tc.ok, token, ok)
		}
	}
}

func TestAuthMiddleware(t *testing.T) {
	svc := newJWT()
	userID := uuid.New()
	access, err := svc.GenerateAccessToken(userID, "seeker@example.com")
	if err != nil {
		t.Fatalf("access token: %v", err)
	}
	refresh, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}

	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	app := newApp(logger, func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", map[string]string{"user": UserID(c).String(), "email": Email(c)})
	}, NewAuthMiddleware(svc))

	if status, _ := call(t, app, ""); status != fiber.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", status)
	}
	if status, env := call(t, app, "Bearer "+refresh); status != fiber.StatusUnauthorized || env.Message != "Invalid token" {
		t.Fatalf("refresh token: expected 401 Invalid token, got %d %+v", status, env)
	}

	status, env := call(t, app, "Bearer "+access)
	if status != fiber.StatusOK {
		t.Fatalf("access token: expected 200, got %d %+v", status, env)
	}
	data, _ := env.Data.(map[string]any)
	if data["user"] != userID.String() || data["email"] != "seeker@example.com" {
		t.Fatalf("unexpected locals: %+v", env.Data)
	}
	if !strings.Contains(logs.String(), "user="+userID.String()) {
		t.Fatalf("expected access log to carry the user id, got %q", logs.String())
	}
}

func TestErrorMiddleware_HidesServerErrors(t *testing.T) {
	var logs bytes.Buffer
	app := newApp(log.New(&logs, "", 0), func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db exploded", map[string]string{"dsn": "secret"}, errors.New("boom"))
	}, nil)

	status, env := call(t, app, "")
	if status != fiber.StatusInternalServerError || env.Message != response.MessageInternalServerError || env.Data != nil {
		t.Fatalf("expected opaque 500, got %d %+v", status, env)
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Fatalf("expected cause in logs, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), "status=500") {
		t.Fatalf("expected access log with final status, got %q", logs.String())
	}
}

func TestErrorMiddleware_FiberErrorAndPanic(t *testing.T) {
	app := newApp(log.New(&bytes.Buffer{}, "", 0), func(c fiber.Ctx) error {
		return fiber.ErrNotFound
	}, nil)
	if status, env := call(t, app, ""); status != fiber.StatusNotFound || env.Status != fiber.StatusNotFound {
		t.Fatalf("expected 404 envelope, got %d %+v", status, env)
	}

	app = newApp(log.New(&bytes.Buffer{}, "", 0), func(c fiber.Ctx) error {
		panic("unexpected")
	}, nil)
	if status, _ := call(t, app, ""); status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", status)
	}
}
