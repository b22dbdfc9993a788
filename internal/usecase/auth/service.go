// Package auth holds the credential rules: who may register and how a
// login is verified. Token issuing lives in the usecase layer.
package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"jobhunt/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// validate trims the input and lower-cases the email. The password is kept
// as typed.
func (in RegisterInput) validate() (RegisterInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	switch {
	case in.Name == "":
		return in, ErrInvalidInput
	case !validEmail(in.Email):
		return in, ErrInvalidInput
	case len(strings.TrimSpace(in.Password)) < minPasswordLength:
		return in, ErrInvalidInput
	}
	return in, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users user.Repository
	cost  int
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	in, err := in.validate()
	if err != nil {
		return user.User{}, err
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if taken {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	id := uuid.New()
	err = s.users.CreateUser(ctx, user.User{ID: id, Name: in.Name, Email: in.Email, PasswordHash: string(hash)})
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		// lost a race with a concurrent registration
		return user.User{}, ErrEmailAlreadyRegistered
	case err != nil:
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return withoutSecret(created), nil
}

// Login answers ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return user.User{}, ErrInvalidCredentials
	case err != nil:
		return user.User{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return withoutSecret(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail accepts a bare address only, no display name.
func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func withoutSecret(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
