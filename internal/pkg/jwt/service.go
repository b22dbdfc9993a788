// Package jwt issues and verifies the HS256 access and refresh tokens. The
// two token types are signed with different secrets and carry their type in
// the token_type claim.
package jwt

import (
	"errors"
	"time"

	"jobhunt/internal/config"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	issuer = "jobhunt"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

type signingKey struct {
	secret []byte
	ttl    time.Duration
}

type HMACService struct {
	keys map[string]signingKey
	now  func() time.Time
}

func NewHMACService(cfg config.JWTConfig) *HMACService {
	return &HMACService{
		keys: map[string]signingKey{
			TokenTypeAccess:  {secret: []byte(cfg.AccessSecret), ttl: cfg.AccessExpiresIn},
			TokenTypeRefresh: {secret: []byte(cfg.RefreshSecret), ttl: cfg.RefreshExpiresIn},
		},
		now: time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.sign(TokenTypeAccess, userID, email)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(TokenTypeRefresh, userID, "")
}

// ValidateToken accepts either token type. The secret is chosen from the
// token_type claim, so a token re-labelled with the other type fails the
// signature check.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	_, err := parser.ParseWithClaims(tokenString, &c, func(tok *jwtlib.Token) (any, error) {
		claims, ok := tok.Claims.(*Claims)
		if !ok {
			return nil, ErrTokenInvalid
		}
		key, ok := s.key(claims.TokenType)
		if !ok {
			return nil, ErrTokenInvalid
		}
		return key.secret, nil
	})
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case err != nil:
		return Claims{}, ErrTokenInvalid
	case c.UserID == uuid.Nil:
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) sign(tokenType string, userID uuid.UUID, email string) (string, error) {
	key, ok := s.key(tokenType)
	if !ok {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(key.ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(key.secret)
}

// key returns the signing key of tokenType when it is fully configured.
func (s *HMACService) key(tokenType string) (signingKey, bool) {
	k, ok := s.keys[tokenType]
	if !ok || len(k.secret) == 0 || k.ttl <= 0 {
		return signingKey{}, false
	}
	return k, true
}
