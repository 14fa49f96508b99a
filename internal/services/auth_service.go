package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"javaterra/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

var errInvalidCredentials = domain.UnauthorizedError{Msg: "Invalid credentials"}

// AdminClaims is the JWT payload of an admin session.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService checks the single configured admin account and issues HS256 tokens.
type AuthService struct {
	Username     string
	PasswordHash []byte
	Secret       []byte
	TTL          time.Duration
	Now          func() time.Time
}

// NewAuthService hashes the configured password once at startup.
// cost <= 0 uses bcrypt.DefaultCost.
func NewAuthService(username, password, secret string, ttl time.Duration, cost int) (AuthService, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AuthService{}, fmt.Errorf("admin username/password belum diset")
	}
	if secret == "" {
		return AuthService{}, fmt.Errorf("jwt secret belum diset")
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return AuthService{}, fmt.Errorf("hash admin password: %w", err)
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return AuthService{
		Username:     username,
		PasswordHash: hash,
		Secret:       []byte(secret),
		TTL:          ttl,
	}, nil
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login returns a signed token and its expiry.
func (s AuthService) Login(username, password string) (string, time.Time, error) {
	if len(s.PasswordHash) == 0 {
		return "", time.Time{}, errInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", time.Time{}, errInvalidCredentials
	}

	now := s.now()
	exp := now.Add(s.TTL)
	claims := AdminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return token, exp, nil
}

// Verify parses an admin token. Any failure is an UnauthorizedError.
func (s AuthService) Verify(token string) (AdminClaims, error) {
	var claims AdminClaims
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &claims,
		func(t *jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AdminClaims{}, domain.UnauthorizedError{Msg: "Session expired"}
		}
		return AdminClaims{}, domain.UnauthorizedError{Msg: "Unauthorized"}
	}
	if !parsed.Valid || claims.Role != adminRole || claims.Subject != s.Username {
		return AdminClaims{}, domain.UnauthorizedError{Msg: "Unauthorized"}
	}
	return claims, nil
}
