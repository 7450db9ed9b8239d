package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials signals wrong mobile or password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrMissingCredentials signals an incomplete login body.
	ErrMissingCredentials = errors.New("auth: mobile and password are required")
)

// Service handles login for agents and employees.
type Service struct {
	repo      Repository
	jwtSecret []byte
}

// LoginResult bundles the session token and the user returned after login.
// Agents carry the full profile block; employees carry the short one.
type LoginResult struct {
	Token string
	User  User
}

func NewService(repo Repository, jwtSecret string) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login verifies credentials against the stored hash and issues a JWT.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	if req.Mobile == "" || req.Password == "" {
		return LoginResult{}, ErrMissingCredentials
	}

	user, err := s.repo.GetUserByMobile(ctx, req.Mobile)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.UID, user.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{Token: token, User: user}, nil
}

// VerifyToken validates a session JWT and returns the subject and role.
func (s *Service) VerifyToken(tokenString string) (string, Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("auth: parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("auth: invalid token")
	}
	uid, ok := claims["uid"].(string)
	if !ok {
		return "", "", fmt.Errorf("auth: invalid uid in token")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", fmt.Errorf("auth: invalid role in token")
	}

	return uid, Role(roleStr), nil
}

func (s *Service) generateToken(uid string, role Role) (string, error) {
	claims := jwt.MapClaims{
		"uid":  uid,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
