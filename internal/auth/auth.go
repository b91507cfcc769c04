package auth

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/autotrackdev/autotrack-rental/internal/models"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrSessionRevoked = errors.New("session revoked")
	ErrNoSession      = errors.New("no session")
)

// Session is the explicit credential returned by a successful login. Every
// gated rental operation takes one as an argument; there is no
// process-wide current user.
type Session struct {
	Token  string
	Claims *models.Claims
}

// Service issues and verifies session tokens.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration

	mu      sync.Mutex
	revoked map[string]struct{} // session IDs invalidated by logout
}

// NewService creates a new session token service
func NewService() (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	expStr := os.Getenv("JWT_EXPIRY")
	exp := 24 * time.Hour // default 24 hours
	if expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  exp,
		revoked:   make(map[string]struct{}),
	}, nil
}

// IssueSession signs a token carrying the user's identity and role and
// wraps it in a Session.
func (s *Service) IssueSession(user *models.User) (*Session, error) {
	sessionID := uuid.NewString()
	now := time.Now()
	exp := now.Add(s.tokenExp)

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"name":     user.Name,
		"role":     string(user.Role),
		"jti":      sessionID,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &Session{
		Token: signed,
		Claims: &models.Claims{
			UserID:    user.ID,
			Username:  user.Username,
			Name:      user.Name,
			Role:      user.Role,
			SessionID: sessionID,
			Exp:       exp.Unix(),
		},
	}, nil
}

// Verify validates the session's token and returns the identity it
// carries. Revoked sessions fail even if the token itself is still valid.
func (s *Service) Verify(sess *Session) (*models.Claims, error) {
	if sess == nil {
		return nil, ErrNoSession
	}

	claims, err := s.ValidateToken(sess.Token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.SessionID]
	s.mu.Unlock()
	if revoked {
		return nil, ErrSessionRevoked
	}

	return claims, nil
}

// Revoke invalidates the session unconditionally. Revoking a nil or
// already-revoked session is a no-op.
func (s *Service) Revoke(sess *Session) {
	if sess == nil || sess.Claims == nil {
		return
	}
	s.mu.Lock()
	s.revoked[sess.Claims.SessionID] = struct{}{}
	s.mu.Unlock()
}

// ValidateToken validates a signed token and returns the claims
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	name, _ := claims["name"].(string)

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	sessionID, ok := claims["jti"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		UserID:    userID,
		Username:  username,
		Name:      name,
		Role:      models.Role(roleStr),
		SessionID: sessionID,
		Exp:       int64(exp),
	}, nil
}
