package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"pharmacy-service/internal/models"
	"pharmacy-service/internal/store"
	"pharmacy-service/internal/util"
)

// ErrInvalidCredentials is returned on unknown usernames and wrong passwords
// alike, so the response never reveals which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles login and session tokens.
type AuthService struct {
	store    *store.Store
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(st *store.Store, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:    st,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   util.GetLogger(),
	}
}

// Login checks the credentials and returns the user together with a signed
// session token. Passwords are compared in plaintext; the sample data ships
// unhashed credentials and this service keeps that demo behavior.
func (s *AuthService) Login(username, password string) (models.User, string, error) {
	util.LoginAttemptsTotal.Inc()

	user, err := s.store.GetUserByUsername(username)
	if err != nil || user.Password != password {
		util.LoginFailuresTotal.Inc()
		s.logger.Warn("Login failed", zap.String("username", username))
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	s.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role))
	return user, token, nil
}

func (s *AuthService) generateToken(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a session token and returns its claims.
func (s *AuthService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
