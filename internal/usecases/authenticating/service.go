// Package authenticating valida e emite os tokens de acesso da API. Os usuários
// vivem fora deste serviço; o token só carrega papel e escritório.
package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(req TokenRequest) (string, error)
}

// TokenRequest descreve o usuário de um token emitido pela CLI
type TokenRequest struct {
	UserID   string        `validate:"required"`
	UserName string        `validate:"required"`
	RoleID   int           `validate:"oneof=1 2"`
	Office   string        `validate:"required_if=RoleID 2"`
	TTL      time.Duration `validate:"gte=0"`
}

type Service struct {
	secret   []byte
	now      func() time.Time
	validate *validator.Validate
}

func NewService(secret string) *Service {
	return &Service{
		secret:   []byte(secret),
		now:      time.Now,
		validate: validator.New(),
	}
}

func (s *Service) IssueToken(req TokenRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", NewAuthError(ErrInvalidTokenRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	claims := domain.Claims{
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserRoleID: req.RoleID,
		Office:     strings.TrimSpace(req.Office),
	}
	if err := checkClaims(&claims); err != nil {
		return "", err
	}

	ttl := req.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   req.UserID,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if err := checkClaims(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// checkClaims exige papel conhecido e escritório para usuários de escritório
func checkClaims(claims *domain.Claims) error {
	if claims.UserID == "" {
		return NewAuthError(ErrMissingSubject, apiErrors.ErrInvalidToken, "")
	}

	switch claims.UserRoleID {
	case domain.RoleHQ:
		return nil
	case domain.RoleOffice:
		if claims.Office == "" {
			return NewAuthError(ErrMissingOffice, apiErrors.ErrInvalidToken, claims.UserID)
		}
		return nil
	}

	return NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidToken, fmt.Sprintf("role_id=%d", claims.UserRoleID))
}
