package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/apiErrors"
)

const issuer = "campaign-health-api"

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Authenticator interface {
	GenerateToken(operatorID string, accountIDs []string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service valida as sessões emitidas pelo login externo. GenerateToken existe para o CLI e os testes.
type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) secret() ([]byte, error) {
	if s.cfg.Auth.Secret == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}
	return []byte(s.cfg.Auth.Secret), nil
}

func (s *Service) GenerateToken(operatorID string, accountIDs []string) (string, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return "", NewAuthError(ErrMissingData, apiErrors.ErrMissingRequiredData, "operator_id é obrigatório")
	}

	secret, err := s.secret()
	if err != nil {
		return "", err
	}

	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := s.now()
	claims := &domain.Claims{
		OperatorID: operatorID,
		AccountIDs: accountIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   operatorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %w", err)
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.OperatorID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
