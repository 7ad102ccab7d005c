package authenticating

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/pkg/apiErrors"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{cfg: cfg}
}

// ValidateToken verifica assinatura e validade do token e aplica a lista de
// domínios de e-mail autorizados. Token bom com e-mail fora do domínio é
// rejeitado da mesma forma que token inválido.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if err := s.checkDomain(claims.UserEmail); err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *Service) checkDomain(email string) error {
	if s.cfg.AllowedDomain == "" {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if strings.HasSuffix(normalized, "@"+strings.ToLower(s.cfg.AllowedDomain)) {
		return nil
	}

	return NewAuthError(ErrDomainNotAllowed, apiErrors.ErrDomainNotAllowed, email)
}
