package syncing

import (
	"errors"

	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// sourceErrorKind mantém o não autorizado vindo da plataforma e trata o resto como falha externa
func sourceErrorKind(err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return domain.ErrUnauthorized
	}
	return domain.ErrExternalService
}
