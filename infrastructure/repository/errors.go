package repository

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// persistenceError embrulha falhas de banco na taxonomia do domínio, guardando a pilha
func persistenceError(op, entityID string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		err = fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return domain.NewOperationError(domain.ErrPersistence, op, entityID, errors.WithStack(err))
}
