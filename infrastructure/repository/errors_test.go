package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func TestPersistenceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		containsMsg string
	}{
		{
			name:        "erro genérico de banco",
			err:         errors.New("connection reset"),
			containsMsg: "connection reset",
		},
		{
			name:        "erro do driver inclui o código",
			err:         &pq.Error{Code: "23505", Message: "duplicate key value"},
			containsMsg: "code: 23505",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := persistenceError("snapshot.upsert", "c1", tt.err)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrPersistence))
			assert.Contains(t, err.Error(), tt.containsMsg)

			var opErr *domain.OperationError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, "snapshot.upsert", opErr.Op)
			assert.Equal(t, "c1", opErr.EntityID)
		})
	}
}
