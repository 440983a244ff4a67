package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func TestUpsertSnapshot_RejectsInvalidKey(t *testing.T) {
	// Sem conexão: a validação acontece antes de abrir a transação
	repo := NewSnapshotRepository(nil)

	tests := []struct {
		name     string
		snapshot *domain.Snapshot
	}{
		{
			name:     "tipo desconhecido",
			snapshot: &domain.Snapshot{EntityType: "keyword", EntityID: "k1"},
		},
		{
			name:     "entidade sem id",
			snapshot: &domain.Snapshot{EntityType: domain.EntityTypeCampaign},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.UpsertSnapshot(context.Background(), tt.snapshot)

			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Empty(t, result)
		})
	}
}
