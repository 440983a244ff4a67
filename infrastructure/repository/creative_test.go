package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func TestUpdateSignals_NoDatabaseAccess(t *testing.T) {
	// Sem conexão: nenhum dos casos chega ao banco
	repo := NewCreativeRepository(nil)
	native := true

	tests := []struct {
		name           string
		creativeID     string
		classification *domain.CreativeClassification
		expectErr      error
	}{
		{
			name:           "criativo sem id",
			classification: &domain.CreativeClassification{MetaNative: &native},
			expectErr:      domain.ErrValidation,
		},
		{
			name:       "classificação nula não grava",
			creativeID: "cr-1",
		},
		{
			name:           "classificação sem sinais não grava",
			creativeID:     "cr-1",
			classification: &domain.CreativeClassification{Description: "vídeo curto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.UpdateSignals(context.Background(), tt.creativeID, tt.classification)

			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}
