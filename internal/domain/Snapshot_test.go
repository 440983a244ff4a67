package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCalculateCPA(t *testing.T) {
	tests := []struct {
		name        string
		spend       *decimal.Decimal
		conversions int64
		expected    *string
	}{
		{
			name:        "Gasto dividido pelas conversões",
			spend:       decimalPtr("100"),
			conversions: 4,
			expected:    strPtr("25"),
		},
		{
			name:        "Arredonda para duas casas decimais",
			spend:       decimalPtr("100"),
			conversions: 3,
			expected:    strPtr("33.33"),
		},
		{
			name:        "Arredonda meio centavo para cima",
			spend:       decimalPtr("10.01"),
			conversions: 2,
			expected:    strPtr("5.01"),
		},
		{
			name:        "Sem conversões o CPA é ausente",
			spend:       decimalPtr("50"),
			conversions: 0,
			expected:    nil,
		},
		{
			name:        "Sem gasto o CPA é ausente",
			spend:       nil,
			conversions: 3,
			expected:    nil,
		},
		{
			name:        "Gasto zero com conversões gera CPA zero",
			spend:       decimalPtr("0"),
			conversions: 2,
			expected:    strPtr("0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpa := CalculateCPA(tt.spend, tt.conversions)
			if tt.expected == nil {
				assert.Nil(t, cpa)
				return
			}

			if assert.NotNil(t, cpa) {
				assert.True(t, decimal.RequireFromString(*tt.expected).Equal(*cpa), "cpa=%s", cpa.String())
			}
		})
	}
}

func TestSnapshot_StopRate(t *testing.T) {
	s := Snapshot{VideoViews: int64Ptr(250), Impressions: int64Ptr(1000)}
	rate := s.StopRate()
	if assert.NotNil(t, rate) {
		assert.InDelta(t, 0.25, *rate, 1e-9)
	}

	assert.Nil(t, (&Snapshot{Impressions: int64Ptr(1000)}).StopRate())
	assert.Nil(t, (&Snapshot{VideoViews: int64Ptr(10), Impressions: int64Ptr(0)}).StopRate())
}

func TestStatusFromIssues(t *testing.T) {
	warning := Issue{Type: IssueLearningPhase, Severity: SeverityWarning}
	critical := Issue{Type: IssueCPAIncreasing, Severity: SeverityCritical}

	tests := []struct {
		name     string
		issues   []Issue
		expected Severity
	}{
		{"Sem issues", nil, SeverityOK},
		{"Apenas warning", []Issue{warning}, SeverityWarning},
		{"Apenas critical", []Issue{critical}, SeverityCritical},
		{"Warning antes de critical", []Issue{warning, critical}, SeverityCritical},
		{"Critical antes de warning", []Issue{critical, warning}, SeverityCritical},
		{"Vários warnings", []Issue{warning, warning}, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFromIssues(tt.issues))
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewOperationError(ErrPersistence, "snapshot.upsert", "123", cause)

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "snapshot.upsert: persistence error (123): connection reset", err.Error())
}

func TestSyncReport_Counters(t *testing.T) {
	report := NewSyncReport("run", "acc", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	report.MarkWritten(EntityTypeCampaign)
	report.MarkSkipped(EntityTypeAdset)
	report.MarkFailed(EntityTypeAd, "ad-1", errors.New("boom"))
	report.MarkCreative(nil)
	report.MarkCreative(errors.New("fail"))

	assert.Equal(t, 1, report.Campaigns.Written)
	assert.Equal(t, 1, report.Adsets.Skipped)
	assert.Equal(t, 1, report.Ads.Failed)
	assert.Equal(t, CreativeCounters{Written: 1, Failed: 1}, report.Creatives)
	assert.Equal(t, []EntityFailure{{EntityType: EntityTypeAd, EntityID: "ad-1", Message: "boom"}}, report.Errors)
}

func strPtr(v string) *string {
	return &v
}
