package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analysesTable   = "analyses"
	analysesColumns = "id, account_id, entity_type, entity_id, status, issues, recommendations, " +
		"llm_explanation, llm_confidence, analyzed_at, rule_set_version"
)

//go:generate mockgen -source=analysis.go -destination=mocks/mock_analysis.go -package=mocks
type AnalysisRepository interface {
	Append(ctx context.Context, analysis *domain.Analysis) error
	LatestFor(ctx context.Context, accountID string, entityType domain.EntityType, entityID string) (*domain.Analysis, error)
	Since(ctx context.Context, accountID string, since time.Time) ([]*domain.Analysis, error)
}

type analysisRepository struct {
	conn *postgres.Connection
}

func NewAnalysisRepository(conn *postgres.Connection) AnalysisRepository {
	return &analysisRepository{
		conn: conn,
	}
}

// Append grava uma nova análise. Análises nunca são atualizadas.
func (r *analysisRepository) Append(ctx context.Context, a *domain.Analysis) error {
	if a.ID == "" {
		a.ID = utils.NewUUID()
	}
	if a.AnalyzedAt.IsZero() {
		a.AnalyzedAt = time.Now().UTC()
	}

	issues, err := json.Marshal(nonNilIssues(a.Issues))
	if err != nil {
		return persistenceError("analysis.append", a.EntityID, err)
	}

	recommendations, err := json.Marshal(nonNilRecommendations(a.Recommendations))
	if err != nil {
		return persistenceError("analysis.append", a.EntityID, err)
	}

	var explanation sql.NullString
	var confidence sql.NullFloat64
	if a.Explanation != nil {
		explanation = sql.NullString{String: a.Explanation.Text, Valid: true}
		if a.Explanation.Confidence != nil {
			confidence = sql.NullFloat64{Float64: *a.Explanation.Confidence, Valid: true}
		}
	}

	query, args, err := squirrel.
		Insert(analysesTable).
		Columns(
			"id", "account_id", "entity_type", "entity_id", "status", "issues", "recommendations",
			"llm_explanation", "llm_confidence", "analyzed_at", "rule_set_version",
		).
		Values(
			a.ID, a.AccountID, a.EntityType, a.EntityID, a.Status, string(issues), string(recommendations),
			explanation, confidence, a.AnalyzedAt, a.RuleSetVersion,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return persistenceError("analysis.append", a.EntityID, err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return persistenceError("analysis.append", a.EntityID, err)
	}

	return nil
}

// LatestFor devolve a análise mais recente da entidade, ou nil se nunca foi analisada
func (r *analysisRepository) LatestFor(ctx context.Context, accountID string, entityType domain.EntityType, entityID string) (*domain.Analysis, error) {
	query, args, err := squirrel.
		Select(analysesColumns).
		From(analysesTable).
		Where(squirrel.Eq{
			"account_id":  accountID,
			"entity_type": entityType,
			"entity_id":   entityID,
		}).
		OrderBy("analyzed_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, persistenceError("analysis.latest", entityID, err)
	}

	analysis, err := scanAnalysis(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("analysis.latest", entityID, err)
	}

	return analysis, nil
}

// Since lista as análises da conta a partir de since, mais novas primeiro
func (r *analysisRepository) Since(ctx context.Context, accountID string, since time.Time) ([]*domain.Analysis, error) {
	query, args, err := squirrel.
		Select(analysesColumns).
		From(analysesTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"analyzed_at": since}).
		OrderBy("analyzed_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, persistenceError("analysis.since", accountID, err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, persistenceError("analysis.since", accountID, err)
	}
	defer rows.Close()

	analyses := make([]*domain.Analysis, 0)
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, persistenceError("analysis.since", accountID, err)
		}
		analyses = append(analyses, analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, persistenceError("analysis.since", accountID, err)
	}

	return analyses, nil
}

func scanAnalysis(row rowScanner) (*domain.Analysis, error) {
	a := &domain.Analysis{}
	var issues, recommendations []byte
	var explanation sql.NullString
	var confidence sql.NullFloat64

	if err := row.Scan(
		&a.ID,
		&a.AccountID,
		&a.EntityType,
		&a.EntityID,
		&a.Status,
		&issues,
		&recommendations,
		&explanation,
		&confidence,
		&a.AnalyzedAt,
		&a.RuleSetVersion,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(issues, &a.Issues); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(recommendations, &a.Recommendations); err != nil {
		return nil, err
	}

	if explanation.Valid {
		a.Explanation = &domain.Explanation{Text: explanation.String}
		if confidence.Valid {
			value := confidence.Float64
			a.Explanation.Confidence = &value
		}
	}

	return a, nil
}

func nonNilIssues(issues []domain.Issue) []domain.Issue {
	if issues == nil {
		return []domain.Issue{}
	}
	return issues
}

func nonNilRecommendations(recommendations []domain.Recommendation) []domain.Recommendation {
	if recommendations == nil {
		return []domain.Recommendation{}
	}
	return recommendations
}
