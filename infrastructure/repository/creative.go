package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

const creativesTable = "creatives"

//go:generate mockgen -source=creative.go -destination=mocks/mock_creative.go -package=mocks
type CreativeRepository interface {
	UpsertCreative(ctx context.Context, creative *domain.Creative) (domain.UpsertResult, error)
	GetCreative(ctx context.Context, creativeID string) (*domain.Creative, error)
	UpdateSignals(ctx context.Context, creativeID string, classification *domain.CreativeClassification) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

// UpsertCreative grava apenas o conteúdo vindo da plataforma.
// meta_native e format_type são marcados fora da sincronização e nunca são sobrescritos.
func (r *creativeRepository) UpsertCreative(ctx context.Context, c *domain.Creative) (domain.UpsertResult, error) {
	now := time.Now().UTC()

	query, args, err := squirrel.
		Insert(creativesTable).
		Columns(
			"creative_id", "account_id", "name", "title", "body", "image_url",
			"video_id", "thumbnail_url", "call_to_action", "link_url", "updated_at",
		).
		Values(
			c.CreativeID, c.AccountID, c.Name, c.Title, c.Body, c.ImageURL,
			c.VideoID, c.ThumbnailURL, c.CallToAction, c.LinkURL, now,
		).
		Suffix(`
			ON CONFLICT (creative_id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				title = EXCLUDED.title,
				body = EXCLUDED.body,
				image_url = EXCLUDED.image_url,
				video_id = EXCLUDED.video_id,
				thumbnail_url = EXCLUDED.thumbnail_url,
				call_to_action = EXCLUDED.call_to_action,
				link_url = EXCLUDED.link_url,
				updated_at = EXCLUDED.updated_at
			RETURNING (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", persistenceError("creative.upsert", c.CreativeID, err)
	}

	var inserted bool
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&inserted); err != nil {
		return "", persistenceError("creative.upsert", c.CreativeID, err)
	}

	c.UpdatedAt = now
	if inserted {
		return domain.UpsertInserted, nil
	}
	return domain.UpsertUpdated, nil
}

// GetCreative devolve nil, nil quando o criativo ainda não foi sincronizado
func (r *creativeRepository) GetCreative(ctx context.Context, creativeID string) (*domain.Creative, error) {
	query, args, err := squirrel.
		Select(
			"creative_id, account_id, name, title, body, image_url, video_id, thumbnail_url, " +
				"call_to_action, link_url, meta_native, format_type, updated_at",
		).
		From(creativesTable).
		Where(squirrel.Eq{"creative_id": creativeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, persistenceError("creative.get", creativeID, err)
	}

	c := &domain.Creative{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&c.CreativeID,
		&c.AccountID,
		&c.Name,
		&c.Title,
		&c.Body,
		&c.ImageURL,
		&c.VideoID,
		&c.ThumbnailURL,
		&c.CallToAction,
		&c.LinkURL,
		&c.MetaNative,
		&c.FormatType,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("creative.get", creativeID, err)
	}

	return c, nil
}

// UpdateSignals grava a classificação do criativo. Campos nil mantêm o valor atual.
func (r *creativeRepository) UpdateSignals(ctx context.Context, creativeID string, classification *domain.CreativeClassification) error {
	if creativeID == "" {
		return domain.NewOperationError(domain.ErrValidation, "creative.update_signals", "", errors.New("creative_id vazio"))
	}
	if classification.Empty() {
		return nil
	}

	update := squirrel.Update(creativesTable).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"creative_id": creativeID})
	if classification.MetaNative != nil {
		update = update.Set("meta_native", *classification.MetaNative)
	}
	if classification.FormatType != nil {
		update = update.Set("format_type", *classification.FormatType)
	}

	query, args, err := update.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return persistenceError("creative.update_signals", creativeID, err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return persistenceError("creative.update_signals", creativeID, err)
	}

	return nil
}
