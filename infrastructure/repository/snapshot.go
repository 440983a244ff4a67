package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

const (
	snapshotsTable   = "entity_snapshots"
	snapshotsColumns = "id, account_id, entity_type, entity_id, parent_id, name, status, objective, " +
		"daily_budget, lifetime_budget, spend, impressions, clicks, conversions, cpa, ctr, cpm, " +
		"video_views, creative_id, snapshot_date, created_at, updated_at"
)

//go:generate mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotRepository interface {
	UpsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) (domain.UpsertResult, error)
	QueryRange(ctx context.Context, entityType domain.EntityType, entityID string, from, to time.Time) ([]domain.Snapshot, error)
	QueryByDay(ctx context.Context, accountID string, entityType domain.EntityType, day time.Time) ([]domain.Snapshot, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// UpsertSnapshot grava o snapshot do dia. Uma segunda escrita para a mesma
// (entidade, dia) sobrescreve os campos mutáveis e mantém a linha.
func (r *snapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) (domain.UpsertResult, error) {
	if !snapshot.EntityType.IsValid() || snapshot.EntityID == "" {
		return "", domain.NewOperationError(domain.ErrValidation, "snapshot.upsert", snapshot.EntityID, nil)
	}

	day := snapshot.SnapshotDate.Format(time.DateOnly)
	now := time.Now().UTC()

	var result domain.UpsertResult

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		selectSQL, selectArgs, err := squirrel.
			Select("id").
			From(snapshotsTable).
			Where(squirrel.Eq{
				"entity_type":   snapshot.EntityType,
				"entity_id":     snapshot.EntityID,
				"snapshot_date": day,
			}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var existingID int64
		err = tx.QueryRowContext(ctx, selectSQL, selectArgs...).Scan(&existingID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			result = domain.UpsertInserted
			return r.insert(ctx, tx, snapshot, day, now)
		case err != nil:
			return err
		}

		result = domain.UpsertUpdated
		snapshot.ID = existingID
		return r.update(ctx, tx, existingID, snapshot, now)
	})
	if err != nil {
		return "", persistenceError("snapshot.upsert", snapshot.EntityID, err)
	}

	return result, nil
}

func (r *snapshotRepository) insert(ctx context.Context, tx postgres.Queryer, s *domain.Snapshot, day string, now time.Time) error {
	query, args, err := squirrel.
		Insert(snapshotsTable).
		Columns(
			"account_id", "entity_type", "entity_id", "parent_id", "name", "status", "objective",
			"daily_budget", "lifetime_budget", "spend", "impressions", "clicks", "conversions", "cpa",
			"ctr", "cpm", "video_views", "creative_id", "snapshot_date", "created_at", "updated_at",
		).
		Values(
			s.AccountID, s.EntityType, s.EntityID, s.ParentID, s.Name, s.Status, s.Objective,
			s.DailyBudget, s.LifetimeBudget, s.Spend, s.Impressions, s.Clicks, s.Conversions, s.CPA,
			s.CTR, s.CPM, s.VideoViews, s.CreativeID, day, now, now,
		).
		// Duas sincronizações concorrentes podem passar pelo SELECT ao mesmo tempo
		Suffix(`
			ON CONFLICT (entity_type, entity_id, snapshot_date) DO UPDATE SET
				parent_id = EXCLUDED.parent_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				objective = EXCLUDED.objective,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				cpa = EXCLUDED.cpa,
				ctr = EXCLUDED.ctr,
				cpm = EXCLUDED.cpm,
				video_views = EXCLUDED.video_views,
				creative_id = EXCLUDED.creative_id,
				updated_at = EXCLUDED.updated_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return tx.QueryRowContext(ctx, query, args...).Scan(&s.ID)
}

func (r *snapshotRepository) update(ctx context.Context, tx postgres.Queryer, id int64, s *domain.Snapshot, now time.Time) error {
	query, args, err := squirrel.
		Update(snapshotsTable).
		SetMap(map[string]any{
			"parent_id":       s.ParentID,
			"name":            s.Name,
			"status":          s.Status,
			"objective":       s.Objective,
			"daily_budget":    s.DailyBudget,
			"lifetime_budget": s.LifetimeBudget,
			"spend":           s.Spend,
			"impressions":     s.Impressions,
			"clicks":          s.Clicks,
			"conversions":     s.Conversions,
			"cpa":             s.CPA,
			"ctr":             s.CTR,
			"cpm":             s.CPM,
			"video_views":     s.VideoViews,
			"creative_id":     s.CreativeID,
			"updated_at":      now,
		}).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// QueryRange devolve os snapshots da entidade entre from e to (inclusive), do mais antigo ao mais novo
func (r *snapshotRepository) QueryRange(ctx context.Context, entityType domain.EntityType, entityID string, from, to time.Time) ([]domain.Snapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"entity_type": entityType, "entity_id": entityID}).
		Where(squirrel.GtOrEq{"snapshot_date": from.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"snapshot_date": to.Format(time.DateOnly)}).
		OrderBy("snapshot_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, persistenceError("snapshot.range", entityID, err)
	}

	snapshots, err := r.query(ctx, query, args)
	if err != nil {
		return nil, persistenceError("snapshot.range", entityID, err)
	}

	return snapshots, nil
}

// QueryByDay lista os snapshots de um tipo de entidade da conta no dia, maior gasto primeiro
func (r *snapshotRepository) QueryByDay(ctx context.Context, accountID string, entityType domain.EntityType, day time.Time) ([]domain.Snapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{
			"account_id":    accountID,
			"entity_type":   entityType,
			"snapshot_date": day.Format(time.DateOnly),
		}).
		OrderBy("spend DESC NULLS LAST", "entity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, persistenceError("snapshot.by_day", accountID, err)
	}

	snapshots, err := r.query(ctx, query, args)
	if err != nil {
		return nil, persistenceError("snapshot.by_day", accountID, err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) query(ctx context.Context, query string, args []any) ([]domain.Snapshot, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]domain.Snapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snapshot)
	}

	return snapshots, rows.Err()
}

func scanSnapshot(row rowScanner) (*domain.Snapshot, error) {
	s := &domain.Snapshot{}
	var dailyBudget, lifetimeBudget, spend, cpa decimal.NullDecimal

	if err := row.Scan(
		&s.ID,
		&s.AccountID,
		&s.EntityType,
		&s.EntityID,
		&s.ParentID,
		&s.Name,
		&s.Status,
		&s.Objective,
		&dailyBudget,
		&lifetimeBudget,
		&spend,
		&s.Impressions,
		&s.Clicks,
		&s.Conversions,
		&cpa,
		&s.CTR,
		&s.CPM,
		&s.VideoViews,
		&s.CreativeID,
		&s.SnapshotDate,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	s.DailyBudget = nullableDecimal(dailyBudget)
	s.LifetimeBudget = nullableDecimal(lifetimeBudget)
	s.Spend = nullableDecimal(spend)
	s.CPA = nullableDecimal(cpa)

	return s, nil
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	value := d.Decimal
	return &value
}
