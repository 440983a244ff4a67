package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

const (
	accountsTable   = "accounts a"
	accountsColumns = "a.id, a.external_id, a.name, a.access_token, a.status, a.created_at"
)

//go:generate mockgen -source=account.go -destination=mocks/mock_account.go -package=mocks
type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(ctx context.Context, accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByExternalID(ctx context.Context, accountExternalID string) (*domain.AdAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"a.external_id": accountExternalID})
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	return a.getAccount(ctx, squirrel.Eq{"a.id": accountID})
}

// getAccount devolve nil, nil quando a conta não existe
func (a *accountRepository) getAccount(ctx context.Context, whereClause squirrel.Eq) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountsColumns).
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, persistenceError("account.get", "", err)
	}

	acc, err := deserializeAccount(a.conn.QueryRowContext(ctx, accountsSQL, accountsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("account.get", "", err)
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select(accountsColumns).
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, persistenceError("account.list", "", err)
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, persistenceError("account.list", "", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := deserializeAccount(rows)
		if err != nil {
			return nil, persistenceError("account.list", "", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, persistenceError("account.list", "", err)
	}

	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}
	var token sql.NullString

	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Name,
		&token,
		&acc.Status,
		&acc.CreatedAt,
	); err != nil {
		return nil, err
	}

	acc.AccessToken = token.String
	return acc, nil
}
