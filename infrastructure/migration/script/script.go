package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id           VARCHAR(21) PRIMARY KEY,
		external_id  VARCHAR(64) NOT NULL UNIQUE,
		name         VARCHAR(255) NOT NULL,
		access_token TEXT,
		status       VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS entity_snapshots (
		id              BIGSERIAL PRIMARY KEY,
		account_id      VARCHAR(21) NOT NULL REFERENCES accounts (id),
		entity_type     VARCHAR(16) NOT NULL,
		entity_id       VARCHAR(64) NOT NULL,
		parent_id       VARCHAR(64),
		name            VARCHAR(512) NOT NULL,
		status          VARCHAR(32) NOT NULL,
		objective       VARCHAR(64),
		daily_budget    NUMERIC(14, 2),
		lifetime_budget NUMERIC(14, 2),
		spend           NUMERIC(14, 2),
		impressions     BIGINT,
		clicks          BIGINT,
		conversions     BIGINT NOT NULL DEFAULT 0,
		cpa             NUMERIC(14, 2),
		ctr             DOUBLE PRECISION,
		cpm             DOUBLE PRECISION,
		video_views     BIGINT,
		creative_id     VARCHAR(64),
		snapshot_date   DATE NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (entity_type, entity_id, snapshot_date)
	)`,
	`CREATE INDEX IF NOT EXISTS entity_snapshots_account_day_idx
		ON entity_snapshots (account_id, entity_type, snapshot_date)`,
	`CREATE TABLE IF NOT EXISTS creatives (
		creative_id    VARCHAR(64) PRIMARY KEY,
		account_id     VARCHAR(21) NOT NULL REFERENCES accounts (id),
		name           VARCHAR(512),
		title          TEXT,
		body           TEXT,
		image_url      TEXT,
		video_id       VARCHAR(64),
		thumbnail_url  TEXT,
		call_to_action VARCHAR(64),
		link_url       TEXT,
		meta_native    BOOLEAN,
		format_type    VARCHAR(32),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE creatives ADD COLUMN IF NOT EXISTS meta_native BOOLEAN`,
	`ALTER TABLE creatives ADD COLUMN IF NOT EXISTS format_type VARCHAR(32)`,
	`CREATE TABLE IF NOT EXISTS analyses (
		id               UUID PRIMARY KEY,
		account_id       VARCHAR(21) NOT NULL REFERENCES accounts (id),
		entity_type      VARCHAR(16) NOT NULL,
		entity_id        VARCHAR(64) NOT NULL,
		status           VARCHAR(16) NOT NULL,
		issues           JSONB NOT NULL DEFAULT '[]',
		recommendations  JSONB NOT NULL DEFAULT '[]',
		llm_explanation  TEXT,
		llm_confidence   DOUBLE PRECISION,
		analyzed_at      TIMESTAMPTZ NOT NULL,
		rule_set_version VARCHAR(16) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS analyses_entity_latest_idx
		ON analyses (account_id, entity_type, entity_id, analyzed_at DESC)`,
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			logrus.WithError(err).Errorf("ERRO ao executar instrução %d/%d do schema", i+1, len(schema))
			return err
		}
	}
	logrus.Infof("Schema aplicado: %d instruções", len(schema))
	return nil
}

// seedAccount cadastra uma conta inicial; a conta existente pelo external_id é mantida
func seedAccount(ctx context.Context, tx *sql.Tx, externalID, name, token string) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO accounts (id, external_id, name, access_token, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), 'ACTIVE')
		ON CONFLICT (external_id) DO NOTHING`,
		id, externalID, name, token,
	)
	if err != nil {
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		logrus.Infof("Conta %s já cadastrada", externalID)
		return nil
	}

	logrus.Infof("Conta %s cadastrada com id %s", externalID, id)
	return nil
}

func main() {
	externalID := flag.String("account", "", "ID externo da conta a cadastrar (act_ sem prefixo)")
	name := flag.String("name", "", "Nome da conta")
	token := flag.String("token", "", "Token de acesso da conta")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()
	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}

		if *externalID == "" {
			return nil
		}

		accountName := *name
		if accountName == "" {
			accountName = *externalID
		}
		return seedAccount(ctx, tx, *externalID, accountName, *token)
	})
	if err != nil {
		logrus.Fatalf("ERRO na migração, transação revertida: %v", err)
	}

	logrus.Infof("Migração concluída em %v!", time.Since(startTime))
}
