package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-health-api/infrastructure/cache"
	"github.com/vfg2006/campaign-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-health-api/infrastructure/integrator/explainer"
	"github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-health-api/infrastructure/repository"
	"github.com/vfg2006/campaign-health-api/internal/api/handler"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/scheduler"
	"github.com/vfg2006/campaign-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-health-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-health-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-health-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-health-api/pkg/tracing"
)

// Container liga as dependências compartilhadas pela API e pela CLI de lotes
type Container struct {
	Config *config.Config
	Conn   *postgres.Connection
	Cache  cache.Cache

	AccountRepo repository.AccountRepository

	Authenticator authenticating.Authenticator
	Reporter      *reporting.Service
	SyncJob       *scheduler.DailySyncService
	AnalysisJob   *scheduler.DailyAnalysisService

	shutdownTracing func(context.Context) error
}

// ConfigureLogger define o nível de log com base na configuração
func ConfigureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	shutdownTracing, err := tracing.Init(cfg.Tracing, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar tracing: %w", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	redisCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		// O cache é opcional: sem Redis as leituras vão direto ao banco
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		redisCache = cache.Noop{}
	}

	aiExplainer, err := explainer.NewExplainer(ctx, cfg.AI)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao configurar provedor de IA: %w", err)
	}

	accountRepo := repository.NewAccountRepository(conn)
	snapshotRepo := repository.NewSnapshotRepository(conn)
	creativeRepo := repository.NewCreativeRepository(conn)
	analysisRepo := repository.NewAnalysisRepository(conn)

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	sources := func(accessToken string) syncing.MetricSource {
		return metaIntegrator.ForToken(accessToken)
	}

	syncService := syncing.NewService(cfg, accountRepo, snapshotRepo, creativeRepo, sources)
	analysisService := analyzing.NewService(cfg, accountRepo, snapshotRepo, creativeRepo, analysisRepo, aiExplainer, redisCache)

	return &Container{
		Config:          cfg,
		Conn:            conn,
		Cache:           redisCache,
		AccountRepo:     accountRepo,
		Authenticator:   authenticating.NewService(cfg),
		Reporter:        reporting.NewService(cfg, accountRepo, snapshotRepo, analysisRepo, redisCache),
		SyncJob:         scheduler.NewDailySyncService(syncService, cfg),
		AnalysisJob:     scheduler.NewDailyAnalysisService(analysisService, cfg),
		shutdownTracing: shutdownTracing,
	}, nil
}

func (c *Container) CronServices() handler.CronJobServices {
	return handler.CronJobServices{
		Sync:     c.SyncJob,
		Analysis: c.AnalysisJob,
	}
}

// Close libera as conexões na ordem inversa da criação
func (c *Container) Close(ctx context.Context) {
	if err := c.Cache.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar o cache")
	}

	if err := c.Conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar a conexão com PostgreSQL")
	}

	if err := c.shutdownTracing(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao encerrar o tracing")
	}
}
