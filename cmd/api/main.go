package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-health-api/internal/api"
	"github.com/vfg2006/campaign-health-api/internal/app"
	"github.com/vfg2006/campaign-health-api/internal/config"

	_ "time/tzdata"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	app.ConfigureLogger(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar dependências")
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		container.Close(closeCtx)
	}()

	// Inicia os agendadores em background
	if err := container.SyncJob.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização diária")
	}

	if err := container.AnalysisJob.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise diária")
	}

	server, err := api.New(cfg, container.Reporter, container.Authenticator, container.CronServices())
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
