package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager"
	"github.com/vfg2006/admanager-revenue-api/infrastructure/integrator/admanager/gamclient"
	"github.com/vfg2006/admanager-revenue-api/internal/api"
	"github.com/vfg2006/admanager-revenue-api/internal/config"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/probing"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/revenue"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O cliente valida as credenciais na primeira chamada, não aqui: o
	// servidor precisa subir sem configuração para o /test-connection
	// conseguir diagnosticar o problema.
	gamClient := gamclient.NewClient(cfg)
	integrator := admanager.New(cfg, gamClient)

	prober := probing.NewService(integrator)
	revenueService := revenue.NewService(cfg, integrator)

	server, err := api.New(cfg, revenueService, prober)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
