package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/infrastructure/datastore"
	"github.com/vfg2006/retail-analytics-api/infrastructure/datastore/csvstore"
	"github.com/vfg2006/retail-analytics-api/infrastructure/datastore/postgresstore"
	"github.com/vfg2006/retail-analytics-api/internal/api"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newRecordStore(ctx, cfg)

	queryService := querying.NewService(store)

	// Carga inicial do snapshot. Falha aqui não derruba o serviço: a API sobe
	// respondendo success=false até uma recarga bem sucedida.
	if snapshot, err := queryService.RefreshCache(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga inicial dos registros")
	} else {
		logrus.WithField("generation", snapshot.Generation).Info("Carga inicial concluída")
	}

	cacheRefreshService := scheduler.NewCacheRefreshService(queryService, cfg)
	if err := cacheRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do snapshot")
	} else {
		logrus.Info("Agendador de recarga do snapshot iniciado com sucesso")
	}

	server, err := api.New(cfg, queryService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newRecordStore escolhe a fonte de registros conforme STORE_DRIVER
func newRecordStore(ctx context.Context, cfg *config.Config) datastore.RecordStore {
	if cfg.Store.Driver == "postgres" {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return postgresstore.NewStore(conn)
	}

	logrus.WithField("data_dir", cfg.Store.DataDir).Info("Usando record store de arquivos CSV")
	return csvstore.NewStore(cfg.Store.DataDir)
}
