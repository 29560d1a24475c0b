package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/gateway"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository"
	"github.com/nextapps-br/sales-dashboard-api/internal/api"
	"github.com/nextapps-br/sales-dashboard-api/internal/api/handler"
	"github.com/nextapps-br/sales-dashboard-api/internal/config"
	"github.com/nextapps-br/sales-dashboard-api/internal/scheduler"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/account"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/celebrating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/importing"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/ranking"
	"github.com/sirupsen/logrus"
)

// Canais de notificação criados pelo script de migração; cada gatilho
// nas tabelas fonte emite pg_notify em um desses canais.
var changeChannels = []string{
	"dashboard_vendedores",
	"dashboard_squads",
	"dashboard_dados_diarios",
	"dashboard_vendas_individuais",
}

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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	vendedorRepo := repository.NewVendedorRepository(pgConn)
	squadRepo := repository.NewSquadRepository(pgConn)
	dailyRepo := repository.NewDailyEntryRepository(pgConn)
	vendaRepo := repository.NewVendaIndividualRepository(pgConn)
	metaRepo := repository.NewMetaRepository(pgConn)
	configRepo := repository.NewSystemConfigRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	gatewayIntegrator := gateway.NewClient(cfg)
	accountService := account.NewService(userRepo, gatewayIntegrator)

	sheetsIntegrator := sheets.New(cfg, sheetsclient.NewClient())
	importService := importing.NewService(sheetsIntegrator, vendedorRepo, dailyRepo)

	managerService := managing.NewService(
		vendedorRepo,
		squadRepo,
		dailyRepo,
		vendaRepo,
		metaRepo,
		configRepo,
	)

	aggregatorService := aggregating.NewService(
		vendedorRepo,
		squadRepo,
		dailyRepo,
		vendaRepo,
	)

	tracker := ranking.NewTracker()
	detector := celebrating.NewDetector(
		time.Duration(cfg.Dashboard.CelebrationDisplaySeconds) * time.Second,
	)

	// Hub de websockets do telão: recebe os snapshots e celebrações
	// produzidos pelo ciclo de atualização e os transmite aos clientes
	hub := handler.NewDashboardHub()

	changeListener := postgres.NewChangeListener(cfg.Database.DSN, changeChannels)
	if cfg.Dashboard.ListenNotificationsEnabled {
		go func() {
			if err := changeListener.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro no listener de alterações do banco")
			}
		}()
	}

	refreshService := scheduler.NewDashboardRefreshService(
		aggregatorService,
		tracker,
		detector,
		metaRepo,
		changeListener,
		hub,
		cfg,
	)

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o ciclo de atualização do telão")
	} else {
		logrus.Info("Ciclo de atualização do telão iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		refreshService,
		detector,
		hub,
		managerService,
		importService,
		accountService,
		authenticator,
	)
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
