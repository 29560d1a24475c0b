package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/nextapps-br/sales-dashboard-api/internal/api/handler"
	"github.com/nextapps-br/sales-dashboard-api/internal/api/handler/router"
	"github.com/nextapps-br/sales-dashboard-api/internal/config"
	"github.com/nextapps-br/sales-dashboard-api/internal/scheduler"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/account"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/celebrating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/importing"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	refreshService *scheduler.DashboardRefreshService,
	detector *celebrating.Detector,
	hub *handler.DashboardHub,
	managerService managing.Manager,
	importService importing.Importer,
	accountService account.AccountManager,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Dashboard(refreshService, detector, hub)...),
		router.WithRoutes(handler.Vendedores(managerService)...),
		router.WithRoutes(handler.Squads(managerService)...),
		router.WithRoutes(handler.DailyEntries(managerService)...),
		router.WithRoutes(handler.Vendas(managerService)...),
		router.WithRoutes(handler.Metas(managerService)...),
		router.WithRoutes(handler.SystemConfig(managerService)...),
		router.WithRoutes(handler.Importing(importService)...),
		router.WithRoutes(handler.Account(accountService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
