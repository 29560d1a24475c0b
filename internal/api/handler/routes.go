package handler

import (
	"net/http"

	"github.com/nextapps-br/sales-dashboard-api/internal/api/handler/router"
	"github.com/nextapps-br/sales-dashboard-api/internal/scheduler"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/account"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/celebrating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/importing"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna as rotas do painel público. Leitura do snapshot,
// websocket e comemoração são abertas (o telão não se autentica);
// disparo manual e status exigem administrador.
func Dashboard(refreshService *scheduler.DashboardRefreshService, detector *celebrating.Detector, hub *DashboardHub) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(refreshService),
		},
		{
			Path:    "/v1/dashboard/ws",
			Method:  http.MethodGet,
			Handler: DashboardWebSocket(hub, refreshService.Snapshot),
		},
		{
			Path:    "/v1/dashboard/celebration",
			Method:  http.MethodGet,
			Handler: GetCelebration(detector),
		},
		{
			Path:    "/v1/dashboard/celebration",
			Method:  http.MethodDelete,
			Handler: DismissCelebration(detector),
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(refreshService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/dashboard/status",
			Method:      http.MethodGet,
			Handler:     GetDashboardStatus(refreshService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Vendedores(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vendedores",
			Method:      http.MethodGet,
			Handler:     ListVendedores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vendedores",
			Method:      http.MethodPost,
			Handler:     CreateVendedor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
		{
			Path:        "/v1/vendedores/:id",
			Method:      http.MethodGet,
			Handler:     GetVendedor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vendedores/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVendedor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
		{
			Path:        "/v1/vendedores/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteVendedor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/vendedores/:id/squad",
			Method:      http.MethodPut,
			Handler:     AssignVendedorSquad(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
	}
}

func Squads(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/squads",
			Method:      http.MethodGet,
			Handler:     ListSquads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/squads",
			Method:      http.MethodPost,
			Handler:     CreateSquad(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
		{
			Path:        "/v1/squads/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSquad(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
		{
			Path:        "/v1/squads/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSquad(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func DailyEntries(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/daily-entries",
			Method:      http.MethodGet,
			Handler:     ListDailyEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/daily-entries",
			Method:      http.MethodPut,
			Handler:     UpsertDailyEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/daily-entries/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDailyEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
	}
}

func Vendas(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vendas",
			Method:      http.MethodGet,
			Handler:     ListVendas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vendas",
			Method:      http.MethodPost,
			Handler:     CreateVenda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vendas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVenda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/vendas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteVenda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
		{
			Path:        "/v1/vendas/metodos-pagamento",
			Method:      http.MethodGet,
			Handler:     ListMetodosPagamento(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Metas(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metas",
			Method:      http.MethodGet,
			Handler:     GetMeta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metas",
			Method:      http.MethodPut,
			Handler:     SaveMeta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordenador()},
		},
	}
}

// SystemConfig retorna as rotas da configuração visual. A leitura é
// aberta: o telão usa nome e cores do sistema sem se autenticar.
func SystemConfig(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/config",
			Method:  http.MethodGet,
			Handler: GetSystemConfig(service),
		},
		{
			Path:        "/v1/config",
			Method:      http.MethodPut,
			Handler:     SaveSystemConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Importing(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/import/sheets",
			Method:      http.MethodPost,
			Handler:     ImportFromSheets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Account(service account.AccountManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/account/subscription",
			Method:      http.MethodPost,
			Handler:     CreateSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/account/subscription",
			Method:      http.MethodDelete,
			Handler:     CancelSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/account",
			Method:      http.MethodDelete,
			Handler:     DeleteAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/account/payment-methods",
			Method:      http.MethodPost,
			Handler:     AddPaymentMethod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/account/payment-methods/:id",
			Method:      http.MethodDelete,
			Handler:     RemovePaymentMethod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/account/payment-methods/:id/default",
			Method:      http.MethodPut,
			Handler:     SetDefaultPaymentMethod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
