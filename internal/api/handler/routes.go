package handler

import (
	"net/http"

	"github.com/advisorhub/revenue-engine/internal/api/handler/router"
	"github.com/advisorhub/revenue-engine/internal/usecases/authenticating"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/middleware"
)

// tenantOnly exige sessão com tenant antes de chegar ao handler
var tenantOnly = []func(http.Handler) http.Handler{middleware.TenantRequired()}

func Healthcheck(cacheHealth CacheHealthChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cacheHealth),
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: tenantOnly,
		},
	}
}

func Clients(reporter reporting.Reporter, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(manager),
			Middlewares: tenantOnly,
		},
	}
}

func Products(reporter reporting.Reporter, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(manager),
			Middlewares: tenantOnly,
		},
	}
}

func Allocations(reporter reporting.Reporter, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/allocations",
			Method:      http.MethodGet,
			Handler:     GetKanban(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/allocations",
			Method:      http.MethodPost,
			Handler:     CreateAllocation(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/allocations/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAllocation(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/allocations/:id/confirm",
			Method:      http.MethodPost,
			Handler:     ConfirmAllocation(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/allocations/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAllocation(manager),
			Middlewares: tenantOnly,
		},
	}
}

func Goals(reporter reporting.Reporter, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyGoal(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/goals/monthly",
			Method:      http.MethodPut,
			Handler:     SetMonthlyGoal(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/goals/class",
			Method:      http.MethodGet,
			Handler:     ListClassGoals(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/goals/class",
			Method:      http.MethodPut,
			Handler:     SetClassGoal(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/goals/simulation",
			Method:      http.MethodGet,
			Handler:     GetGoalSimulation(reporter),
			Middlewares: tenantOnly,
		},
	}
}

func Bonuses(reporter reporting.Reporter, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/bonuses",
			Method:      http.MethodGet,
			Handler:     ListBonuses(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/bonuses",
			Method:      http.MethodPost,
			Handler:     CreateBonus(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/bonuses/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBonus(manager),
			Middlewares: tenantOnly,
		},
	}
}

func Dashboard(reporter reporting.Reporter, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/dashboard/metrics",
			Method:      http.MethodGet,
			Handler:     GetDashboardMetrics(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/revenue-items/import",
			Method:      http.MethodPost,
			Handler:     ImportRevenueItems(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/preferences/recurring-categories",
			Method:      http.MethodGet,
			Handler:     GetRecurringCategories(reporter),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/preferences/recurring-categories",
			Method:      http.MethodPut,
			Handler:     SetRecurringCategories(manager),
			Middlewares: tenantOnly,
		},
		{
			Path:        "/v1/preferences/recurring-categories/available",
			Method:      http.MethodGet,
			Handler:     GetAvailableRecurringCategories(reporter),
			Middlewares: tenantOnly,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/cache-health/run",
			Method:  http.MethodPost,
			Handler: RunCacheHealthCheck(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
