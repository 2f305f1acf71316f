package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/recording"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

// Protected monta a cadeia das rotas autenticadas: valida o token Bearer e exige a sessão no contexto.
// Fica por rota para que caminhos inexistentes caiam no NotFound do router.
func Protected(auth authenticating.Authenticator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(auth),
		middleware.RequireSession(),
	}
}

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Authentication(service authenticating.Authenticator, protected []func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/signup",
			Method:  http.MethodPost,
			Handler: SignUp(service),
		},
		{
			Path:    "/v1/signin",
			Method:  http.MethodPost,
			Handler: SignIn(service),
		},
		{
			Path:        "/v1/signout",
			Method:      http.MethodPost,
			Handler:     SignOut(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: protected,
		},
	}
}

func Profile(service profiling.Profiler, protected []func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodPut,
			Handler:     UpdateProfile(service),
			Middlewares: protected,
		},
	}
}

func Entries(service recording.Recorder, calendar Calendar, protected []func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries",
			Method:      http.MethodPost,
			Handler:     CreateEntry(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/entries",
			Method:      http.MethodGet,
			Handler:     ListEntries(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/entries/today-total",
			Method:      http.MethodGet,
			Handler:     TodayTotal(service, calendar),
			Middlewares: protected,
		},
		{
			Path:        "/v1/entries/aggregate",
			Method:      http.MethodGet,
			Handler:     AggregateEntries(service, calendar),
			Middlewares: protected,
		},
	}
}

func Charts(service recording.Recorder, calendar Calendar, protected []func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     Dashboard(service, calendar),
			Middlewares: protected,
		},
		{
			Path:        "/v1/analytics",
			Method:      http.MethodGet,
			Handler:     Analytics(service, calendar),
			Middlewares: protected,
		},
	}
}

func CronJobs(services CronJobServices, protected []func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: protected,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: protected,
		},
	}
}
