package router

import (
	"github.com/acmehq/finance-api/internal/application"
	"github.com/acmehq/finance-api/internal/container"
	pginfra "github.com/acmehq/finance-api/internal/infrastructure/postgres"
	"github.com/acmehq/finance-api/internal/infrastructure/views"
	handlers "github.com/acmehq/finance-api/internal/interface/http"
	"github.com/acmehq/finance-api/internal/router/modules"
	"github.com/acmehq/finance-api/pkg/helpers"
)

type Deps struct {
	InvoiceHandler   *handlers.InvoiceHandler
	CustomerHandler  *handlers.CustomerHandler
	DashboardHandler *handlers.DashboardHandler
	UserHandler      *handlers.UserHandler
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	invoiceRepo := pginfra.NewInvoiceRepository(pool)
	customerRepo := pginfra.NewCustomerRepository(pool)
	revenueRepo := pginfra.NewRevenueRepository(pool)
	userRepo := pginfra.NewUserRepository(pool)

	notifier := views.NewRedisNotifier(container.GetRedis(), logger)

	invoiceSvc := application.NewInvoiceService(invoiceRepo, notifier, logger)
	dashboardSvc := application.NewDashboardService(invoiceRepo, customerRepo, revenueRepo, logger)

	var images application.ImageStore
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		images = helpers.NewGCSImageStore(gcs, cfg.GCSBucket)
	}
	customerSvc := application.NewCustomerService(customerRepo, notifier, images, logger)

	sessions := application.NewJWTSessionIssuer(container.GetJWT(), container.GetRedis(), cfg.SessionTTL)
	var jobs application.JobPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		jobs = pub
	}
	userSvc := application.NewUserService(userRepo, sessions, jobs, logger)

	return Deps{
		InvoiceHandler:   handlers.NewInvoiceHandler(invoiceSvc, logger),
		CustomerHandler:  handlers.NewCustomerHandler(customerSvc, logger),
		DashboardHandler: handlers.NewDashboardHandler(dashboardSvc, logger),
		UserHandler:      handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.UserHandler, jwt))
	r.Add(modules.NewDashboardModule(deps.DashboardHandler, jwt))
	r.Add(modules.NewInvoiceModule(deps.InvoiceHandler, jwt))
	r.Add(modules.NewCustomerModule(deps.CustomerHandler, jwt))
}
