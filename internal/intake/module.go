// Package intake provides the form-submission bounded context module.
// It owns the two public forms (quote inquiry, booking request) and the
// validate → persist → notify pipeline behind them.
package intake

import (
	"detailing_site_backend/internal/events"
	apphttp "detailing_site_backend/internal/http"
	"detailing_site_backend/internal/intake/handler"
	"detailing_site_backend/internal/intake/repository"
	"detailing_site_backend/internal/intake/service"
	"detailing_site_backend/platform/logger"
	"detailing_site_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the intake bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the intake module with all its dependencies.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "intake"
}

// RegisterRoutes mounts intake routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/inquiry", m.handler.SubmitInquiry)
	ctx.V1.POST("/booking", m.handler.SubmitBooking)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
