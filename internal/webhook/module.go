// Package webhook ingests row-insert events relayed by the backing
// store and republishes them on the internal event bus so the
// notification module can fan them out.
package webhook

import (
	"detailing_site_backend/internal/events"
	apphttp "detailing_site_backend/internal/http"
	"detailing_site_backend/platform/config"
	"detailing_site_backend/platform/logger"
)

type Module struct {
	handler *Handler
	cfg     config.WebhookConfig
	log     *logger.Logger
}

var _ apphttp.Module = (*Module)(nil)

func NewModule(bus events.Bus, cfg config.WebhookConfig, log *logger.Logger) *Module {
	return &Module{
		handler: NewHandler(bus, log),
		cfg:     cfg,
		log:     log,
	}
}

func (m *Module) Name() string { return "webhook" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/webhook", SharedSecretAuth(m.cfg, m.log))
	group.POST("/new-record", m.handler.HandleNewRecord)
}
