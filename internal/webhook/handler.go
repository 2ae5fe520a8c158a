package webhook

import (
	"net/http"

	"detailing_site_backend/internal/events"
	"detailing_site_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Handler accepts relayed database events and re-publishes them as
// notification triggers.
type Handler struct {
	bus events.Bus
	log *logger.Logger
}

func NewHandler(bus events.Bus, log *logger.Logger) *Handler {
	return &Handler{bus: bus, log: log}
}

// HandleNewRecord ingests a row-change payload from the upstream relay.
// The payload shape varies by relay version, so it is normalized before
// the notification event is published.
func (h *Handler) HandleNewRecord(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.WebhookEvent("new-record", false, "malformed payload")
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "malformed payload"})
		return
	}

	rec, ok := Normalize(payload)
	if !ok {
		h.log.WebhookEvent("new-record", false, "no record email")
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no record email"})
		return
	}

	h.log.WebhookEvent("new-record", true, "")

	// Notification failures are logged by the subscriber; the relay
	// retries on non-2xx, and a resend would duplicate emails.
	_ = h.bus.PublishSync(c.Request.Context(), events.RecordRelayed{
		BaseEvent: events.NewBaseEvent(),
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Vehicle:   rec.Vehicle,
		Package:   rec.Package,
		Date:      rec.Date,
		Time:      rec.Time,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
