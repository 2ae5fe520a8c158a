package webhook

import (
	"net/http"

	"detailing_site_backend/platform/config"
	"detailing_site_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// SharedSecretHeader carries the pre-shared secret on relayed events.
const SharedSecretHeader = "x-shared-secret"

// SharedSecretAuth validates the x-shared-secret header against the
// configured secret. When no secret is configured the gate is skipped
// entirely; config.Load refuses that combination in production mode.
func SharedSecretAuth(cfg config.WebhookConfig, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := cfg.GetWebhookSharedSecret()
		if secret == "" {
			c.Next()
			return
		}

		if c.GetHeader(SharedSecretHeader) != secret {
			log.WebhookEvent("new-record", false, "bad signature")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "bad signature"})
			return
		}

		c.Next()
	}
}
