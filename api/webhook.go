package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/enroute-bot/enroute-api/schema"
)

// verifyWebhook answers the platform's subscription handshake: when the
// verify token matches, the challenge is echoed back verbatim.
func (s *Server) verifyWebhook(c *gin.Context) {
	if c.Query("hub.verify_token") == viper.GetString("messenger.verify_token") {
		c.String(http.StatusOK, c.Query("hub.challenge"))
		return
	}

	c.String(http.StatusOK, "Invalid verification token")
}

// receiveWebhook feeds every messaging event of a delivery to the
// conversation engine. The platform retries deliveries that are not
// acknowledged, so the response is always 200 "Success", even for a
// payload that cannot be parsed.
func (s *Server) receiveWebhook(c *gin.Context) {
	var req schema.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithField("error", err).Warn("undecodable webhook delivery")
		c.String(http.StatusOK, "Success")
		return
	}

	if req.Object == "page" {
		for _, entry := range req.Entry {
			for _, event := range entry.Messaging {
				s.engine.HandleEvent(c.Request.Context(), event)
			}
		}
	}

	c.String(http.StatusOK, "Success")
}
