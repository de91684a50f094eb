package http

import (
	"time"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Status reports the service and which channels are configured.
func (h *Handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Channels()))
}

// Alert delivers the posted payload to every channel.
func (h *Handler) Alert(c *gin.Context) {
	p, err := h.processAlertRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	h.notify(c, p)
}

// Test delivers a generated payload to every channel.
func (h *Handler) Test(c *gin.Context) {
	p := newTestPayload()
	p.Timestamp = time.Now().UTC().Format(time.RFC3339)
	h.notify(c, p)
}

func (h *Handler) notify(c *gin.Context, p alert.Payload) {
	ctx := c.Request.Context()
	report, err := h.uc.Notify(ctx, p)
	if err != nil {
		h.logger.Warnf(ctx, "alert.delivery.http.notify: %v", err)
		response.ErrorWithMap(c, err, errorMapping, h.discord)
		return
	}
	response.OK(c, newAlertResp(report))
}
