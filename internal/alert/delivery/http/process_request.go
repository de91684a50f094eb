package http

import (
	"alertr-srv/internal/alert"
	"alertr-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) processAlertRequest(c *gin.Context) (alert.Payload, error) {
	var p alert.Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logger.Debugf(c.Request.Context(), "alert.delivery.http.processAlertRequest: bind: %v", err)
		return alert.Payload{}, errors.NewHTTPError(errors.CodeValidation, errors.MessageInvalidJSON, 0)
	}

	collector := errors.NewValidationErrorCollector(msgMissingFields)
	for _, f := range p.MissingFields() {
		collector.Add(errors.NewValidationError(errors.CodeValidation, f, "is required"))
	}
	if collector.HasError() {
		return alert.Payload{}, collector
	}
	return p, nil
}

func newTestPayload() alert.Payload {
	return alert.Payload{
		SessionID:        "test-" + uuid.NewString(),
		NotificationType: "test",
		Message:          "This is a test alert from claude-alertr.",
		Cwd:              "/claude-alertr/test",
		Hostname:         "claude-alertr",
	}
}
