package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/net/resp"
	"github.com/monigate/monigate/query"
	"github.com/monigate/monigate/service"
)

// AlertHandler handles HTTP requests for alerts.
type AlertHandler struct {
	svc    *service.AlertService
	logger *logger.Logger
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(svc *service.AlertService, log *logger.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, logger: log}
}

// List handles alert listing with filtering, sorting, projection and
// pagination. Any non-reserved query parameter filters the field of the
// same name.
// @Summary List alerts
// @Tags alerts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(100)
// @Param sort query string false "Comma-separated sort keys, '-' for descending"
// @Param fields query string false "Comma-separated projection fields"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	spec := query.FromValues(c.Request.URL.Query())

	page, meta, err := h.svc.List(c.Request.Context(), spec)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list alerts", "error", err)
		failUpstream(c, err, "alerts")
		return
	}

	resp.List(c.Writer, page, meta)
}
