package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/net/resp"
	"github.com/monigate/monigate/query"
	"github.com/monigate/monigate/service"
)

// RuleHandler handles HTTP requests for alerting and recording rules.
type RuleHandler struct {
	svc    *service.RuleService
	logger *logger.Logger
}

// NewRuleHandler creates a new rule handler.
func NewRuleHandler(svc *service.RuleService, log *logger.Logger) *RuleHandler {
	return &RuleHandler{svc: svc, logger: log}
}

// List handles rule listing with filtering, sorting, projection and
// pagination.
// @Summary List rules
// @Tags rules
// @Produce json
// @Param type query string false "Rule type filter, e.g. alerting"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/rules [get]
func (h *RuleHandler) List(c *gin.Context) {
	spec := query.FromValues(c.Request.URL.Query())

	page, meta, err := h.svc.List(c.Request.Context(), spec)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list rules", "error", err)
		failUpstream(c, err, "metrics")
		return
	}

	resp.List(c.Writer, page, meta)
}
