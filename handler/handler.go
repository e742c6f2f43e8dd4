// Package handler exposes the gateway's HTTP API on gin.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/net/resp"
	"github.com/monigate/monigate/service"
	"github.com/monigate/monigate/upstream"
)

// Handler groups the per-resource handlers.
type Handler struct {
	Alert   *AlertHandler
	Rule    *RuleHandler
	Silence *SilenceHandler
}

// New creates the handler group.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		Alert:   NewAlertHandler(svc.Alert, log),
		Rule:    NewRuleHandler(svc.Rule, log),
		Silence: NewSilenceHandler(svc.Silence, log),
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/alerts", h.Alert.List)
		api.GET("/rules", h.Rule.List)
		api.GET("/silences", h.Silence.List)
		api.GET("/silences/:silence_id", h.Silence.Get)
		api.POST("/silences", h.Silence.Create)
		api.DELETE("/silences/:silence_id", h.Silence.Delete)
	}
}

// failUpstream maps an upstream error onto the response envelope.
func failUpstream(c *gin.Context, err error, what string) {
	if upstream.IsNotFound(err) {
		resp.Fail(c.Writer, resp.NotFound(what+" not found"))
		return
	}
	resp.Fail(c.Writer, resp.BadGateway("failed to reach "+what+" source"))
}
