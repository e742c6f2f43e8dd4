package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/net/resp"
	"github.com/monigate/monigate/query"
	"github.com/monigate/monigate/service"
	"github.com/monigate/monigate/types"
)

// SilenceHandler handles HTTP requests for silences.
type SilenceHandler struct {
	svc    *service.SilenceService
	logger *logger.Logger
}

// NewSilenceHandler creates a new silence handler.
func NewSilenceHandler(svc *service.SilenceService, log *logger.Logger) *SilenceHandler {
	return &SilenceHandler{svc: svc, logger: log}
}

// SilenceMatcher is one label matcher of a silence.
type SilenceMatcher struct {
	Name    string `json:"name" binding:"required"`
	Value   string `json:"value" binding:"required"`
	IsRegex bool   `json:"isRegex"`
}

// CreateSilenceRequest represents the request to create a silence. The
// structural checks here run before the pipeline or upstream is touched.
type CreateSilenceRequest struct {
	Matchers  []SilenceMatcher `json:"matchers" binding:"required,min=1,dive"`
	StartsAt  string           `json:"startsAt" binding:"required,rfc3339"`
	EndsAt    string           `json:"endsAt" binding:"required,rfc3339"`
	CreatedBy string           `json:"createdBy" binding:"required"`
	Comment   string           `json:"comment" binding:"required"`
}

// List handles silence listing with filtering, sorting, projection and
// pagination.
// @Summary List silences
// @Tags silences
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/silences [get]
func (h *SilenceHandler) List(c *gin.Context) {
	spec := query.FromValues(c.Request.URL.Query())

	page, meta, err := h.svc.List(c.Request.Context(), spec)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list silences", "error", err)
		failUpstream(c, err, "alerts")
		return
	}

	resp.List(c.Writer, page, meta)
}

// Get handles silence retrieval by id.
// @Summary Get a silence by ID
// @Tags silences
// @Produce json
// @Param silence_id path string true "Silence ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/silences/{silence_id} [get]
func (h *SilenceHandler) Get(c *gin.Context) {
	id := c.Param("silence_id")
	if id == "" {
		resp.Fail(c.Writer, resp.BadRequest("silence id is required"))
		return
	}

	silence, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to get silence", "id", id, "error", err)
		failUpstream(c, err, "silence")
		return
	}

	resp.Success(c.Writer, silence)
}

// Create handles silence creation.
// @Summary Create a silence
// @Tags silences
// @Accept json
// @Produce json
// @Param request body CreateSilenceRequest true "Create silence request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/silences [post]
func (h *SilenceHandler) Create(c *gin.Context) {
	var req CreateSilenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid silence request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req.toRecord())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to create silence", "error", err)
		failUpstream(c, err, "silence")
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, created)
}

// Delete handles silence expiry.
// @Summary Delete a silence
// @Tags silences
// @Param silence_id path string true "Silence ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/silences/{silence_id} [delete]
func (h *SilenceHandler) Delete(c *gin.Context) {
	id := c.Param("silence_id")
	if id == "" {
		resp.Fail(c.Writer, resp.BadRequest("silence id is required"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error(c.Request.Context(), "failed to delete silence", "id", id, "error", err)
		failUpstream(c, err, "silence")
		return
	}

	resp.Success(c.Writer, "silence deleted")
}

// toRecord flattens the validated request into the schemaless shape the
// upstream expects.
func (r *CreateSilenceRequest) toRecord() types.JSON {
	matchers := make([]any, len(r.Matchers))
	for i, m := range r.Matchers {
		matchers[i] = types.JSON{
			"name":    m.Name,
			"value":   m.Value,
			"isRegex": m.IsRegex,
		}
	}
	return types.JSON{
		"matchers":  matchers,
		"startsAt":  r.StartsAt,
		"endsAt":    r.EndsAt,
		"createdBy": r.CreatedBy,
		"comment":   r.Comment,
	}
}
