package notification

import (
	"log/slog"
	"net/http"

	"eksemail/internal/common"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the notification domain.
type Handler struct {
	service *Service
}

// NewHandler creates a new notification handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Send handles POST /api/v1/send
// Renders the requested template and performs one synchronous SMTP send.
// Responds 200 {"success":true} or 500 {"error":"..."} — the storefront's
// trigger functions parse exactly this shape.
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed input is a generic dispatch failure, same shape as the rest.
		common.Error(c, http.StatusInternalServerError, "invalid request body: "+err.Error())
		return
	}

	if err := h.service.Dispatch(c.Request.Context(), &req); err != nil {
		slog.Error("dispatch failed",
			"template", req.Template,
			"to", req.To,
			"error", err,
		)
		common.HandleError(c, err)
		return
	}

	common.OK(c)
}

// ListLogs handles GET /api/v1/logs
// Returns paginated dispatch records for the admin console.
func (h *Handler) ListLogs(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		common.Error(c, http.StatusInternalServerError, "invalid query parameters: "+err.Error())
		return
	}

	resp, err := h.service.ListLogs(c.Request.Context(), filter)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.Data(c, http.StatusOK, resp)
}

// RegisterRoutes registers notification routes to the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send", h.Send)
	rg.GET("/logs", h.ListLogs)
}
