package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/audit"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/httpresp"
	"github.com/idanaslund/final-project-backend/internal/middleware"
	"github.com/idanaslund/final-project-backend/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

type auditLogsDTO struct {
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// List returns the caller's own audit trail. Query: action, entity, from, to (YYYY-MM-DD), limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	limit, err := strconv.Atoi(c.Query("limit"))
	switch {
	case err != nil || limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
	}

	// --------------------------------------------------
	// optional date range, "to" is inclusive
	// --------------------------------------------------

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), user.ID, f)
	if err != nil {
		httperr.FromError(c, err, "Could not fetch audit logs")
		return
	}

	if logs == nil {
		logs = []models.AuditLog{}
	}
	httpresp.OK(c, auditLogsDTO{
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
