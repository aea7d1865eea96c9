package handlers

import (
	"net/http"
	"strconv"

	auditRepo "gatherly/database/repository/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditHandler exposes the read-only audit log views.
type AuditHandler struct {
	AuditRepo auditRepo.AuditRepository
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(repo auditRepo.AuditRepository) *AuditHandler {
	return &AuditHandler{AuditRepo: repo}
}

// ListRecentHandler returns the most recent audit entries.
func (h *AuditHandler) ListRecentHandler(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = parsed
		}
	}

	entries, err := h.AuditRepo.ListRecent(c, limit)
	if err != nil {
		zap.L().Error("Failed to list audit entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListByEntityHandler returns the audit trail of one entity.
func (h *AuditHandler) ListByEntityHandler(c *gin.Context) {
	entries, err := h.AuditRepo.ListByEntity(c, c.Param("entityType"), c.Param("entityID"))
	if err != nil {
		zap.L().Error("Failed to list audit entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
