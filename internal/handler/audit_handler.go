package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService service.AuditService
	logger       *logger.Logger
}

// NewAuditHandler creates a new AuditHandler instance
func NewAuditHandler(auditService service.AuditService, logger *logger.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// GetLogs handles GET /api/v1/audit
// @Summary List audit logs
// @Description List the most recent audit log entries, newest first. Admin only.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum entries to return (default 200)"
// @Success 200 {object} utils.APIResponse{data=[]models.AuditLog} "Audit logs retrieved successfully"
// @Router /api/v1/audit [get]
func (h *AuditHandler) GetLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.auditService.GetLogs(limit)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list audit logs")
		return
	}
	utils.SuccessResponse(c, "Audit logs retrieved successfully", logs)
}
