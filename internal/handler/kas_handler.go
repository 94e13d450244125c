package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// KasHandler handles treasury ledger HTTP requests
type KasHandler struct {
	kasService service.KasService
	logger     *logger.Logger
}

// NewKasHandler creates a new KasHandler instance
func NewKasHandler(kasService service.KasService, logger *logger.Logger) *KasHandler {
	return &KasHandler{
		kasService: kasService,
		logger:     logger,
	}
}

// List handles GET /api/v1/kas
// @Summary List kas transactions
// @Description List treasury ledger entries with a recomputed summary. Supports start_date, end_date and type filters.
// @Tags kas
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param type query string false "masuk or keluar"
// @Success 200 {object} utils.APIResponse{data=response.KasListResponse} "Kas transactions retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/kas [get]
func (h *KasHandler) List(c *gin.Context) {
	list, err := h.kasService.List(c.Query("start_date"), c.Query("end_date"), c.Query("type"))
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list kas transactions")
		return
	}
	utils.SuccessResponse(c, "Kas transactions retrieved successfully", list)
}

// Create handles POST /api/v1/kas
// @Summary Create a kas transaction
// @Description Append an entry to the treasury ledger. Admin only.
// @Tags kas
// @Accept json
// @Produce json
// @Param request body service.KasTransactionRequest true "Transaction"
// @Success 201 {object} utils.APIResponse{data=models.KasTransaction} "Kas transaction created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Router /api/v1/kas [post]
func (h *KasHandler) Create(c *gin.Context) {
	var req service.KasTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	trans, err := h.kasService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to create kas transaction")
		return
	}
	utils.CreatedResponse(c, "Transaksi kas berhasil ditambahkan", trans)
}

// Update handles PUT /api/v1/kas/:id
// @Summary Update a kas transaction
// @Tags kas
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body service.KasTransactionRequest true "Transaction"
// @Success 200 {object} utils.APIResponse "Kas transaction updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/kas/{id} [put]
func (h *KasHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid transaction ID", nil)
		return
	}

	var req service.KasTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.kasService.Update(middleware.CurrentUser(c), id, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update kas transaction")
		return
	}
	utils.SuccessResponse(c, "Transaksi kas berhasil diubah", nil)
}

// Delete handles DELETE /api/v1/kas/:id
// @Summary Delete a kas transaction
// @Tags kas
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.APIResponse "Kas transaction deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/kas/{id} [delete]
func (h *KasHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid transaction ID", nil)
		return
	}

	if err := h.kasService.Delete(middleware.CurrentUser(c), id); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete kas transaction")
		return
	}
	utils.SuccessResponse(c, "Transaksi kas berhasil dihapus", nil)
}

// Export handles GET /api/v1/kas/export
// @Summary Export kas transactions to Excel
// @Description Download the filtered treasury ledger as an xlsx workbook. Admin only.
// @Tags kas
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param type query string false "masuk or keluar"
// @Success 200 {file} binary "Excel file"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/kas/export [get]
func (h *KasHandler) Export(c *gin.Context) {
	content, filename, err := h.kasService.ExportToExcel(c.Query("start_date"), c.Query("end_date"), c.Query("type"))
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to export kas transactions")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
