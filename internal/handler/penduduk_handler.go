package handler

import (
	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// PendudukHandler handles special resident registry HTTP requests
type PendudukHandler struct {
	pendudukService service.PendudukService
	logger          *logger.Logger
}

// NewPendudukHandler creates a new PendudukHandler instance
func NewPendudukHandler(pendudukService service.PendudukService, logger *logger.Logger) *PendudukHandler {
	return &PendudukHandler{
		pendudukService: pendudukService,
		logger:          logger,
	}
}

// GetAll handles GET /api/v1/penduduk-khusus
// @Summary List special residents
// @Description List special residents with per-label counts.
// @Tags penduduk
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.PendudukKhususListResponse} "Penduduk khusus retrieved successfully"
// @Router /api/v1/penduduk-khusus [get]
func (h *PendudukHandler) GetAll(c *gin.Context) {
	list, err := h.pendudukService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list penduduk khusus")
		return
	}
	utils.SuccessResponse(c, "Penduduk khusus retrieved successfully", list)
}

// Create handles POST /api/v1/penduduk-khusus
// @Summary Create a special resident
// @Tags penduduk
// @Accept json
// @Produce json
// @Param request body service.PendudukKhususRequest true "Penduduk khusus"
// @Success 201 {object} utils.APIResponse{data=models.PendudukKhusus} "Penduduk khusus created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/penduduk-khusus [post]
func (h *PendudukHandler) Create(c *gin.Context) {
	var req service.PendudukKhususRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	penduduk, err := h.pendudukService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to create penduduk khusus")
		return
	}
	utils.CreatedResponse(c, "Penduduk khusus berhasil ditambahkan", penduduk)
}

// Update handles PUT /api/v1/penduduk-khusus/:id
// @Summary Update a special resident
// @Tags penduduk
// @Accept json
// @Produce json
// @Param id path int true "Penduduk khusus ID"
// @Param request body service.PendudukKhususRequest true "Penduduk khusus"
// @Success 200 {object} utils.APIResponse "Penduduk khusus updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/penduduk-khusus/{id} [put]
func (h *PendudukHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid penduduk khusus ID", nil)
		return
	}

	var req service.PendudukKhususRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.pendudukService.Update(middleware.CurrentUser(c), id, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update penduduk khusus")
		return
	}
	utils.SuccessResponse(c, "Penduduk khusus berhasil diubah", nil)
}

// Delete handles DELETE /api/v1/penduduk-khusus/:id
// @Summary Delete a special resident
// @Tags penduduk
// @Produce json
// @Param id path int true "Penduduk khusus ID"
// @Success 200 {object} utils.APIResponse "Penduduk khusus deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/penduduk-khusus/{id} [delete]
func (h *PendudukHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid penduduk khusus ID", nil)
		return
	}

	if err := h.pendudukService.Delete(middleware.CurrentUser(c), id); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete penduduk khusus")
		return
	}
	utils.SuccessResponse(c, "Penduduk khusus berhasil dihapus", nil)
}

// Search handles GET /api/v1/penduduk/search
// @Summary Search residents
// @Description Search family members and special residents by name. Queries shorter than 2 characters return an empty list.
// @Tags penduduk
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} utils.APIResponse{data=[]response.PendudukSearchResult} "Search results"
// @Router /api/v1/penduduk/search [get]
func (h *PendudukHandler) Search(c *gin.Context) {
	results, err := h.pendudukService.Search(c.Query("q"))
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to search penduduk")
		return
	}
	utils.SuccessResponse(c, "Search results retrieved successfully", results)
}
