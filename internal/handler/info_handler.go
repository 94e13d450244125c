package handler

import (
	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// InfoHandler handles public announcement HTTP requests
type InfoHandler struct {
	infoService service.InfoService
	logger      *logger.Logger
}

// NewInfoHandler creates a new InfoHandler instance
func NewInfoHandler(infoService service.InfoService, logger *logger.Logger) *InfoHandler {
	return &InfoHandler{
		infoService: infoService,
		logger:      logger,
	}
}

// GetAll handles GET /api/v1/info
// @Summary List announcements
// @Description List public announcements, newest first.
// @Tags info
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.InfoPublik} "Info retrieved successfully"
// @Router /api/v1/info [get]
func (h *InfoHandler) GetAll(c *gin.Context) {
	infos, err := h.infoService.GetAll()
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list info")
		return
	}
	utils.SuccessResponse(c, "Info retrieved successfully", infos)
}

// Create handles POST /api/v1/info
// @Summary Create an announcement
// @Tags info
// @Accept json
// @Produce json
// @Param request body service.InfoRequest true "Announcement"
// @Success 201 {object} utils.APIResponse{data=models.InfoPublik} "Info created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/info [post]
func (h *InfoHandler) Create(c *gin.Context) {
	var req service.InfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	info, err := h.infoService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to create info")
		return
	}
	utils.CreatedResponse(c, "Info berhasil ditambahkan", info)
}

// Update handles PUT /api/v1/info/:id
// @Summary Update an announcement
// @Tags info
// @Accept json
// @Produce json
// @Param id path int true "Info ID"
// @Param request body service.InfoRequest true "Announcement"
// @Success 200 {object} utils.APIResponse "Info updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/info/{id} [put]
func (h *InfoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid info ID", nil)
		return
	}

	var req service.InfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.infoService.Update(middleware.CurrentUser(c), id, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update info")
		return
	}
	utils.SuccessResponse(c, "Info berhasil diubah", nil)
}

// Delete handles DELETE /api/v1/info/:id
// @Summary Delete an announcement
// @Tags info
// @Produce json
// @Param id path int true "Info ID"
// @Success 200 {object} utils.APIResponse "Info deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/info/{id} [delete]
func (h *InfoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid info ID", nil)
		return
	}

	if err := h.infoService.Delete(middleware.CurrentUser(c), id); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete info")
		return
	}
	utils.SuccessResponse(c, "Info berhasil dihapus", nil)
}
