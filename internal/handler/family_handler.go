package handler

import (
	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// FamilyHandler handles family registry HTTP requests
type FamilyHandler struct {
	familyService service.FamilyService
	logger        *logger.Logger
}

// NewFamilyHandler creates a new FamilyHandler instance
func NewFamilyHandler(familyService service.FamilyService, logger *logger.Logger) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
		logger:        logger,
	}
}

// GetFamilies handles GET /api/v1/families
// @Summary List families
// @Description List family cards with member counts. Optional rt filter.
// @Tags families
// @Produce json
// @Param rt query string false "Filter by RT"
// @Success 200 {object} utils.APIResponse{data=[]repository.FamilyWithCount} "Families retrieved successfully"
// @Router /api/v1/families [get]
func (h *FamilyHandler) GetFamilies(c *gin.Context) {
	families, err := h.familyService.GetFamilies(c.Query("rt"))
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list families")
		return
	}
	utils.SuccessResponse(c, "Families retrieved successfully", families)
}

// GetFamily handles GET /api/v1/families/:id
// @Summary Get family detail
// @Tags families
// @Produce json
// @Param id path int true "Family ID"
// @Success 200 {object} utils.APIResponse{data=service.FamilyDetail} "Family retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Family not found"
// @Router /api/v1/families/{id} [get]
func (h *FamilyHandler) GetFamily(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}

	detail, err := h.familyService.GetFamily(id)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to get family")
		return
	}
	utils.SuccessResponse(c, "Family retrieved successfully", detail)
}

// CreateFamily handles POST /api/v1/families
// @Summary Create a family card
// @Tags families
// @Accept json
// @Produce json
// @Param request body service.FamilyRequest true "Family"
// @Success 201 {object} utils.APIResponse{data=models.Family} "Family created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/families [post]
func (h *FamilyHandler) CreateFamily(c *gin.Context) {
	var req service.FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	family, err := h.familyService.CreateFamily(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to create family")
		return
	}
	utils.CreatedResponse(c, "Kartu keluarga berhasil ditambahkan", family)
}

// UpdateFamily handles PUT /api/v1/families/:id
// @Summary Update a family card
// @Tags families
// @Accept json
// @Produce json
// @Param id path int true "Family ID"
// @Param request body service.FamilyRequest true "Family"
// @Success 200 {object} utils.APIResponse "Family updated"
// @Failure 404 {object} utils.APIResponse "Family not found"
// @Router /api/v1/families/{id} [put]
func (h *FamilyHandler) UpdateFamily(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}

	var req service.FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.familyService.UpdateFamily(middleware.CurrentUser(c), id, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update family")
		return
	}
	utils.SuccessResponse(c, "Kartu keluarga berhasil diubah", nil)
}

// DeleteFamily handles DELETE /api/v1/families/:id
// @Summary Delete a family card
// @Description Delete a family together with its members.
// @Tags families
// @Produce json
// @Param id path int true "Family ID"
// @Success 200 {object} utils.APIResponse "Family deleted"
// @Failure 404 {object} utils.APIResponse "Family not found"
// @Router /api/v1/families/{id} [delete]
func (h *FamilyHandler) DeleteFamily(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}

	if err := h.familyService.DeleteFamily(middleware.CurrentUser(c), id); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete family")
		return
	}
	utils.SuccessResponse(c, "Kartu keluarga berhasil dihapus", nil)
}

// GetMembers handles GET /api/v1/families/:id/members
// @Summary List family members
// @Tags families
// @Produce json
// @Param id path int true "Family ID"
// @Success 200 {object} utils.APIResponse{data=[]models.FamilyMember} "Members retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Family not found"
// @Router /api/v1/families/{id}/members [get]
func (h *FamilyHandler) GetMembers(c *gin.Context) {
	familyID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}

	members, err := h.familyService.GetMembers(familyID)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list members")
		return
	}
	utils.SuccessResponse(c, "Members retrieved successfully", members)
}

// AddMember handles POST /api/v1/families/:id/members
// @Summary Add a family member
// @Tags families
// @Accept json
// @Produce json
// @Param id path int true "Family ID"
// @Param request body service.FamilyMemberRequest true "Member"
// @Success 201 {object} utils.APIResponse{data=models.FamilyMember} "Member created"
// @Failure 404 {object} utils.APIResponse "Family not found"
// @Router /api/v1/families/{id}/members [post]
func (h *FamilyHandler) AddMember(c *gin.Context) {
	familyID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}

	var req service.FamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	member, err := h.familyService.AddMember(middleware.CurrentUser(c), familyID, &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to add member")
		return
	}
	utils.CreatedResponse(c, "Anggota keluarga berhasil ditambahkan", member)
}

// UpdateMember handles PUT /api/v1/families/:id/members/:memberId
// @Summary Update a family member
// @Tags families
// @Accept json
// @Produce json
// @Param id path int true "Family ID"
// @Param memberId path int true "Member ID"
// @Param request body service.FamilyMemberRequest true "Member"
// @Success 200 {object} utils.APIResponse "Member updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/families/{id}/members/{memberId} [put]
func (h *FamilyHandler) UpdateMember(c *gin.Context) {
	familyID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid member ID", nil)
		return
	}

	var req service.FamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.familyService.UpdateMember(middleware.CurrentUser(c), familyID, memberID, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update member")
		return
	}
	utils.SuccessResponse(c, "Anggota keluarga berhasil diubah", nil)
}

// DeleteMember handles DELETE /api/v1/families/:id/members/:memberId
// @Summary Delete a family member
// @Tags families
// @Produce json
// @Param id path int true "Family ID"
// @Param memberId path int true "Member ID"
// @Success 200 {object} utils.APIResponse "Member deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/families/{id}/members/{memberId} [delete]
func (h *FamilyHandler) DeleteMember(c *gin.Context) {
	familyID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid family ID", nil)
		return
	}
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid member ID", nil)
		return
	}

	if err := h.familyService.DeleteMember(middleware.CurrentUser(c), familyID, memberID); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete member")
		return
	}
	utils.SuccessResponse(c, "Anggota keluarga berhasil dihapus", nil)
}
