package handler

import (
	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/middleware"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// EventHandler handles event lifecycle HTTP requests
type EventHandler struct {
	eventService service.EventService
	logger       *logger.Logger
}

// NewEventHandler creates a new EventHandler instance
func NewEventHandler(eventService service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// GetEvents handles GET /api/v1/events
// @Summary List events
// @Description List events with per-event ledger totals. Optional status filter (aktif or selesai).
// @Tags events
// @Produce json
// @Param status query string false "Filter by status (aktif, selesai)"
// @Success 200 {object} utils.APIResponse{data=[]response.EventListItem} "Events retrieved successfully"
// @Router /api/v1/events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetEvents(c.Query("status"))
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list events")
		return
	}
	utils.SuccessResponse(c, "Events retrieved successfully", events)
}

// GetEventDetail handles GET /api/v1/events/:id
// @Summary Get event detail
// @Description Get a single event with its transactions and a recomputed summary.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse{data=response.EventDetailResponse} "Event retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Event not found"
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEventDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	detail, err := h.eventService.GetEventDetail(id)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to get event")
		return
	}
	utils.SuccessResponse(c, "Event retrieved successfully", detail)
}

// CreateEvent handles POST /api/v1/events
// @Summary Create an event
// @Description Create a penggalangan_dana or distribusi event. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Param request body service.EventRequest true "Event"
// @Success 201 {object} utils.APIResponse{data=models.Event} "Event created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	event, err := h.eventService.CreateEvent(middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to create event")
		return
	}
	utils.CreatedResponse(c, "Event berhasil dibuat", event)
}

// UpdateEvent handles PUT /api/v1/events/:id
// @Summary Update an event
// @Description Update event metadata. The event type cannot change and completed events are immutable.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body service.EventRequest true "Event"
// @Success 200 {object} utils.APIResponse "Event updated"
// @Failure 404 {object} utils.APIResponse "Event not found"
// @Failure 409 {object} utils.APIResponse "Event already completed"
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.eventService.UpdateEvent(middleware.CurrentUser(c), id, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update event")
		return
	}
	utils.SuccessResponse(c, "Event berhasil diubah", nil)
}

// DeleteEvent handles DELETE /api/v1/events/:id
// @Summary Delete an event
// @Description Delete an event. Only allowed while the event has no transactions.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse "Event deleted"
// @Failure 404 {object} utils.APIResponse "Event not found"
// @Failure 409 {object} utils.APIResponse "Event has transactions"
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	if err := h.eventService.DeleteEvent(middleware.CurrentUser(c), id); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete event")
		return
	}
	utils.SuccessResponse(c, "Event berhasil dihapus", nil)
}

// CompleteEvent handles POST /api/v1/events/:id/complete
// @Summary Complete an event
// @Description Close an active event and transfer its positive balance into the kas ledger exactly once.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse{data=response.CompleteEventResponse} "Event completed"
// @Failure 404 {object} utils.APIResponse "Event not found"
// @Failure 409 {object} utils.APIResponse "Event already completed"
// @Failure 422 {object} utils.APIResponse "Negative balance"
// @Router /api/v1/events/{id}/complete [post]
func (h *EventHandler) CompleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	result, err := h.eventService.CompleteEvent(middleware.CurrentUser(c), id)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to complete event")
		return
	}
	utils.SuccessResponse(c, "Event berhasil diselesaikan", result)
}

// GetEventReport handles GET /api/v1/events/:id/report
// @Summary Get event report
// @Description Build a shareable plain-text report of the event ledger and summary.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse{data=service.EventReport} "Report generated"
// @Failure 404 {object} utils.APIResponse "Event not found"
// @Router /api/v1/events/{id}/report [get]
func (h *EventHandler) GetEventReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	report, err := h.eventService.GetEventReport(id)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to generate event report")
		return
	}
	utils.SuccessResponse(c, "Report generated successfully", report)
}

// AddTransaction handles POST /api/v1/events/:id/transactions
// @Summary Add an event transaction
// @Description Append a masuk or keluar entry to an active event ledger. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body service.EventTransactionRequest true "Transaction"
// @Success 201 {object} utils.APIResponse{data=models.EventTransaction} "Transaction created"
// @Failure 409 {object} utils.APIResponse "Event already completed"
// @Router /api/v1/events/{id}/transactions [post]
func (h *EventHandler) AddTransaction(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	var req service.EventTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	trans, err := h.eventService.AddTransaction(middleware.CurrentUser(c), eventID, &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to add event transaction")
		return
	}
	utils.CreatedResponse(c, "Transaksi event berhasil ditambahkan", trans)
}

// UpdateTransaction handles PUT /api/v1/events/:id/transactions/:transId
// @Summary Update an event transaction
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param transId path int true "Transaction ID"
// @Param request body service.EventTransactionRequest true "Transaction"
// @Success 200 {object} utils.APIResponse "Transaction updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/events/{id}/transactions/{transId} [put]
func (h *EventHandler) UpdateTransaction(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}
	transID, ok := parseIDParam(c, "transId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid transaction ID", nil)
		return
	}

	var req service.EventTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.eventService.UpdateTransaction(middleware.CurrentUser(c), eventID, transID, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update event transaction")
		return
	}
	utils.SuccessResponse(c, "Transaksi event berhasil diubah", nil)
}

// DeleteTransaction handles DELETE /api/v1/events/:id/transactions/:transId
// @Summary Delete an event transaction
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param transId path int true "Transaction ID"
// @Success 200 {object} utils.APIResponse "Transaction deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/events/{id}/transactions/{transId} [delete]
func (h *EventHandler) DeleteTransaction(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}
	transID, ok := parseIDParam(c, "transId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid transaction ID", nil)
		return
	}

	if err := h.eventService.DeleteTransaction(middleware.CurrentUser(c), eventID, transID); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete event transaction")
		return
	}
	utils.SuccessResponse(c, "Transaksi event berhasil dihapus", nil)
}

// GetRecipients handles GET /api/v1/events/:id/recipients
// @Summary List event recipients
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse{data=[]models.EventRecipient} "Recipients retrieved successfully"
// @Router /api/v1/events/{id}/recipients [get]
func (h *EventHandler) GetRecipients(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	recipients, err := h.eventService.GetRecipients(eventID)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list recipients")
		return
	}
	utils.SuccessResponse(c, "Recipients retrieved successfully", recipients)
}

// AddRecipient handles POST /api/v1/events/:id/recipients
// @Summary Add an event recipient
// @Description Register a distribution recipient. Only valid for active distribusi events.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body service.EventRecipientRequest true "Recipient"
// @Success 201 {object} utils.APIResponse{data=models.EventRecipient} "Recipient created"
// @Failure 400 {object} utils.APIResponse "Not a distribusi event"
// @Router /api/v1/events/{id}/recipients [post]
func (h *EventHandler) AddRecipient(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	var req service.EventRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	recipient, err := h.eventService.AddRecipient(middleware.CurrentUser(c), eventID, &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to add recipient")
		return
	}
	utils.CreatedResponse(c, "Penerima berhasil ditambahkan", recipient)
}

// UpdateRecipient handles PUT /api/v1/events/:id/recipients/:recipientId
// @Summary Update an event recipient
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param recipientId path int true "Recipient ID"
// @Param request body service.EventRecipientRequest true "Recipient"
// @Success 200 {object} utils.APIResponse "Recipient updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/events/{id}/recipients/{recipientId} [put]
func (h *EventHandler) UpdateRecipient(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}
	recipientID, ok := parseIDParam(c, "recipientId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid recipient ID", nil)
		return
	}

	var req service.EventRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.eventService.UpdateRecipient(middleware.CurrentUser(c), eventID, recipientID, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update recipient")
		return
	}
	utils.SuccessResponse(c, "Penerima berhasil diubah", nil)
}

// DeleteRecipient handles DELETE /api/v1/events/:id/recipients/:recipientId
// @Summary Delete an event recipient
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param recipientId path int true "Recipient ID"
// @Success 200 {object} utils.APIResponse "Recipient deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/events/{id}/recipients/{recipientId} [delete]
func (h *EventHandler) DeleteRecipient(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}
	recipientID, ok := parseIDParam(c, "recipientId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid recipient ID", nil)
		return
	}

	if err := h.eventService.DeleteRecipient(middleware.CurrentUser(c), eventID, recipientID); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete recipient")
		return
	}
	utils.SuccessResponse(c, "Penerima berhasil dihapus", nil)
}

// GetPanitia handles GET /api/v1/events/:id/panitia
// @Summary List event committee members
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse{data=[]models.EventPanitia} "Panitia retrieved successfully"
// @Router /api/v1/events/{id}/panitia [get]
func (h *EventHandler) GetPanitia(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	panitia, err := h.eventService.GetPanitia(eventID)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to list panitia")
		return
	}
	utils.SuccessResponse(c, "Panitia retrieved successfully", panitia)
}

// AddPanitia handles POST /api/v1/events/:id/panitia
// @Summary Add an event committee member
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body service.EventPanitiaRequest true "Panitia"
// @Success 201 {object} utils.APIResponse{data=models.EventPanitia} "Panitia created"
// @Router /api/v1/events/{id}/panitia [post]
func (h *EventHandler) AddPanitia(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}

	var req service.EventPanitiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	panitia, err := h.eventService.AddPanitia(middleware.CurrentUser(c), eventID, &req)
	if err != nil {
		utils.ErrorResponse(c, err, "Failed to add panitia")
		return
	}
	utils.CreatedResponse(c, "Panitia berhasil ditambahkan", panitia)
}

// UpdatePanitia handles PUT /api/v1/events/:id/panitia/:panitiaId
// @Summary Update an event committee member
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param panitiaId path int true "Panitia ID"
// @Param request body service.EventPanitiaRequest true "Panitia"
// @Success 200 {object} utils.APIResponse "Panitia updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/events/{id}/panitia/{panitiaId} [put]
func (h *EventHandler) UpdatePanitia(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}
	panitiaID, ok := parseIDParam(c, "panitiaId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid panitia ID", nil)
		return
	}

	var req service.EventPanitiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.eventService.UpdatePanitia(middleware.CurrentUser(c), eventID, panitiaID, &req); err != nil {
		utils.ErrorResponse(c, err, "Failed to update panitia")
		return
	}
	utils.SuccessResponse(c, "Panitia berhasil diubah", nil)
}

// DeletePanitia handles DELETE /api/v1/events/:id/panitia/:panitiaId
// @Summary Delete an event committee member
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param panitiaId path int true "Panitia ID"
// @Success 200 {object} utils.APIResponse "Panitia deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/events/{id}/panitia/{panitiaId} [delete]
func (h *EventHandler) DeletePanitia(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid event ID", nil)
		return
	}
	panitiaID, ok := parseIDParam(c, "panitiaId")
	if !ok {
		utils.BadRequestResponse(c, "Invalid panitia ID", nil)
		return
	}

	if err := h.eventService.DeletePanitia(middleware.CurrentUser(c), eventID, panitiaID); err != nil {
		utils.ErrorResponse(c, err, "Failed to delete panitia")
		return
	}
	utils.SuccessResponse(c, "Panitia berhasil dihapus", nil)
}
