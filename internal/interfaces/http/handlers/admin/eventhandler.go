package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	eventUC "certhub/internal/application/event/usecases"
	"certhub/internal/interfaces/http/middleware"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
	"certhub/internal/shared/utils"
)

// eventDateLayout is the wire format for event dates.
const eventDateLayout = "2006-01-02"

// EventHandler serves institution, event date, and roster management.
type EventHandler struct {
	createInstitutionUC *eventUC.CreateInstitutionUseCase
	updateInstitutionUC *eventUC.UpdateInstitutionUseCase
	deleteInstitutionUC *eventUC.DeleteInstitutionUseCase
	listInstitutionsUC  *eventUC.ListInstitutionsUseCase
	createEventDateUC   *eventUC.CreateEventDateUseCase
	updateEventDateUC   *eventUC.UpdateEventDateUseCase
	deleteEventDateUC   *eventUC.DeleteEventDateUseCase
	listEventDatesUC    *eventUC.ListEventDatesUseCase
	addParticipantUC    *eventUC.AddParticipantUseCase
	removeParticipantUC *eventUC.RemoveParticipantUseCase
	listParticipantsUC  *eventUC.ListParticipantsUseCase
	logger              logger.Interface
}

func NewEventHandler(
	createInstitutionUC *eventUC.CreateInstitutionUseCase,
	updateInstitutionUC *eventUC.UpdateInstitutionUseCase,
	deleteInstitutionUC *eventUC.DeleteInstitutionUseCase,
	listInstitutionsUC *eventUC.ListInstitutionsUseCase,
	createEventDateUC *eventUC.CreateEventDateUseCase,
	updateEventDateUC *eventUC.UpdateEventDateUseCase,
	deleteEventDateUC *eventUC.DeleteEventDateUseCase,
	listEventDatesUC *eventUC.ListEventDatesUseCase,
	addParticipantUC *eventUC.AddParticipantUseCase,
	removeParticipantUC *eventUC.RemoveParticipantUseCase,
	listParticipantsUC *eventUC.ListParticipantsUseCase,
) *EventHandler {
	return &EventHandler{
		createInstitutionUC: createInstitutionUC,
		updateInstitutionUC: updateInstitutionUC,
		deleteInstitutionUC: deleteInstitutionUC,
		listInstitutionsUC:  listInstitutionsUC,
		createEventDateUC:   createEventDateUC,
		updateEventDateUC:   updateEventDateUC,
		deleteEventDateUC:   deleteEventDateUC,
		listEventDatesUC:    listEventDatesUC,
		addParticipantUC:    addParticipantUC,
		removeParticipantUC: removeParticipantUC,
		listParticipantsUC:  listParticipantsUC,
		logger:              logger.NewLogger(),
	}
}

// CreateInstitution handles POST /admin/institutions
func (h *EventHandler) CreateInstitution(c *gin.Context) {
	var req CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := eventUC.CreateInstitutionCommand{
		Name:      req.Name,
		LogoURL:   req.LogoURL,
		CreatedBy: middleware.OperatorID(c),
	}

	result, err := h.createInstitutionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Institution created")
}

// UpdateInstitution handles PATCH /admin/institutions/:id
func (h *EventHandler) UpdateInstitution(c *gin.Context) {
	institutionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := eventUC.UpdateInstitutionCommand{
		InstitutionID: institutionID,
		Name:          req.Name,
		Active:        req.Active,
	}

	if err := h.updateInstitutionUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Institution updated", nil)
}

// DeleteInstitution handles DELETE /admin/institutions/:id
func (h *EventHandler) DeleteInstitution(c *gin.Context) {
	institutionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteInstitutionUC.Execute(c.Request.Context(), eventUC.DeleteInstitutionCommand{InstitutionID: institutionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListInstitutions handles GET /admin/institutions
func (h *EventHandler) ListInstitutions(c *gin.Context) {
	result, err := h.listInstitutionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateEventDate handles POST /admin/institutions/:id/events
func (h *EventHandler) CreateEventDate(c *gin.Context) {
	institutionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateEventDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("date must use YYYY-MM-DD format"))
		return
	}

	cmd := eventUC.CreateEventDateCommand{
		InstitutionID: institutionID,
		Name:          req.Name,
		Date:          date,
		Theme:         req.Theme,
		CreatedBy:     middleware.OperatorID(c),
	}

	result, err := h.createEventDateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Event date created")
}

// UpdateEventDate handles PATCH /admin/events/:id
func (h *EventHandler) UpdateEventDate(c *gin.Context) {
	eventDateID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEventDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := eventUC.UpdateEventDateCommand{
		EventDateID: eventDateID,
		Active:      req.Active,
	}

	if err := h.updateEventDateUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event date updated", nil)
}

// DeleteEventDate handles DELETE /admin/events/:id
func (h *EventHandler) DeleteEventDate(c *gin.Context) {
	eventDateID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteEventDateUC.Execute(c.Request.Context(), eventUC.DeleteEventDateCommand{EventDateID: eventDateID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListEventDates handles GET /admin/institutions/:id/events
func (h *EventHandler) ListEventDates(c *gin.Context) {
	institutionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEventDatesUC.Execute(c.Request.Context(), eventUC.ListEventDatesCommand{InstitutionID: institutionID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddParticipant handles POST /admin/events/:id/participants
func (h *EventHandler) AddParticipant(c *gin.Context) {
	eventDateID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := eventUC.AddParticipantCommand{
		EventDateID: eventDateID,
		FullName:    req.FullName,
		Email:       req.Email,
		AddedBy:     middleware.OperatorID(c),
	}

	result, err := h.addParticipantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Participant added")
}

// RemoveParticipant handles DELETE /admin/participants/:id
func (h *EventHandler) RemoveParticipant(c *gin.Context) {
	participantID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeParticipantUC.Execute(c.Request.Context(), eventUC.RemoveParticipantCommand{ParticipantID: participantID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListParticipants handles GET /admin/events/:id/participants
func (h *EventHandler) ListParticipants(c *gin.Context) {
	eventDateID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listParticipantsUC.Execute(c.Request.Context(), eventUC.ListParticipantsCommand{EventDateID: eventDateID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
