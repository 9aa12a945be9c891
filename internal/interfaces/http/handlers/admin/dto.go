package admin

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	requestUC "certhub/internal/application/request/usecases"
	"certhub/internal/shared/errors"
)

// completionDateLayout is the wire format for completion dates.
const completionDateLayout = "2006-01-02"

type ApproveRequestRequest struct {
	CompletionDate string `json:"completion_date" binding:"required"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type RetryGenerationRequest struct {
	CompletionDate string `json:"completion_date"`
}

type BulkApproveRequest struct {
	RequestIDs     []uint `json:"request_ids" binding:"required,min=1"`
	CompletionDate string `json:"completion_date" binding:"required"`
}

type BulkRejectRequest struct {
	RequestIDs []uint `json:"request_ids" binding:"required,min=1"`
	Reason     string `json:"reason" binding:"required,max=500"`
}

type CreateInstitutionRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	LogoURL string `json:"logo_url" binding:"omitempty,url,max=500"`
}

type UpdateInstitutionRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=200"`
	Active *bool   `json:"active"`
}

type CreateEventDateRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Date  string `json:"date" binding:"required"`
	Theme string `json:"theme" binding:"max=200"`
}

type UpdateEventDateRequest struct {
	Active *bool `json:"active"`
}

type AddParticipantRequest struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"max=1000"`
}

func parseCompletionDate(value string) (time.Time, error) {
	date, err := time.Parse(completionDateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("completion_date must use YYYY-MM-DD format")
	}
	return date, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

func parseListRequestsCommand(c *gin.Context) requestUC.ListRequestsCommand {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	cmd := requestUC.ListRequestsCommand{
		Status:      c.Query("status"),
		SubjectKind: c.Query("subject_kind"),
		Page:        page,
		PageSize:    pageSize,
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}

	if raw := c.Query("requester_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cmd.RequesterID = uint(id)
		}
	}
	if raw := c.Query("vendor_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cmd.VendorID = uint(id)
		}
	}

	return cmd
}
