package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	requestUC "certhub/internal/application/request/usecases"
	"certhub/internal/interfaces/http/middleware"
	"certhub/internal/shared/logger"
	"certhub/internal/shared/utils"
)

// RequestHandler serves the admin request lifecycle endpoints.
type RequestHandler struct {
	listUC        *requestUC.ListRequestsUseCase
	getUC         *requestUC.GetRequestUseCase
	approveUC     *requestUC.ApproveRequestUseCase
	rejectUC      *requestUC.RejectRequestUseCase
	retryGenUC    *requestUC.RetryGenerationUseCase
	retryNotifyUC *requestUC.RetryNotificationUseCase
	bulkApproveUC *requestUC.BulkApproveUseCase
	bulkRejectUC  *requestUC.BulkRejectUseCase
	deleteUC      *requestUC.DeleteRequestUseCase
	logger        logger.Interface
}

func NewRequestHandler(
	listUC *requestUC.ListRequestsUseCase,
	getUC *requestUC.GetRequestUseCase,
	approveUC *requestUC.ApproveRequestUseCase,
	rejectUC *requestUC.RejectRequestUseCase,
	retryGenUC *requestUC.RetryGenerationUseCase,
	retryNotifyUC *requestUC.RetryNotificationUseCase,
	bulkApproveUC *requestUC.BulkApproveUseCase,
	bulkRejectUC *requestUC.BulkRejectUseCase,
	deleteUC *requestUC.DeleteRequestUseCase,
) *RequestHandler {
	return &RequestHandler{
		listUC:        listUC,
		getUC:         getUC,
		approveUC:     approveUC,
		rejectUC:      rejectUC,
		retryGenUC:    retryGenUC,
		retryNotifyUC: retryNotifyUC,
		bulkApproveUC: bulkApproveUC,
		bulkRejectUC:  bulkRejectUC,
		deleteUC:      deleteUC,
		logger:        logger.NewLogger(),
	}
}

// ListRequests handles GET /admin/requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	cmd := parseListRequestsCommand(c)

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// GetRequest handles GET /admin/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), requestUC.GetRequestCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApproveRequest handles POST /admin/requests/:id/approve
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApproveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := requestUC.ApproveRequestCommand{
		RequestID:      requestID,
		CompletionDate: completionDate,
		DecidedBy:      middleware.OperatorID(c),
	}

	result, err := h.approveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request approved", result)
}

// RejectRequest handles POST /admin/requests/:id/reject
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := requestUC.RejectRequestCommand{
		RequestID: requestID,
		Reason:    req.Reason,
		DecidedBy: middleware.OperatorID(c),
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request rejected", result)
}

// RetryGeneration handles POST /admin/requests/:id/retry-generation
func (h *RequestHandler) RetryGeneration(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an empty body keeps the stored completion date.
	var req RetryGenerationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := requestUC.RetryGenerationCommand{
		RequestID: requestID,
		DecidedBy: middleware.OperatorID(c),
	}
	if req.CompletionDate != "" {
		completionDate, err := parseCompletionDate(req.CompletionDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.CompletionDate = completionDate
	}

	result, err := h.retryGenUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Generation retried", result)
}

// RetryNotification handles POST /admin/requests/:id/retry-notification
func (h *RequestHandler) RetryNotification(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.retryNotifyUC.Execute(c.Request.Context(), requestUC.RetryNotificationCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// BulkApprove handles POST /admin/requests/bulk-approve
func (h *RequestHandler) BulkApprove(c *gin.Context) {
	var req BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := requestUC.BulkApproveCommand{
		RequestIDs:     req.RequestIDs,
		CompletionDate: completionDate,
		DecidedBy:      middleware.OperatorID(c),
	}

	result, err := h.bulkApproveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bulk approval completed", result)
}

// BulkReject handles POST /admin/requests/bulk-reject
func (h *RequestHandler) BulkReject(c *gin.Context) {
	var req BulkRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := requestUC.BulkRejectCommand{
		RequestIDs: req.RequestIDs,
		Reason:     req.Reason,
		DecidedBy:  middleware.OperatorID(c),
	}

	result, err := h.bulkRejectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bulk rejection completed", result)
}

// DeleteRequest handles DELETE /admin/requests/:id
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), requestUC.DeleteRequestCommand{RequestID: requestID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
