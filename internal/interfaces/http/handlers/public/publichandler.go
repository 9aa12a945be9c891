package public

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	otpUC "certhub/internal/application/otp/usecases"
	requestUC "certhub/internal/application/request/usecases"
	verificationUC "certhub/internal/application/verification/usecases"
	sharedConfig "certhub/internal/shared/config"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
	"certhub/internal/shared/utils"
)

// PublicHandler serves the unauthenticated surface: request submission,
// certificate verification, OTP issuance, and artifact download.
type PublicHandler struct {
	submitUC   *requestUC.SubmitRequestUseCase
	downloadUC *requestUC.DownloadArtifactUseCase
	verifyUC   *verificationUC.VerifyPublicUseCase
	sendOTPUC  *otpUC.SendOTPUseCase
	checkOTPUC *otpUC.VerifyOTPUseCase
	rateCfg    sharedConfig.RateLimitConfig
	logger     logger.Interface
}

func NewPublicHandler(
	submitUC *requestUC.SubmitRequestUseCase,
	downloadUC *requestUC.DownloadArtifactUseCase,
	verifyUC *verificationUC.VerifyPublicUseCase,
	sendOTPUC *otpUC.SendOTPUseCase,
	checkOTPUC *otpUC.VerifyOTPUseCase,
	rateCfg sharedConfig.RateLimitConfig,
) *PublicHandler {
	return &PublicHandler{
		submitUC:   submitUC,
		downloadUC: downloadUC,
		verifyUC:   verifyUC,
		sendOTPUC:  sendOTPUC,
		checkOTPUC: checkOTPUC,
		rateCfg:    rateCfg,
		logger:     logger.NewLogger(),
	}
}

// SubmitRequest handles POST /requests
func (h *PublicHandler) SubmitRequest(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Certificate request submitted")
}

// Verify handles GET /verify?q=
func (h *PublicHandler) Verify(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("query parameter q is required"))
		return
	}

	cmd := verificationUC.VerifyPublicCommand{
		Query:       query,
		CallerIP:    c.ClientIP(),
		MaxAttempts: h.rateCfg.VerifyMaxAttempts,
		Window:      time.Duration(h.rateCfg.VerifyWindowMins) * time.Minute,
	}
	if operatorID, exists := c.Get("operator_id"); exists {
		if id, ok := operatorID.(uint); ok {
			cmd.CallerUser = &id
		}
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SendOTP handles POST /otp/send
func (h *PublicHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := otpUC.SendOTPCommand{
		Email:       req.Email,
		EventDateID: req.EventDateID,
		OriginIP:    c.ClientIP(),
	}

	result, err := h.sendOTPUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Verification code sent", result)
}

// VerifyOTP handles POST /otp/verify
func (h *PublicHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := otpUC.VerifyOTPCommand{
		Email:       req.Email,
		Code:        req.Code,
		EventDateID: req.EventDateID,
	}

	result, err := h.checkOTPUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DownloadArtifact handles GET /artifacts/:publicID
func (h *PublicHandler) DownloadArtifact(c *gin.Context) {
	cmd := requestUC.DownloadArtifactCommand{
		PublicID: c.Param("publicID"),
		Token:    c.Query("token"),
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(result.FilePath, result.Filename)
}
