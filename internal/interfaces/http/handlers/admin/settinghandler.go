package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	settingUC "certhub/internal/application/setting/usecases"
	verificationUC "certhub/internal/application/verification/usecases"
	"certhub/internal/interfaces/http/middleware"
	"certhub/internal/shared/logger"
	"certhub/internal/shared/utils"
)

// SettingHandler serves system settings and the verification audit log.
type SettingHandler struct {
	listSettingsUC  *settingUC.ListSettingsUseCase
	updateSettingUC *settingUC.UpdateSettingUseCase
	listLogUC       *verificationUC.ListVerificationLogUseCase
	logger          logger.Interface
}

func NewSettingHandler(
	listSettingsUC *settingUC.ListSettingsUseCase,
	updateSettingUC *settingUC.UpdateSettingUseCase,
	listLogUC *verificationUC.ListVerificationLogUseCase,
) *SettingHandler {
	return &SettingHandler{
		listSettingsUC:  listSettingsUC,
		updateSettingUC: updateSettingUC,
		listLogUC:       listLogUC,
		logger:          logger.NewLogger(),
	}
}

// ListSettings handles GET /admin/settings
func (h *SettingHandler) ListSettings(c *gin.Context) {
	cmd := settingUC.ListSettingsCommand{Category: c.Query("category")}

	result, err := h.listSettingsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSetting handles PUT /admin/settings/:category/:key
func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := settingUC.UpdateSettingCommand{
		Category:  c.Param("category"),
		Key:       c.Param("key"),
		Value:     req.Value,
		UpdatedBy: middleware.OperatorID(c),
	}

	if err := h.updateSettingUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting updated", nil)
}

// ListVerificationLog handles GET /admin/verification-log
func (h *SettingHandler) ListVerificationLog(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	cmd := verificationUC.ListVerificationLogCommand{
		PublicID: c.Query("public_id"),
		Result:   c.Query("result"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "since must be an RFC3339 timestamp")
			return
		}
		cmd.Since = &since
	}

	result, err := h.listLogUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
