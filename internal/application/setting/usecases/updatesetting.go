package usecases

import (
	"context"
	"strconv"

	"certhub/internal/domain/setting"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

// knownSettings is the registry of editable settings. Updates against keys
// outside this registry are rejected.
var knownSettings = map[string]map[string]settingDefinition{
	setting.CategoryCertificate: {
		setting.KeyPublicIDPrefix:       {valueType: setting.ValueTypeString, description: "Prefix for newly issued public certificate IDs"},
		setting.KeyCompanyName:          {valueType: setting.ValueTypeString, description: "Organization name shown on certificates and in mail"},
		setting.KeyMinDaysAfterPurchase: {valueType: setting.ValueTypeInt, description: "Days that must pass after purchase before a request is eligible"},
		setting.KeyVerifyPageURL:        {valueType: setting.ValueTypeString, description: "Public verification page URL included in issuance mail"},
	},
	setting.CategoryEmail: {
		setting.KeySupportEmail: {valueType: setting.ValueTypeString, description: "Reply-to address for outgoing mail"},
		setting.KeyFromEmail:    {valueType: setting.ValueTypeString, description: "Sender address for outgoing mail"},
	},
}

type settingDefinition struct {
	valueType   setting.ValueType
	description string
}

type UpdateSettingCommand struct {
	Category  string
	Key       string
	Value     string
	UpdatedBy uint
}

type UpdateSettingUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSettingUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateSettingUseCase {
	return &UpdateSettingUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpdateSettingUseCase) Execute(ctx context.Context, cmd UpdateSettingCommand) error {
	if cmd.UpdatedBy == 0 {
		return errors.NewValidationError("updater ID is required")
	}

	def, ok := knownSettings[cmd.Category][cmd.Key]
	if !ok {
		return errors.NewValidationError("unknown setting key")
	}

	entry, err := uc.settingRepo.GetByKey(ctx, cmd.Category, cmd.Key)
	if err != nil {
		entry, err = setting.NewSystemSetting(cmd.Category, cmd.Key, def.valueType, def.description)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
	}

	switch def.valueType {
	case setting.ValueTypeInt:
		val, convErr := strconv.Atoi(cmd.Value)
		if convErr != nil {
			return errors.NewValidationError("value must be an integer")
		}
		if val < 0 {
			return errors.NewValidationError("value must not be negative")
		}
		err = entry.SetIntValue(val, cmd.UpdatedBy)
	default:
		err = entry.SetStringValue(cmd.Value, cmd.UpdatedBy)
	}
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.Upsert(ctx, entry); err != nil {
		uc.logger.Errorw("failed to upsert setting",
			"category", cmd.Category,
			"key", cmd.Key,
			"error", err)
		return err
	}

	uc.logger.Infow("setting updated",
		"category", cmd.Category,
		"key", cmd.Key,
		"updated_by", cmd.UpdatedBy)
	return nil
}
