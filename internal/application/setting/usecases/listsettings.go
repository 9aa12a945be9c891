package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/setting"
	"certhub/internal/shared/logger"
)

type ListSettingsCommand struct {
	Category string
}

type SettingItem struct {
	Category    string
	Key         string
	Value       string
	ValueType   string
	Description string
	UpdatedBy   uint
	UpdatedAt   time.Time
}

type ListSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewListSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *ListSettingsUseCase {
	return &ListSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *ListSettingsUseCase) Execute(ctx context.Context, cmd ListSettingsCommand) ([]SettingItem, error) {
	var (
		settings []*setting.SystemSetting
		err      error
	)
	if cmd.Category != "" {
		settings, err = uc.settingRepo.GetByCategory(ctx, cmd.Category)
	} else {
		settings, err = uc.settingRepo.GetAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list settings", "category", cmd.Category, "error", err)
		return nil, err
	}

	items := make([]SettingItem, 0, len(settings))
	for _, s := range settings {
		items = append(items, SettingItem{
			Category:    s.Category(),
			Key:         s.Key(),
			Value:       s.Value(),
			ValueType:   string(s.ValueType()),
			Description: s.Description(),
			UpdatedBy:   s.UpdatedBy(),
			UpdatedAt:   s.UpdatedAt(),
		})
	}

	return items, nil
}
