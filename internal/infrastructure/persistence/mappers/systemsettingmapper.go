package mappers

import (
	"certhub/internal/domain/setting"
	"certhub/internal/infrastructure/persistence/models"
)

// SystemSettingMapper handles the conversion between setting entities and persistence models.
type SystemSettingMapper interface {
	ToModel(s *setting.SystemSetting) *models.SystemSettingModel
	ToDomain(model *models.SystemSettingModel) *setting.SystemSetting
	ToDomainList(modelList []*models.SystemSettingModel) []*setting.SystemSetting
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToModel(s *setting.SystemSetting) *models.SystemSettingModel {
	return &models.SystemSettingModel{
		ID:          s.ID(),
		Category:    s.Category(),
		Key:         s.Key(),
		Value:       s.Value(),
		ValueType:   string(s.ValueType()),
		Description: s.Description(),
		UpdatedBy:   s.UpdatedBy(),
		Version:     s.Version(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (m *SystemSettingMapperImpl) ToDomain(model *models.SystemSettingModel) *setting.SystemSetting {
	return setting.ReconstructSystemSetting(
		model.ID,
		model.Category,
		model.Key,
		model.Value,
		setting.ValueType(model.ValueType),
		model.Description,
		model.UpdatedBy,
		model.Version,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *SystemSettingMapperImpl) ToDomainList(modelList []*models.SystemSettingModel) []*setting.SystemSetting {
	settings := make([]*setting.SystemSetting, len(modelList))
	for i, model := range modelList {
		settings[i] = m.ToDomain(model)
	}
	return settings
}
