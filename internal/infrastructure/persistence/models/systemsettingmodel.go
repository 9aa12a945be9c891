package models

type SystemSettingModel struct {
	ID          uint   `gorm:"primaryKey"`
	Category    string `gorm:"size:50;not null;uniqueIndex:idx_cert_settings_category_key"`
	Key         string `gorm:"column:setting_key;size:100;not null;uniqueIndex:idx_cert_settings_category_key"`
	Value       string `gorm:"type:text"`
	ValueType   string `gorm:"size:20;not null"`
	Description string `gorm:"size:500"`
	UpdatedBy   uint
	Version     int   `gorm:"not null;default:1"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SystemSettingModel) TableName() string {
	return "cert_settings"
}
