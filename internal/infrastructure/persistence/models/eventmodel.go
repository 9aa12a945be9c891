package models

type InstitutionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;index"`
	LogoURL   string `gorm:"size:500"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedBy uint   `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InstitutionModel) TableName() string {
	return "cert_institutions"
}

type EventDateModel struct {
	ID            uint   `gorm:"primaryKey"`
	InstitutionID uint   `gorm:"not null;index"`
	Name          string `gorm:"size:200;not null"`
	Date          int64  `gorm:"not null;index"`
	Theme         string `gorm:"size:300"`
	Active        bool   `gorm:"not null;default:true;index"`
	CreatedBy     uint   `gorm:"not null"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EventDateModel) TableName() string {
	return "cert_event_dates"
}

type ParticipantModel struct {
	ID          uint   `gorm:"primaryKey"`
	EventDateID uint   `gorm:"not null;index"`
	FullName    string `gorm:"size:200;not null;index"`
	Email       string `gorm:"size:255;index"`
	AddedBy     uint   `gorm:"not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ParticipantModel) TableName() string {
	return "cert_participants"
}
