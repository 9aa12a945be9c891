package models

type VerificationLogModel struct {
	ID         uint   `gorm:"primaryKey"`
	PublicID   string `gorm:"size:50;index"`
	Method     string `gorm:"size:30;not null"`
	Query      string `gorm:"size:255;not null"`
	CallerIP   string `gorm:"size:45"`
	CallerUser *uint
	Result     string `gorm:"size:20;not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (VerificationLogModel) TableName() string {
	return "cert_verifications"
}
