package models

type OTPCodeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:10;not null;index"`
	Email       string `gorm:"size:255;not null;index"`
	EventDateID uint   `gorm:"not null;index"`
	OriginIP    string `gorm:"size:45"`
	Consumed    bool   `gorm:"not null;default:false"`
	ExpiresAt   int64  `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (OTPCodeModel) TableName() string {
	return "cert_otp_codes"
}
