package models

type SequenceModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Value     uint64 `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SequenceModel) TableName() string {
	return "cert_sequences"
}
