package models

type RequestModel struct {
	ID             uint    `gorm:"primaryKey"`
	PublicID       string  `gorm:"uniqueIndex;size:50;not null"`
	RequesterID    uint    `gorm:"not null;index"`
	SubjectKind    string  `gorm:"size:20;not null;index"`
	SubjectRef     string  `gorm:"size:50;not null;index"`
	ProductID      *uint   `gorm:"index"`
	ProductName    string  `gorm:"size:200"`
	InstitutionID  *uint   `gorm:"index"`
	EventDateID    *uint   `gorm:"index"`
	FirstName      string  `gorm:"size:100;not null"`
	LastName       string  `gorm:"size:100;not null"`
	Email          string  `gorm:"size:255;not null;index"`
	Phone          string  `gorm:"size:50;not null"`
	ProjectLink    string  `gorm:"size:500"`
	InstructorName string  `gorm:"size:200"`
	VendorID       *uint   `gorm:"index"`
	CompletionDate *int64
	Status         string  `gorm:"size:30;not null;index"`
	FailureDetail  *string `gorm:"type:text"`
	ArtifactRef    *string `gorm:"size:255"`
	AccessToken    *string `gorm:"size:64;index"`
	DecidedAt      *int64
	DecidedBy      *uint
	Version        int   `gorm:"not null;default:1"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "cert_requests"
}
