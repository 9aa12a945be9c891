package migration

import (
	"certhub/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RequestModel{},
		&models.OTPCodeModel{},
		&models.InstitutionModel{},
		&models.EventDateModel{},
		&models.ParticipantModel{},
		&models.VerificationLogModel{},
		&models.SystemSettingModel{},
		&models.SequenceModel{},
	}
}
