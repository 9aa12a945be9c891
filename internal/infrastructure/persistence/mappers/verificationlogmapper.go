package mappers

import (
	"certhub/internal/domain/verification"
	"certhub/internal/infrastructure/persistence/models"
)

// VerificationLogMapper handles the conversion between audit log entries and persistence models.
type VerificationLogMapper interface {
	ToModel(e *verification.LogEntry) *models.VerificationLogModel
	ToDomain(model *models.VerificationLogModel) *verification.LogEntry
}

type VerificationLogMapperImpl struct{}

func NewVerificationLogMapper() VerificationLogMapper {
	return &VerificationLogMapperImpl{}
}

func (m *VerificationLogMapperImpl) ToModel(e *verification.LogEntry) *models.VerificationLogModel {
	return &models.VerificationLogModel{
		ID:         e.ID(),
		PublicID:   e.PublicID(),
		Method:     e.Method(),
		Query:      e.Query(),
		CallerIP:   e.CallerIP(),
		CallerUser: e.CallerUser(),
		Result:     string(e.Result()),
		CreatedAt:  e.VerifiedAt().UnixMilli(),
	}
}

func (m *VerificationLogMapperImpl) ToDomain(model *models.VerificationLogModel) *verification.LogEntry {
	return verification.ReconstructLogEntry(
		model.ID,
		model.PublicID,
		model.Method,
		model.Query,
		model.CallerIP,
		model.CallerUser,
		verification.Result(model.Result),
		convertMillisToTime(model.CreatedAt),
	)
}
