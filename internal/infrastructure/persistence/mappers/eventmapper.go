package mappers

import (
	"certhub/internal/domain/event"
	"certhub/internal/infrastructure/persistence/models"
)

// EventMapper handles the conversion between event context entities and persistence models.
type EventMapper interface {
	InstitutionToModel(i *event.Institution) *models.InstitutionModel
	InstitutionToDomain(model *models.InstitutionModel) *event.Institution

	EventDateToModel(e *event.EventDate) *models.EventDateModel
	EventDateToDomain(model *models.EventDateModel) *event.EventDate

	ParticipantToModel(p *event.Participant) *models.ParticipantModel
	ParticipantToDomain(model *models.ParticipantModel) *event.Participant
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) InstitutionToModel(i *event.Institution) *models.InstitutionModel {
	return &models.InstitutionModel{
		ID:        i.ID(),
		Name:      i.Name(),
		LogoURL:   i.LogoURL(),
		Active:    i.Active(),
		CreatedBy: i.CreatedBy(),
		CreatedAt: i.CreatedAt().UnixMilli(),
	}
}

func (m *EventMapperImpl) InstitutionToDomain(model *models.InstitutionModel) *event.Institution {
	return event.ReconstructInstitution(
		model.ID,
		model.Name,
		model.LogoURL,
		model.Active,
		convertMillisToTime(model.CreatedAt),
		model.CreatedBy,
	)
}

func (m *EventMapperImpl) EventDateToModel(e *event.EventDate) *models.EventDateModel {
	return &models.EventDateModel{
		ID:            e.ID(),
		InstitutionID: e.InstitutionID(),
		Name:          e.Name(),
		Date:          e.Date().UnixMilli(),
		Theme:         e.Theme(),
		Active:        e.Active(),
		CreatedBy:     e.CreatedBy(),
		CreatedAt:     e.CreatedAt().UnixMilli(),
	}
}

func (m *EventMapperImpl) EventDateToDomain(model *models.EventDateModel) *event.EventDate {
	return event.ReconstructEventDate(
		model.ID,
		model.InstitutionID,
		model.Name,
		convertMillisToTime(model.Date),
		model.Theme,
		model.Active,
		convertMillisToTime(model.CreatedAt),
		model.CreatedBy,
	)
}

func (m *EventMapperImpl) ParticipantToModel(p *event.Participant) *models.ParticipantModel {
	return &models.ParticipantModel{
		ID:          p.ID(),
		EventDateID: p.EventDateID(),
		FullName:    p.FullName(),
		Email:       p.Email(),
		AddedBy:     p.AddedBy(),
		CreatedAt:   p.AddedAt().UnixMilli(),
	}
}

func (m *EventMapperImpl) ParticipantToDomain(model *models.ParticipantModel) *event.Participant {
	return event.ReconstructParticipant(
		model.ID,
		model.EventDateID,
		model.FullName,
		model.Email,
		convertMillisToTime(model.CreatedAt),
		model.AddedBy,
	)
}
