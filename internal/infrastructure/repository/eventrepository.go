package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"certhub/internal/domain/event"
	"certhub/internal/infrastructure/persistence/mappers"
	"certhub/internal/infrastructure/persistence/models"
	db "certhub/internal/shared/db"
	apperrors "certhub/internal/shared/errors"
)

type InstitutionRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewInstitutionRepository(gormDB *gorm.DB) event.InstitutionRepository {
	return &InstitutionRepository{
		db:     gormDB,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *InstitutionRepository) Save(ctx context.Context, institution *event.Institution) error {
	model := r.mapper.InstitutionToModel(institution)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save institution: %w", err)
	}

	institution.SetID(model.ID)
	return nil
}

func (r *InstitutionRepository) Update(ctx context.Context, institution *event.Institution) error {
	model := r.mapper.InstitutionToModel(institution)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InstitutionModel{}).
		Where("id = ?", model.ID).
		Select("name", "logo_url", "active").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update institution: %w", result.Error)
	}

	return nil
}

func (r *InstitutionRepository) Delete(ctx context.Context, institutionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.InstitutionModel{}, institutionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete institution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("institution not found")
	}
	return nil
}

func (r *InstitutionRepository) GetByID(ctx context.Context, institutionID uint) (*event.Institution, error) {
	var model models.InstitutionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, institutionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("institution not found")
		}
		return nil, fmt.Errorf("failed to find institution: %w", err)
	}

	return r.mapper.InstitutionToDomain(&model), nil
}

func (r *InstitutionRepository) ListActive(ctx context.Context) ([]*event.Institution, error) {
	var modelList []models.InstitutionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("active = ?", true).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}

	institutions := make([]*event.Institution, len(modelList))
	for i, model := range modelList {
		institutions[i] = r.mapper.InstitutionToDomain(&model)
	}

	return institutions, nil
}

type EventDateRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewEventDateRepository(gormDB *gorm.DB) event.EventDateRepository {
	return &EventDateRepository{
		db:     gormDB,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *EventDateRepository) Save(ctx context.Context, eventDate *event.EventDate) error {
	model := r.mapper.EventDateToModel(eventDate)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save event date: %w", err)
	}

	eventDate.SetID(model.ID)
	return nil
}

func (r *EventDateRepository) Update(ctx context.Context, eventDate *event.EventDate) error {
	model := r.mapper.EventDateToModel(eventDate)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EventDateModel{}).
		Where("id = ?", model.ID).
		Select("name", "date", "theme", "active").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update event date: %w", result.Error)
	}

	return nil
}

func (r *EventDateRepository) Delete(ctx context.Context, eventDateID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.EventDateModel{}, eventDateID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("event date not found")
	}
	return nil
}

func (r *EventDateRepository) GetByID(ctx context.Context, eventDateID uint) (*event.EventDate, error) {
	var model models.EventDateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, eventDateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("event date not found")
		}
		return nil, fmt.Errorf("failed to find event date: %w", err)
	}

	return r.mapper.EventDateToDomain(&model), nil
}

func (r *EventDateRepository) ListActiveByInstitution(ctx context.Context, institutionID uint) ([]*event.EventDate, error) {
	var modelList []models.EventDateModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("institution_id = ? AND active = ?", institutionID, true).
		Order("date DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list event dates: %w", err)
	}

	eventDates := make([]*event.EventDate, len(modelList))
	for i, model := range modelList {
		eventDates[i] = r.mapper.EventDateToDomain(&model)
	}

	return eventDates, nil
}

type ParticipantRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewParticipantRepository(gormDB *gorm.DB) event.ParticipantRepository {
	return &ParticipantRepository{
		db:     gormDB,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *ParticipantRepository) Save(ctx context.Context, participant *event.Participant) error {
	model := r.mapper.ParticipantToModel(participant)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	participant.SetID(model.ID)
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, participantID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ParticipantModel{}, participantID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete participant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("participant not found")
	}
	return nil
}

func (r *ParticipantRepository) ListByEventDate(ctx context.Context, eventDateID uint) ([]*event.Participant, error) {
	var modelList []models.ParticipantModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("event_date_id = ?", eventDateID).
		Order("full_name ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	participants := make([]*event.Participant, len(modelList))
	for i, model := range modelList {
		participants[i] = r.mapper.ParticipantToDomain(&model)
	}

	return participants, nil
}

func (r *ParticipantRepository) ExistsOnRoster(ctx context.Context, eventDateID uint, fullName string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.ParticipantModel{}).
		Where("event_date_id = ? AND LOWER(TRIM(full_name)) = ?", eventDateID, normalizeFullName(fullName)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check roster: %w", err)
	}

	return count > 0, nil
}

func (r *ParticipantRepository) RemoveFromRoster(ctx context.Context, eventDateID uint, fullName string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("event_date_id = ? AND LOWER(TRIM(full_name)) = ?", eventDateID, normalizeFullName(fullName)).
		Delete(&models.ParticipantModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to remove roster entries: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func normalizeFullName(fullName string) string {
	return strings.ToLower(strings.TrimSpace(fullName))
}
