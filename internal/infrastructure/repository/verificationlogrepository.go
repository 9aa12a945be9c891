package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"certhub/internal/domain/verification"
	"certhub/internal/infrastructure/persistence/mappers"
	"certhub/internal/infrastructure/persistence/models"
	db "certhub/internal/shared/db"
)

type VerificationLogRepository struct {
	db     *gorm.DB
	mapper mappers.VerificationLogMapper
}

func NewVerificationLogRepository(gormDB *gorm.DB) verification.LogRepository {
	return &VerificationLogRepository{
		db:     gormDB,
		mapper: mappers.NewVerificationLogMapper(),
	}
}

func (r *VerificationLogRepository) Append(ctx context.Context, entry *verification.LogEntry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append verification log: %w", err)
	}

	entry.SetID(model.ID)
	return nil
}

func (r *VerificationLogRepository) List(
	ctx context.Context,
	filter verification.LogFilter,
	page, pageSize int,
) ([]*verification.LogEntry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.VerificationLogModel{})

	if filter.PublicID != nil {
		query = query.Where("public_id = ?", *filter.PublicID)
	}
	if filter.Result != nil {
		query = query.Where("result = ?", string(*filter.Result))
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", filter.Since.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count verification logs: %w", err)
	}

	query = query.Order("created_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var modelList []models.VerificationLogModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list verification logs: %w", err)
	}

	entries := make([]*verification.LogEntry, len(modelList))
	for i, model := range modelList {
		entries[i] = r.mapper.ToDomain(&model)
	}

	return entries, total, nil
}

func (r *VerificationLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("created_at < ?", cutoff.UnixMilli()).
		Delete(&models.VerificationLogModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge verification logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
