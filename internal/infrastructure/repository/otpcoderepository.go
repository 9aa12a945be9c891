package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"certhub/internal/domain/otp"
	"certhub/internal/infrastructure/persistence/mappers"
	"certhub/internal/infrastructure/persistence/models"
	db "certhub/internal/shared/db"
)

type OTPCodeRepository struct {
	db     *gorm.DB
	mapper mappers.OTPCodeMapper
}

func NewOTPCodeRepository(gormDB *gorm.DB) otp.CodeRepository {
	return &OTPCodeRepository{
		db:     gormDB,
		mapper: mappers.NewOTPCodeMapper(),
	}
}

func (r *OTPCodeRepository) Save(ctx context.Context, code *otp.Code) error {
	model := r.mapper.ToModel(code)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save otp code: %w", err)
	}

	code.SetID(model.ID)
	return nil
}

func (r *OTPCodeRepository) Update(ctx context.Context, code *otp.Code) error {
	model := r.mapper.ToModel(code)
	tx := db.GetTxFromContext(ctx, r.db)

	// The guard on consumed makes consumption first-writer-wins: two
	// concurrent verifications cannot both claim the same row.
	result := tx.
		Model(&models.OTPCodeModel{}).
		Where("id = ? AND consumed = ?", model.ID, false).
		Updates(map[string]interface{}{"consumed": model.Consumed})
	if result.Error != nil {
		return fmt.Errorf("failed to update otp code: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return otp.ErrCodeAlreadyConsumed
	}

	return nil
}

func (r *OTPCodeRepository) CountCreatedSince(ctx context.Context, email string, cutoff time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.OTPCodeModel{}).
		Where("email = ? AND created_at >= ?", email, cutoff.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count otp codes: %w", err)
	}

	return count, nil
}

func (r *OTPCodeRepository) FindMatch(ctx context.Context, email, code string, eventDateID uint, now time.Time) (*otp.Code, error) {
	var model models.OTPCodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("email = ? AND code = ? AND event_date_id = ? AND consumed = ? AND expires_at > ?",
			email, code, eventDateID, false, now.UnixMilli()).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find otp code: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *OTPCodeRepository) FindLatest(ctx context.Context, email, code string, eventDateID uint) (*otp.Code, error) {
	var model models.OTPCodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("email = ? AND code = ? AND event_date_id = ?", email, code, eventDateID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find otp code: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *OTPCodeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("created_at < ?", cutoff.UnixMilli()).
		Delete(&models.OTPCodeModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge otp codes: %w", result.Error)
	}

	return result.RowsAffected, nil
}
