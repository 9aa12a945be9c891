package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"certhub/internal/domain/request"
	"certhub/internal/infrastructure/persistence/models"
	db "certhub/internal/shared/db"
)

// SequenceRepository implements request.SequenceRepository on a plain
// counters table. Increments take a row lock, so concurrent callers
// serialize per counter name and never observe the same value. Inside an
// ambient transaction the lock is held until that transaction ends, which
// lets callers use the counter row as a serialization point.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(gormDB *gorm.DB) request.SequenceRepository {
	return &SequenceRepository{db: gormDB}
}

func (r *SequenceRepository) Increment(ctx context.Context, name string) (uint64, error) {
	var next uint64

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.SequenceModel

		lookup := tx
		// sqlite serializes writers on its own and rejects FOR UPDATE.
		if tx.Dialector.Name() == "mysql" {
			lookup = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := lookup.
			Where("name = ?", name).
			First(&model).Error
		if err == gorm.ErrRecordNotFound {
			model = models.SequenceModel{Name: name, Value: 1}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create sequence %s: %w", name, err)
			}
			next = 1
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to lock sequence %s: %w", name, err)
		}

		next = model.Value + 1
		result := tx.
			Model(&models.SequenceModel{}).
			Where("id = ?", model.ID).
			Update("value", next)
		if result.Error != nil {
			return fmt.Errorf("failed to increment sequence %s: %w", name, result.Error)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}
