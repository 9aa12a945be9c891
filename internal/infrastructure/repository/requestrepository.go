package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/infrastructure/persistence/mappers"
	"certhub/internal/infrastructure/persistence/models"
	db "certhub/internal/shared/db"
	apperrors "certhub/internal/shared/errors"
)

// allowedRequestOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedRequestOrderByFields = map[string]bool{
	"id":           true,
	"public_id":    true,
	"status":       true,
	"subject_kind": true,
	"requester_id": true,
	"email":        true,
	"created_at":   true,
	"updated_at":   true,
}

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(gormDB *gorm.DB) request.RequestRepository {
	return &RequestRepository{
		db:     gormDB,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// UpdateWithStatusGuard writes the request only while the stored row is still
// in one of the expected statuses. Zero rows affected means another lifecycle
// operation already moved the row, which surfaces as a conflict.
func (r *RequestRepository) UpdateWithStatusGuard(ctx context.Context, req *request.Request, expected ...vo.RequestStatus) error {
	if len(expected) == 0 {
		return fmt.Errorf("status guard requires at least one expected status")
	}

	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	statuses := make([]string, len(expected))
	for i, s := range expected {
		statuses[i] = s.String()
	}

	// Updates skips zero values, so nil pointers that mean "clear this
	// column" have to be written explicitly.
	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ? AND status IN ?", model.ID, statuses).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("request was modified by another operation")
	}

	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RequestModel{}, requestID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("request not found")
	}
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("request not found")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) GetByPublicID(ctx context.Context, publicID string) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("public_id = ?", publicID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("request not found")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.RequestModel{}).
		Where("public_id = ?", publicID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check public ID existence: %w", err)
	}

	return count > 0, nil
}

func (r *RequestRepository) FindDuplicate(
	ctx context.Context,
	requesterID uint,
	subjectRef string,
	statuses []vo.RequestStatus,
) (*request.Request, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = s.String()
	}

	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Inside a transaction the lookup must be a current read: a duplicate
	// committed by a concurrent submission has to be visible here, not the
	// transaction's snapshot. sqlite serializes writers on its own.
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	err := tx.
		Where("requester_id = ? AND subject_ref = ? AND status IN ?", requesterID, subjectRef, statusStrings).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find duplicate request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(
	ctx context.Context,
	filter request.RequestFilter,
) ([]*request.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Kind != nil {
		query = query.Where("subject_kind = ?", filter.Kind.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedRequestOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var requestModels []models.RequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]*request.Request, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		requests[i] = req
	}

	return requests, total, nil
}

func (r *RequestRepository) FindByStatusSince(
	ctx context.Context,
	status vo.RequestStatus,
	since time.Time,
	limit int,
) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.RequestModel
	err := tx.
		Where("status = ? AND updated_at >= ?", status.String(), since.UnixMilli()).
		Order("updated_at ASC").
		Limit(limit).
		Find(&requestModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find requests by status: %w", err)
	}

	requests := make([]*request.Request, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	return requests, nil
}

func (r *RequestRepository) SearchIssued(ctx context.Context, term string) (*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	namePattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	// sqlite has no CONCAT function; || is its concatenation operator.
	nameExpr := "LOWER(CONCAT(first_name, ' ', last_name))"
	if tx.Dialector.Name() == "sqlite" {
		nameExpr = "LOWER(first_name || ' ' || last_name)"
	}

	var model models.RequestModel
	err := tx.
		Where("status = ?", vo.StatusIssued.String()).
		Where(
			"public_id = ? OR email = ? OR "+nameExpr+" LIKE ?",
			term, term, namePattern,
		).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to search issued requests: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
