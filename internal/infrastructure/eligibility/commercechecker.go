package eligibility

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"certhub/internal/domain/eligibility"
)

// orderRow mirrors the commerce system's order table. The table belongs to
// the storefront, not to this service, so the model stays private here
// instead of living under persistence/models.
type orderRow struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"column:customer_id"`
	Status     string `gorm:"column:status"`
	CreatedAt  int64  `gorm:"column:created_at"`
}

func (orderRow) TableName() string {
	return "store_orders"
}

// completedOrderStatuses are the commerce order states that count as a
// finished purchase.
var completedOrderStatuses = []string{"completed"}

// CommerceChecker implements eligibility.Checker by reading the storefront's
// order tables directly.
type CommerceChecker struct {
	db *gorm.DB
}

func NewCommerceChecker(db *gorm.DB) eligibility.Checker {
	return &CommerceChecker{db: db}
}

func (c *CommerceChecker) HasCompletedPurchase(ctx context.Context, requesterID, productID uint, minDays int, asOf time.Time) (bool, error) {
	purchase, err := c.LatestPurchase(ctx, requesterID, productID)
	if err != nil {
		return false, err
	}
	if purchase == nil || !purchase.Completed {
		return false, nil
	}

	earliest := purchase.PurchasedAt.Add(time.Duration(minDays) * 24 * time.Hour)
	return !asOf.Before(earliest), nil
}

func (c *CommerceChecker) LatestPurchase(ctx context.Context, requesterID, productID uint) (*eligibility.Purchase, error) {
	var row struct {
		orderRow
		ProductID uint
	}

	err := c.db.WithContext(ctx).
		Table("store_orders").
		Select("store_orders.*, store_order_items.product_id").
		Joins("JOIN store_order_items ON store_order_items.order_id = store_orders.id").
		Where("store_orders.customer_id = ? AND store_order_items.product_id = ?", requesterID, productID).
		Order("store_orders.created_at DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	if row.ID == 0 {
		return nil, nil
	}

	completed := false
	for _, s := range completedOrderStatuses {
		if row.Status == s {
			completed = true
			break
		}
	}

	return &eligibility.Purchase{
		OrderID:     row.ID,
		ProductID:   row.ProductID,
		PurchasedAt: time.Unix(0, row.CreatedAt*int64(time.Millisecond)),
		Completed:   completed,
	}, nil
}
