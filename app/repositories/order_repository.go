package repositories

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/pkg/metrics"
	"gorm.io/gorm"
)

// OrderRepository adds the order-specific queries: owner-joined fetches,
// status filters, the waiting-queue maximum, and the revenue aggregate.
type OrderRepository struct {
	Repository[models.Order]
}

// AllWithUser returns every order with its owner preloaded,
// newest first.
func (r *OrderRepository) AllWithUser() ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.tx.Preload("User").
		Order("created_date desc").
		Find(&orders).Error
	return orders, err
}

// ByIDWithUser returns one order with its owner preloaded, or nil when absent.
func (r *OrderRepository) ByIDWithUser(orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.tx.Preload("User").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ByStatusWithUser returns all orders in the given status with owners
// preloaded, ordered by ascending queue number.
func (r *OrderRepository) ByStatusWithUser(status string) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.tx.Preload("User").
		Where("status = ?", status).
		Order("number asc").
		Find(&orders).Error
	return orders, err
}

// WaitingWithUser returns the current waiting queue with owners preloaded,
// ordered by ascending queue number.
func (r *OrderRepository) WaitingWithUser() ([]models.Order, error) {
	return r.ByStatusWithUser(models.StatusWaiting)
}

// ForUser returns all orders owned by userID, newest first.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.tx.Where("user_id = ?", userID).
		Order("created_date desc").
		Find(&orders).Error
	return orders, err
}

// MaxWaitingNumber returns the highest queue number among orders currently
// in Waiting status, or 0 when the waiting set is empty. The value is
// derived from the table on every call; there is no persisted counter.
func (r *OrderRepository) MaxWaitingNumber() (int, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var max *int
	err := r.tx.Model(&models.Order{}).
		Where("status = ?", models.StatusWaiting).
		Select("MAX(number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// TotalRevenue sums Price over all orders where a price is set.
// Orders without a price are excluded from the sum, not treated as zero.
func (r *OrderRepository) TotalRevenue() (float64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var total *float64
	err := r.tx.Model(&models.Order{}).
		Where("price IS NOT NULL").
		Select("SUM(price)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
