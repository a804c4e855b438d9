// Package repositories provides the data-access layer: a generic CRUD
// repository, per-entity query methods, and a transactional unit of work.
package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository is the generic CRUD base shared by all entity repositories.
// All operations run against the unit of work's transaction, so nothing is
// visible outside the request until Complete() commits.
type Repository[T any] struct {
	tx *gorm.DB
}

// GetAll returns every row of the entity table.
func (r *Repository[T]) GetAll() ([]T, error) {
	var out []T
	err := r.tx.Find(&out).Error
	return out, err
}

// GetByID returns the row with the given primary key, or nil when absent.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var e T
	err := r.tx.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Find returns all rows matching the condition, e.g.
// Find("user_id = ?", userID).
func (r *Repository[T]) Find(query interface{}, args ...interface{}) ([]T, error) {
	var out []T
	err := r.tx.Where(query, args...).Find(&out).Error
	return out, err
}

// Add stages a new row for insertion.
func (r *Repository[T]) Add(e *T) error {
	return r.tx.Create(e).Error
}

// Update stages all fields of e for write-back.
func (r *Repository[T]) Update(e *T) error {
	return r.tx.Save(e).Error
}

// Remove stages e for deletion.
func (r *Repository[T]) Remove(e *T) error {
	return r.tx.Delete(e).Error
}

// RemoveRange stages every element of es for deletion.
func (r *Repository[T]) RemoveRange(es []T) error {
	if len(es) == 0 {
		return nil
	}
	return r.tx.Delete(&es).Error
}

// Any reports whether at least one row matches the condition.
func (r *Repository[T]) Any(query interface{}, args ...interface{}) (bool, error) {
	n, err := r.Count(query, args...)
	return n > 0, err
}

// Count returns the number of rows matching the condition.
// Pass nil to count the whole table.
func (r *Repository[T]) Count(query interface{}, args ...interface{}) (int64, error) {
	var e T
	var n int64
	q := r.tx.Model(&e)
	if query != nil {
		q = q.Where(query, args...)
	}
	err := q.Count(&n).Error
	return n, err
}
