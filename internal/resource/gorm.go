package resource

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the GORM-backed Store implementation. Every module lists its
// records ordered by a designated sort column, newest first; there is no
// pagination or source-side filtering.
type Repository[T any] struct {
	db      *gorm.DB
	orderBy string
}

func NewRepository[T any](db *gorm.DB, orderColumn string) *Repository[T] {
	return &Repository[T]{db: db, orderBy: orderColumn}
}

func (r *Repository[T]) List(ctx context.Context) ([]*T, error) {
	var records []*T
	err := r.db.WithContext(ctx).Order(fmt.Sprintf("%s DESC", r.orderBy)).Find(&records).Error
	return records, err
}

func (r *Repository[T]) Insert(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update replaces the full record at id. The store-assigned id and the
// creation timestamp are immutable and survive the replace; the record is
// re-read afterwards so the caller sees the stored row, preserved columns
// included.
func (r *Repository[T]) Update(ctx context.Context, id int64, record *T) error {
	res := r.db.WithContext(ctx).
		Model(record).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).First(record, id).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
