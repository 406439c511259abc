package repository

import (
	"context"
	"errors"
	"strings"

	"bizlist/internal/domain/listing"
	bizlist_errors "bizlist/pkg/errors"

	"gorm.io/gorm"
)

type GormListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &GormListingRepository{db: db}
}

func (r *GormListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	res := r.db.WithContext(ctx).Create(l)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return bizlist_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *GormListingRepository) GetByRefID(ctx context.Context, refID string) (listing.Listing, error) {
	var l listing.Listing
	err := r.db.WithContext(ctx).
		Where("ref_id = ?", refID).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return listing.Listing{}, bizlist_errors.ErrNotFound
		}
		return listing.Listing{}, err
	}
	return l, nil
}

func (r *GormListingRepository) List(ctx context.Context, skip, limit int) ([]listing.Listing, error) {
	listings := []listing.Listing{}
	err := r.db.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *GormListingRepository) Search(ctx context.Context, f ListingFilter, skip, limit int) ([]listing.Listing, error) {
	q := r.db.WithContext(ctx).Model(&listing.Listing{})

	if f.Keyword != nil {
		pattern := "%" + strings.ToLower(*f.Keyword) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinTurnover != nil {
		q = q.Where("turnover >= ?", *f.MinTurnover)
	}
	if f.MaxTurnover != nil {
		q = q.Where("turnover <= ?", *f.MaxTurnover)
	}
	if f.Location != nil {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*f.Location)+"%")
	}
	if f.Industry != nil {
		// industry is stored as an encoded JSON-array string; substring match
		// against the encoded form, as the search contract specifies.
		q = q.Where("LOWER(industry) LIKE ?", "%"+strings.ToLower(*f.Industry)+"%")
	}

	listings := []listing.Listing{}
	if err := q.Offset(skip).Limit(limit).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *GormListingRepository) Update(ctx context.Context, refID string, changes map[string]interface{}) (listing.Listing, error) {
	current, err := r.GetByRefID(ctx, refID)
	if err != nil {
		return listing.Listing{}, err
	}
	if len(changes) == 0 {
		return current, nil
	}

	// ref_id, id and creation_datetime are immutable regardless of payload.
	delete(changes, "ref_id")
	delete(changes, "id")
	delete(changes, "creation_datetime")

	res := r.db.WithContext(ctx).
		Model(&listing.Listing{}).
		Where("ref_id = ?", refID).
		Updates(changes)
	if res.Error != nil {
		return listing.Listing{}, res.Error
	}

	return r.GetByRefID(ctx, refID)
}

func (r *GormListingRepository) Delete(ctx context.Context, refID string) (listing.Listing, error) {
	l, err := r.GetByRefID(ctx, refID)
	if err != nil {
		return listing.Listing{}, err
	}

	res := r.db.WithContext(ctx).Delete(&listing.Listing{}, "ref_id = ?", refID)
	if res.Error != nil {
		return listing.Listing{}, res.Error
	}
	if res.RowsAffected == 0 {
		return listing.Listing{}, bizlist_errors.ErrNotFound
	}
	return l, nil
}
