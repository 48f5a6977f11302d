// Package repository implements the upload store on the relational backend.
package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, u *domain.Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Upload, error) {
	var u domain.Upload
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListFilter) ([]domain.Upload, error) {
	query := r.db.WithContext(ctx).Model(&domain.Upload{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderCode != "" {
		query = query.Where("order_code = ?", filter.OrderCode)
	}

	var uploads []domain.Upload
	if err := query.Order("created_at DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *repo) Update(ctx context.Context, u *domain.Upload) error {
	return r.db.WithContext(ctx).Save(u).Error
}
