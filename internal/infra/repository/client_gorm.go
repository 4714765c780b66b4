package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, httperr.ErrBusiness("client_not_found")
		}
		return models.Client{}, err
	}
	return client, nil
}

func (r *ClientGormRepository) CountByEmail(
	ctx context.Context,
	email string,
	excludeID uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("email = ?", email)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) Save(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}
