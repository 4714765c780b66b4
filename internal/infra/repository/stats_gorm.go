package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/models"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

// Ordem por id crescente: o desempate dos rankings fica com o menor id.
func (r *StatsGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *StatsGormRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.WithContext(ctx).
		Order("data DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *StatsGormRepository) ListSalesByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Sale, error) {

	var sales []models.Sale
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("data DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
