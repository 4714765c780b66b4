package stats

import (
	"context"

	domain "github.com/brinquelab/toystore/internal/domain/stats"
)

// ======================================================
// USE CASE — VENDAS POR DIA
// ======================================================

type DailySales struct {
	repo domain.Repository
}

func NewDailySales(repo domain.Repository) *DailySales {
	return &DailySales{repo: repo}
}

func (uc *DailySales) Execute(ctx context.Context) ([]domain.DailyTotal, error) {
	sales, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	return domain.DailyTotals(sales, domain.DailyStatsLimit), nil
}
