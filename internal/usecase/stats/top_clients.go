package stats

import (
	"context"

	domain "github.com/brinquelab/toystore/internal/domain/stats"
)

// ======================================================
// USE CASE — TOP CLIENTES
// ======================================================

type TopClientsStats struct {
	repo domain.Repository
}

func NewTopClientsStats(repo domain.Repository) *TopClientsStats {
	return &TopClientsStats{repo: repo}
}

// Execute calcula os três rankings em leituras independentes. As regras de
// elegibilidade diferem entre eles (a média exclui clientes sem venda, os
// outros dois não), então cada ranking faz a própria varredura em vez de
// dividir um único passe agrupado.
func (uc *TopClientsStats) Execute(ctx context.Context) (*domain.TopClients, error) {
	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	volumeSales, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	maiorVolume := domain.HighestVolume(clients, volumeSales)

	mediaSales, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	maiorMedia := domain.HighestAverage(clients, mediaSales)

	frequenciaSales, err := uc.repo.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	maiorFrequencia := domain.HighestFrequency(clients, frequenciaSales)

	return &domain.TopClients{
		MaiorVolume:     maiorVolume,
		MaiorMedia:      maiorMedia,
		MaiorFrequencia: maiorFrequencia,
	}, nil
}
