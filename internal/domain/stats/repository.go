package stats

import (
	"context"

	"github.com/brinquelab/toystore/internal/models"
)

// Repository é a visão de leitura que o motor de estatísticas tem do banco.
// Implementações devem listar clientes em ordem de id crescente: o desempate
// dos rankings fica com o menor id.
type Repository interface {
	ListClients(ctx context.Context) ([]models.Client, error)

	ListSales(ctx context.Context) ([]models.Sale, error)

	ListSalesByClient(ctx context.Context, clientID uint) ([]models.Sale, error)
}
