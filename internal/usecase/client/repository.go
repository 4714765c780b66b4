package client

import (
	"context"

	"github.com/brinquelab/toystore/internal/models"
)

// Repository é o acesso a clientes que os casos de uso precisam.
// GetByID devolve o erro de negócio "client_not_found" quando o id
// não existe.
type Repository interface {
	GetByID(ctx context.Context, id uint) (models.Client, error)
	CountByEmail(ctx context.Context, email string, excludeID uint) (int64, error)
	Create(ctx context.Context, client *models.Client) error
	Save(ctx context.Context, client *models.Client) error
}
