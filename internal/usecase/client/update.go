package client

import (
	"context"
	"strings"

	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/models"
	"github.com/brinquelab/toystore/internal/validators"
)

// ======================================================
// USE CASE — ATUALIZAR CLIENTE (parcial)
// ======================================================

// Ponteiro nil e string vazia significam "não alterar".
type UpdateInput struct {
	Nome           *string
	Email          *string
	DataNascimento *string
}

type UpdateClient struct {
	repo Repository
}

func NewUpdateClient(repo Repository) *UpdateClient {
	return &UpdateClient{repo: repo}
}

func (uc *UpdateClient) Execute(ctx context.Context, id uint, in UpdateInput) (models.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return models.Client{}, err
	}

	changed, err := mergeUpdate(&client, in)
	if err != nil {
		return models.Client{}, err
	}
	if !changed {
		return models.Client{}, httperr.ErrBusiness("no_changes")
	}

	if in.Email != nil && *in.Email != "" {
		count, err := uc.repo.CountByEmail(ctx, client.Email, client.ID)
		if err != nil {
			return models.Client{}, err
		}
		if count > 0 {
			return models.Client{}, httperr.ErrBusiness("duplicate_email")
		}
	}

	if err := uc.repo.Save(ctx, &client); err != nil {
		return models.Client{}, err
	}

	return client, nil
}

// mergeUpdate aplica sobre o cliente apenas os campos enviados.
func mergeUpdate(client *models.Client, in UpdateInput) (bool, error) {
	changed := false

	if in.Nome != nil && *in.Nome != "" {
		client.Nome = strings.TrimSpace(*in.Nome)
		changed = true
	}

	if in.Email != nil && *in.Email != "" {
		email := validators.NormalizeEmail(*in.Email)
		if !validators.IsEmail(email) {
			return false, httperr.ErrBusiness("invalid_email")
		}
		client.Email = email
		changed = true
	}

	if in.DataNascimento != nil && *in.DataNascimento != "" {
		if !validators.IsCalendarDate(*in.DataNascimento) {
			return false, httperr.ErrBusiness("invalid_date")
		}
		client.DataNascimento = *in.DataNascimento
		changed = true
	}

	return changed, nil
}
