package client

import (
	"context"
	"strings"

	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/models"
	"github.com/brinquelab/toystore/internal/validators"
)

// ======================================================
// USE CASE — CRIAR CLIENTE
// ======================================================

type CreateInput struct {
	Nome           string
	Email          string
	DataNascimento string
}

type CreateClient struct {
	repo Repository
}

func NewCreateClient(repo Repository) *CreateClient {
	return &CreateClient{repo: repo}
}

func (uc *CreateClient) Execute(ctx context.Context, in CreateInput) (models.Client, error) {
	if !validators.IsCalendarDate(in.DataNascimento) {
		return models.Client{}, httperr.ErrBusiness("invalid_date")
	}

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmail(email) {
		return models.Client{}, httperr.ErrBusiness("invalid_email")
	}

	count, err := uc.repo.CountByEmail(ctx, email, 0)
	if err != nil {
		return models.Client{}, err
	}
	if count > 0 {
		return models.Client{}, httperr.ErrBusiness("duplicate_email")
	}

	client := models.Client{
		Nome:           strings.TrimSpace(in.Nome),
		Email:          email,
		DataNascimento: in.DataNascimento,
	}

	if err := uc.repo.Create(ctx, &client); err != nil {
		return models.Client{}, err
	}

	return client, nil
}
