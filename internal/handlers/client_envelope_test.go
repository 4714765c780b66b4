package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinquelab/toystore/internal/models"
)

func TestNewClientEnvelope(t *testing.T) {
	client := models.Client{
		ID:             7,
		Nome:           "Ana Beatriz",
		Email:          "ana.b@example.com",
		DataNascimento: "1992-05-01",
	}
	vendas := []models.Sale{
		{ClientID: 7, Valor: 150, Data: "2024-01-02"},
		{ClientID: 7, Valor: 50, Data: "2024-01-01"},
	}

	env := NewClientEnvelope(client, vendas)

	assert.Equal(t, "Ana Beatriz", env.Info.NomeCompleto)
	assert.Equal(t, "ana.b@example.com", env.Info.Detalhes.Email)
	assert.Equal(t, "1992-05-01", env.Info.Detalhes.Nascimento)

	// a duplicação é contrato, não acidente
	assert.Equal(t, env.Info.NomeCompleto, env.Duplicado.NomeCompleto)

	require.Len(t, env.Estatisticas.Vendas, 2)
	assert.Equal(t, "2024-01-02", env.Estatisticas.Vendas[0].Data)
	assert.Equal(t, 150.0, env.Estatisticas.Vendas[0].Valor)
}

func TestNewClientEnvelope_Fallbacks(t *testing.T) {
	env := NewClientEnvelope(models.Client{}, nil)

	assert.Equal(t, "Nome não informado", env.Info.NomeCompleto)
	assert.Equal(t, "email@não.informado", env.Info.Detalhes.Email)
	assert.Equal(t, "1900-01-01", env.Info.Detalhes.Nascimento)
	assert.Equal(t, "Nome não informado", env.Duplicado.NomeCompleto)

	// lista vazia, nunca null, para o app web iterar sem checagem
	assert.NotNil(t, env.Estatisticas.Vendas)
	assert.Empty(t, env.Estatisticas.Vendas)
}
