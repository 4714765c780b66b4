package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinquelab/toystore/internal/models"
)

// fakeRepo devolve dados fixos, em ordem de id crescente como o contrato pede.
type fakeRepo struct {
	clients []models.Client
	sales   []models.Sale
	err     error

	salesCalls int
}

func (f *fakeRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.clients, nil
}

func (f *fakeRepo) ListSales(ctx context.Context) ([]models.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.salesCalls++
	return f.sales, nil
}

func (f *fakeRepo) ListSalesByClient(ctx context.Context, clientID uint) ([]models.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Sale
	for _, s := range f.sales {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestDailySales_Execute(t *testing.T) {
	repo := &fakeRepo{
		sales: []models.Sale{
			{ClientID: 1, Valor: 100, Data: "2024-02-01"},
			{ClientID: 2, Valor: 40, Data: "2024-02-02"},
			{ClientID: 1, Valor: 60, Data: "2024-02-02"},
		},
	}

	uc := NewDailySales(repo)
	totals, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "2024-02-02", totals[0].Data)
	assert.Equal(t, 100.0, totals[0].Total)
	assert.Equal(t, "2024-02-01", totals[1].Data)
	assert.Equal(t, 100.0, totals[1].Total)
}

func TestDailySales_PropagatesError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}

	uc := NewDailySales(repo)
	_, err := uc.Execute(context.Background())

	require.Error(t, err)
}

func TestTopClients_Execute(t *testing.T) {
	repo := &fakeRepo{
		clients: []models.Client{
			{ID: 1, Nome: "Ana"},
			{ID: 2, Nome: "Carlos"},
			{ID: 3, Nome: "Maria"},
		},
		sales: []models.Sale{
			{ClientID: 1, Valor: 100, Data: "2024-01-01"},
			{ClientID: 1, Valor: 100, Data: "2024-01-01"},
			{ClientID: 2, Valor: 500, Data: "2024-01-02"},
			{ClientID: 3, Valor: 10, Data: "2024-01-01"},
			{ClientID: 3, Valor: 10, Data: "2024-01-02"},
			{ClientID: 3, Valor: 10, Data: "2024-01-03"},
		},
	}

	uc := NewTopClientsStats(repo)
	top, err := uc.Execute(context.Background())

	require.NoError(t, err)

	assert.Equal(t, uint(2), top.MaiorVolume.Cliente.ID)
	assert.Equal(t, 500.0, top.MaiorVolume.TotalVendas)

	assert.Equal(t, uint(2), top.MaiorMedia.Cliente.ID)
	assert.Equal(t, 500.0, top.MaiorMedia.MediaValor)

	assert.Equal(t, uint(3), top.MaiorFrequencia.Cliente.ID)
	assert.Equal(t, 3, top.MaiorFrequencia.DiasUnicos)

	// cada ranking faz a própria leitura
	assert.Equal(t, 3, repo.salesCalls)
}

func TestTopClients_EmptyStore(t *testing.T) {
	repo := &fakeRepo{}

	uc := NewTopClientsStats(repo)
	top, err := uc.Execute(context.Background())

	require.NoError(t, err)

	for _, nome := range []string{
		top.MaiorVolume.Cliente.Nome,
		top.MaiorMedia.Cliente.Nome,
		top.MaiorFrequencia.Cliente.Nome,
	} {
		assert.Equal(t, "Nenhum cliente", nome)
	}
	assert.Equal(t, 0.0, top.MaiorVolume.TotalVendas)
	assert.Equal(t, 0.0, top.MaiorMedia.MediaValor)
	assert.Equal(t, 0, top.MaiorFrequencia.DiasUnicos)
}

func TestTopClients_ClientsWithoutSales(t *testing.T) {
	repo := &fakeRepo{
		clients: []models.Client{
			{ID: 1, Nome: "Ana"},
			{ID: 2, Nome: "Carlos"},
		},
	}

	uc := NewTopClientsStats(repo)
	top, err := uc.Execute(context.Background())

	require.NoError(t, err)

	// volume e frequência aceitam clientes zerados; média não
	assert.Equal(t, uint(1), top.MaiorVolume.Cliente.ID)
	assert.Equal(t, uint(1), top.MaiorFrequencia.Cliente.ID)
	assert.Equal(t, "Nenhum cliente", top.MaiorMedia.Cliente.Nome)
}

func TestStats_ReflectClientRemoval(t *testing.T) {
	repo := &fakeRepo{
		clients: []models.Client{
			{ID: 1, Nome: "Ana"},
			{ID: 2, Nome: "Carlos"},
		},
		sales: []models.Sale{
			{ClientID: 1, Valor: 900, Data: "2024-01-01"},
			{ClientID: 2, Valor: 100, Data: "2024-01-02"},
		},
	}

	topUC := NewTopClientsStats(repo)
	dailyUC := NewDailySales(repo)

	top, err := topUC.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(1), top.MaiorVolume.Cliente.ID)

	// exclusão em cascata: o cliente sai junto com as vendas dele
	repo.clients = repo.clients[1:]
	repo.sales = repo.sales[1:]

	top, err = topUC.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(2), top.MaiorVolume.Cliente.ID)
	assert.Equal(t, 100.0, top.MaiorVolume.TotalVendas)

	daily, err := dailyUC.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "2024-01-02", daily[0].Data)
}

func TestTopClients_PropagatesError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}

	uc := NewTopClientsStats(repo)
	_, err := uc.Execute(context.Background())

	require.Error(t, err)
}
