package stats

import (
	"sort"
	"time"

	"github.com/brinquelab/toystore/internal/models"
)

// DailyStatsLimit é o máximo de dias retornados pelo resumo diário.
const DailyStatsLimit = 30

type DailyTotal struct {
	Data  string  `json:"data"`
	Total float64 `json:"total"`
}

type VolumeEntry struct {
	Cliente     models.Client `json:"cliente"`
	TotalVendas float64       `json:"totalVendas"`
}

type MediaEntry struct {
	Cliente    models.Client `json:"cliente"`
	MediaValor float64       `json:"mediaValor"`
}

type FrequenciaEntry struct {
	Cliente    models.Client `json:"cliente"`
	DiasUnicos int           `json:"diasUnicos"`
}

type TopClients struct {
	MaiorVolume     VolumeEntry     `json:"maiorVolume"`
	MaiorMedia      MediaEntry      `json:"maiorMedia"`
	MaiorFrequencia FrequenciaEntry `json:"maiorFrequencia"`
}

// SentinelClient é o cliente devolvido quando um ranking não tem nenhum
// candidato elegível. Quem consome nunca recebe um slot vazio.
func SentinelClient() models.Client {
	now := time.Now()
	return models.Client{
		ID:             0,
		Nome:           "Nenhum cliente",
		Email:          "n/a",
		DataNascimento: "1900-01-01",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// DailyTotals agrupa as vendas pela string de data armazenada (sem
// normalização: "2024-01-01" e "2024-01-01T00:00:00" são grupos distintos),
// soma os valores e devolve no máximo limit dias, do mais recente para o
// mais antigo.
func DailyTotals(sales []models.Sale, limit int) []DailyTotal {
	byDay := make(map[string]float64, len(sales))
	for _, s := range sales {
		byDay[s.Data] += s.Valor
	}

	totals := make([]DailyTotal, 0, len(byDay))
	for data, total := range byDay {
		totals = append(totals, DailyTotal{Data: data, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Data > totals[j].Data
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// HighestVolume devolve o cliente com a maior soma de valores de venda.
// Clientes sem venda participam com total 0. Empate: fica o primeiro visto
// (menor id, dada a ordenação do Repository).
func HighestVolume(clients []models.Client, sales []models.Sale) VolumeEntry {
	if len(clients) == 0 {
		return VolumeEntry{Cliente: SentinelClient(), TotalVendas: 0}
	}

	totals := make(map[uint]float64, len(clients))
	for _, s := range sales {
		totals[s.ClientID] += s.Valor
	}

	best := VolumeEntry{Cliente: clients[0], TotalVendas: totals[clients[0].ID]}
	for _, c := range clients[1:] {
		if totals[c.ID] > best.TotalVendas {
			best = VolumeEntry{Cliente: c, TotalVendas: totals[c.ID]}
		}
	}
	return best
}

// HighestAverage devolve o cliente com a maior média de valor por venda.
// Ao contrário do volume, clientes sem nenhuma venda ficam fora do ranking;
// sem candidato elegível a resposta é o cliente sentinela.
func HighestAverage(clients []models.Client, sales []models.Sale) MediaEntry {
	type acc struct {
		sum   float64
		count int
	}

	accs := make(map[uint]acc, len(clients))
	for _, s := range sales {
		a := accs[s.ClientID]
		a.sum += s.Valor
		a.count++
		accs[s.ClientID] = a
	}

	best := MediaEntry{Cliente: SentinelClient(), MediaValor: 0}
	found := false
	for _, c := range clients {
		a, ok := accs[c.ID]
		if !ok || a.count == 0 {
			continue
		}
		media := a.sum / float64(a.count)
		if !found || media > best.MediaValor {
			best = MediaEntry{Cliente: c, MediaValor: media}
			found = true
		}
	}
	return best
}

// HighestFrequency devolve o cliente com mais dias distintos de compra.
// Vendas repetidas no mesmo dia contam uma vez; clientes sem venda
// participam com 0 dias.
func HighestFrequency(clients []models.Client, sales []models.Sale) FrequenciaEntry {
	if len(clients) == 0 {
		return FrequenciaEntry{Cliente: SentinelClient(), DiasUnicos: 0}
	}

	days := make(map[uint]map[string]struct{}, len(clients))
	for _, s := range sales {
		if days[s.ClientID] == nil {
			days[s.ClientID] = make(map[string]struct{})
		}
		days[s.ClientID][s.Data] = struct{}{}
	}

	best := FrequenciaEntry{Cliente: clients[0], DiasUnicos: len(days[clients[0].ID])}
	for _, c := range clients[1:] {
		if n := len(days[c.ID]); n > best.DiasUnicos {
			best = FrequenciaEntry{Cliente: c, DiasUnicos: n}
		}
	}
	return best
}
