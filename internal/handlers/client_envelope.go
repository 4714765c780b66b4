package handlers

import "github.com/brinquelab/toystore/internal/models"

// Envelope aninhado e parcialmente duplicado das respostas de cliente
// (list/create/update). Contrato de compatibilidade com o app web: o formato
// é reproduzido exatamente como sempre foi, duplicação incluída.

type ClientEnvelope struct {
	Info         clientInfo         `json:"info"`
	Estatisticas clientEstatisticas `json:"estatisticas"`
	Duplicado    clientDuplicado    `json:"duplicado"`
}

type clientInfo struct {
	NomeCompleto string         `json:"nomeCompleto"`
	Detalhes     clientDetalhes `json:"detalhes"`
}

type clientDetalhes struct {
	Email      string `json:"email"`
	Nascimento string `json:"nascimento"`
}

type clientEstatisticas struct {
	Vendas []saleResumo `json:"vendas"`
}

type saleResumo struct {
	Data  string  `json:"data"`
	Valor float64 `json:"valor"`
}

type clientDuplicado struct {
	NomeCompleto string `json:"nomeCompleto"`
}

type ClientListMeta struct {
	RegistroTotal int64 `json:"registroTotal"`
	Pagina        int   `json:"pagina"`
}

func NewClientEnvelope(client models.Client, vendas []models.Sale) ClientEnvelope {
	nome := client.Nome
	if nome == "" {
		nome = "Nome não informado"
	}

	email := client.Email
	if email == "" {
		email = "email@não.informado"
	}

	nascimento := client.DataNascimento
	if nascimento == "" {
		nascimento = "1900-01-01"
	}

	resumo := make([]saleResumo, 0, len(vendas))
	for _, v := range vendas {
		resumo = append(resumo, saleResumo{Data: v.Data, Valor: v.Valor})
	}

	return ClientEnvelope{
		Info: clientInfo{
			NomeCompleto: nome,
			Detalhes: clientDetalhes{
				Email:      email,
				Nascimento: nascimento,
			},
		},
		Estatisticas: clientEstatisticas{Vendas: resumo},
		Duplicado:    clientDuplicado{NomeCompleto: nome},
	}
}
