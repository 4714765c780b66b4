package models

import "time"

// Venda imutável: sem update/delete, só cai junto com o cliente (cascade)
type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"clientId"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Valor float64 `gorm:"not null" json:"valor"`

	// Data da venda como string (YYYY-MM-DD); agrupamento de estatísticas
	// compara o valor armazenado byte a byte, sem normalização
	Data string `gorm:"size:30;not null;index" json:"data"`

	CreatedAt time.Time `json:"createdAt"`
}
