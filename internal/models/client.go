package models

import "time"

// Cliente da loja (comprador), não confundir com o app web
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome           string `gorm:"size:100;not null" json:"nome"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	DataNascimento string `gorm:"size:10;not null" json:"dataNascimento"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
