package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/models"
)

const (
	DefaultUserEmail    = "admin@loja.com"
	DefaultUserPassword = "admin123"
)

// Seed garante o usuário padrão e, em banco vazio, carrega os clientes e
// vendas de exemplo. Idempotente: roda em todo boot.
func Seed(db *gorm.DB) error {
	log := logger.Get()

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", DefaultUserEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultUserPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Email:        DefaultUserEmail,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Info().Str("email", DefaultUserEmail).Msg("default user created")
	}

	if err := db.Model(&models.Client{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return seedSampleData(db)
}

func seedSampleData(db *gorm.DB) error {
	clients := []models.Client{
		{Nome: "Ana Beatriz", Email: "ana.b@example.com", DataNascimento: "1992-05-01"},
		{Nome: "Carlos Eduardo", Email: "cadu@example.com", DataNascimento: "1987-08-15"},
		{Nome: "Maria Silva", Email: "maria@example.com", DataNascimento: "1990-03-20"},
		{Nome: "João Santos", Email: "joao@example.com", DataNascimento: "1985-12-10"},
		{Nome: "Pedro Oliveira", Email: "pedro@example.com", DataNascimento: "1995-07-22"},
		{Nome: "Fernanda Costa", Email: "fernanda@example.com", DataNascimento: "1988-11-14"},
		{Nome: "Lucas Mendes", Email: "lucas@example.com", DataNascimento: "1993-04-08"},
	}

	if err := db.Create(&clients).Error; err != nil {
		return err
	}

	type seedSale struct {
		client int
		valor  float64
		data   string
	}

	// Ana: maior volume; Carlos: maior média; Maria: maior frequência
	sampleSales := []seedSale{
		{0, 150.00, "2024-01-01"},
		{0, 50.00, "2024-01-02"},
		{0, 200.00, "2024-01-03"},
		{0, 300.00, "2024-01-04"},
		{0, 100.00, "2024-01-05"},

		{1, 500.00, "2024-01-01"},
		{1, 450.00, "2024-01-03"},
		{1, 480.00, "2024-01-05"},

		{2, 80.00, "2024-01-01"},
		{2, 120.00, "2024-01-02"},
		{2, 90.00, "2024-01-03"},
		{2, 150.00, "2024-01-04"},
		{2, 110.00, "2024-01-05"},
		{2, 95.00, "2024-01-06"},
		{2, 130.00, "2024-01-07"},

		{3, 120.00, "2024-01-01"},
		{3, 80.00, "2024-01-05"},
		{3, 200.00, "2024-01-08"},

		{4, 180.00, "2024-01-02"},
		{4, 220.00, "2024-01-04"},
		{4, 160.00, "2024-01-06"},
		{4, 190.00, "2024-01-08"},

		{5, 250.00, "2024-01-01"},
		{5, 180.00, "2024-01-03"},
		{5, 320.00, "2024-01-05"},
		{5, 150.00, "2024-01-07"},

		{6, 90.00, "2024-01-02"},
		{6, 140.00, "2024-01-04"},
		{6, 110.00, "2024-01-06"},
		{6, 170.00, "2024-01-08"},
		{6, 130.00, "2024-01-09"},
	}

	sales := make([]models.Sale, 0, len(sampleSales))
	for _, s := range sampleSales {
		sales = append(sales, models.Sale{
			ClientID: clients[s.client].ID,
			Valor:    s.valor,
			Data:     s.data,
		})
	}

	if err := db.Create(&sales).Error; err != nil {
		return err
	}

	lg := logger.Get()
	lg.Info().
		Int("clients", len(clients)).
		Int("sales", len(sales)).
		Msg("sample data seeded")

	return nil
}
