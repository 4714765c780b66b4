package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/config"
	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	log := logger.Get()

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Sale{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	if err := Seed(db); err != nil {
		log.Error().Err(err).Msg("failed to seed database")
	}

	return db
}

// Reset drops all rows and replays the seed. Only wired on dev builds.
func Reset(db *gorm.DB) error {
	if err := db.Exec(
		`TRUNCATE TABLE sales, clients, users, audit_logs RESTART IDENTITY CASCADE`,
	).Error; err != nil {
		return err
	}
	return Seed(db)
}
