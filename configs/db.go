package configs

import (
	"log"

	"kantin-backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	if err := db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.Kategori{}, &entity.Menu{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Keranjang{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
