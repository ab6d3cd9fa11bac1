package services

import (
	"fmt"
	"testing"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB sqlite in-memory terpisah per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.Kategori{}, &entity.Menu{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Keranjang{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createRole(t *testing.T, db *gorm.DB, name string, protected bool) entity.Role {
	t.Helper()
	r := entity.Role{RoleName: name, IsProtected: protected}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("create role: %v", err)
	}
	return r
}

func createUser(t *testing.T, db *gorm.DB, roleID uint, email string) entity.User {
	t.Helper()
	u := entity.User{
		RoleID:      roleID,
		NamaLengkap: "Test User",
		Email:       email,
		Password:    "x",
		IsActive:    true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createKategori(t *testing.T, db *gorm.DB, nama string) entity.Kategori {
	t.Helper()
	k := entity.Kategori{NamaKategori: nama}
	if err := db.Create(&k).Error; err != nil {
		t.Fatalf("create kategori: %v", err)
	}
	return k
}

func createMenu(t *testing.T, db *gorm.DB, kategoriID uint, nama string, harga int64) entity.Menu {
	t.Helper()
	m := entity.Menu{
		KategoriID: kategoriID,
		NamaMenu:   nama,
		Harga:      harga,
		Status:     entity.MenuTersedia,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create menu: %v", err)
	}
	return m
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		repository.NewMenuRepository(db),
		repository.NewKeranjangRepository(db),
	)
}

func newKeranjangService(db *gorm.DB) *KeranjangService {
	return NewKeranjangService(
		db,
		repository.NewKeranjangRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db),
	)
}
