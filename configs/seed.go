package configs

import (
	"log"

	"kantin-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// Seed role awal. Role admin dilindungi: user dengan role ini tidak bisa
// dihapus lewat API.
func SeedRoles() error {
	db := DB()

	roles := []entity.Role{
		{RoleName: "admin", Permissions: "all", IsProtected: true},
		{RoleName: "pelanggan", Permissions: "order"},
	}
	for _, r := range roles {
		if err := db.Where(&entity.Role{RoleName: r.RoleName}).
			FirstOrCreate(&entity.Role{}, r).Error; err != nil {
			return err
		}
	}
	return nil
}

// Buat akun admin pertama dari env. Dilewati kalau env kosong atau
// email sudah terdaftar.
func SeedAdmin(cfg *Config) error {
	db := DB()

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	var adminRole entity.Role
	if err := db.Where("role_name = ?", "admin").First(&adminRole).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		RoleID:      adminRole.ID,
		NamaLengkap: "Admin Kantin",
		Email:       cfg.AdminEmail,
		Password:    string(hash),
		IsActive:    true,
	}
	return db.Create(&admin).Error
}

// Seed katalog awal: kategori dan menu pembuka.
func SeedKatalog() error {
	db := DB()

	kategoris := []entity.Kategori{
		{NamaKategori: "Makanan"},
		{NamaKategori: "Minuman"},
	}
	for i := range kategoris {
		if err := db.Where(&entity.Kategori{NamaKategori: kategoris[i].NamaKategori}).
			FirstOrCreate(&kategoris[i]).Error; err != nil {
			return err
		}
	}

	var makanan, minuman entity.Kategori
	if err := db.Where("nama_kategori = ?", "Makanan").First(&makanan).Error; err != nil {
		return err
	}
	if err := db.Where("nama_kategori = ?", "Minuman").First(&minuman).Error; err != nil {
		return err
	}

	menus := []entity.Menu{
		{NamaMenu: "Nasi Gudeg", KategoriID: makanan.ID, Harga: 25000, Status: entity.MenuTersedia},
		{NamaMenu: "Ayam Bakar", KategoriID: makanan.ID, Harga: 30000, Status: entity.MenuTersedia},
		{NamaMenu: "Soto Ayam", KategoriID: makanan.ID, Harga: 20000, Status: entity.MenuTersedia},
		{NamaMenu: "Es Teh Manis", KategoriID: minuman.ID, Harga: 8000, Status: entity.MenuTersedia},
		{NamaMenu: "Jus Jeruk", KategoriID: minuman.ID, Harga: 12000, Status: entity.MenuTersedia},
	}
	for _, m := range menus {
		if err := db.Where(&entity.Menu{NamaMenu: m.NamaMenu}).
			FirstOrCreate(&entity.Menu{}, m).Error; err != nil {
			return err
		}
	}
	return nil
}
