package services

import (
	"errors"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/gorm"
)

type KeranjangService struct {
	DB       *gorm.DB
	Repo     *repository.KeranjangRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
}

func NewKeranjangService(
	db *gorm.DB,
	repo *repository.KeranjangRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
) *KeranjangService {
	return &KeranjangService{DB: db, Repo: repo, MenuRepo: menuRepo, UserRepo: userRepo}
}

type AddKeranjangIn struct {
	UserID  uint  `json:"user_id"`
	OrderID *uint `json:"order_id"`
	MenuID  uint  `json:"menu_id"`
	Jumlah  int   `json:"jumlah"`
}

func (s *KeranjangService) List(userID uint) ([]entity.Keranjang, error) {
	return s.Repo.ListByUser(userID)
}

// Add melakukan upsert baris (user, menu): baris yang sudah ada dinaikkan
// jumlahnya, subtotal dihitung ulang dari harga menu saat ini. Lookup dan
// increment berjalan di satu transaksi dengan row lock; unique index
// (user_id, menu_id) menjaga sisanya.
func (s *KeranjangService) Add(in *AddKeranjangIn) (*entity.Keranjang, error) {
	if in.UserID == 0 {
		return nil, fieldRequired("user_id")
	}
	if in.MenuID == 0 {
		return nil, fieldRequired("menu_id")
	}
	if in.Jumlah == 0 {
		return nil, fieldRequired("jumlah")
	}
	if in.Jumlah < 1 {
		return nil, ValidationError("Jumlah harus lebih dari 0")
	}

	if _, err := s.UserRepo.FindByID(in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BadReferenceError("User tidak ditemukan")
		}
		return nil, err
	}

	var row *entity.Keranjang
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var m entity.Menu
		if err := tx.First(&m, in.MenuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadReferenceError("Menu tidak ditemukan")
			}
			return err
		}

		exist, err := s.Repo.FindForUpdate(tx, in.UserID, in.MenuID)
		if err == nil {
			exist.Jumlah += in.Jumlah
			exist.Subtotal = int64(exist.Jumlah) * m.Harga
			if err := s.Repo.Save(tx, exist); err != nil {
				return err
			}
			row = exist
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = &entity.Keranjang{
			UserID:   in.UserID,
			OrderID:  in.OrderID,
			MenuID:   in.MenuID,
			Jumlah:   in.Jumlah,
			Subtotal: int64(in.Jumlah) * m.Harga,
		}
		return s.Repo.Create(tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateJumlah men-set jumlah baris keranjang dan menghitung ulang subtotal
// dari harga menu saat ini.
func (s *KeranjangService) UpdateJumlah(id uint, jumlah int) (*entity.Keranjang, error) {
	if jumlah < 1 {
		return nil, ValidationError("Jumlah harus lebih dari 0")
	}

	var row *entity.Keranjang
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var k entity.Keranjang
		if err := tx.First(&k, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError("Keranjang tidak ditemukan")
			}
			return err
		}
		var m entity.Menu
		if err := tx.First(&m, k.MenuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError("Menu tidak ditemukan")
			}
			return err
		}
		k.Jumlah = jumlah
		k.Subtotal = int64(jumlah) * m.Harga
		if err := s.Repo.Save(tx, &k); err != nil {
			return err
		}
		row = &k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *KeranjangService) Remove(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Keranjang tidak ditemukan")
		}
		return err
	}
	return s.Repo.Delete(id)
}

func (s *KeranjangService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ClearByUser(tx, userID)
	})
}
