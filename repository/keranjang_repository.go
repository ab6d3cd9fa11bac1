package repository

import (
	"kantin-backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeranjangRepository struct{ DB *gorm.DB }

func NewKeranjangRepository(db *gorm.DB) *KeranjangRepository {
	return &KeranjangRepository{DB: db}
}

func (r *KeranjangRepository) ListByUser(userID uint) ([]entity.Keranjang, error) {
	var rows []entity.Keranjang
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&rows).Error
	return rows, err
}

func (r *KeranjangRepository) FindByID(id uint) (*entity.Keranjang, error) {
	var k entity.Keranjang
	if err := r.DB.First(&k, id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

// Baris (user, menu) diambil dengan row lock supaya dua request "tambah ke
// keranjang" yang bersamaan tidak saling menimpa increment. SQLite tidak
// mengenal FOR UPDATE; di sana penulis sudah diserialisasi oleh engine-nya.
func (r *KeranjangRepository) FindForUpdate(tx *gorm.DB, userID, menuID uint) (*entity.Keranjang, error) {
	q := tx.Where("user_id = ? AND menu_id = ?", userID, menuID)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var k entity.Keranjang
	if err := q.First(&k).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *KeranjangRepository) Create(tx *gorm.DB, k *entity.Keranjang) error {
	return tx.Create(k).Error
}

func (r *KeranjangRepository) Save(tx *gorm.DB, k *entity.Keranjang) error {
	return tx.Save(k).Error
}

func (r *KeranjangRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Keranjang{}, id).Error
}

// Kosongkan seluruh keranjang user. Dipanggil di dalam transaksi checkout.
func (r *KeranjangRepository) ClearByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.Keranjang{}).Error
}
