package repository

import (
	"kantin-backend/entity"

	"gorm.io/gorm"
)

type KategoriRepository struct{ DB *gorm.DB }

func NewKategoriRepository(db *gorm.DB) *KategoriRepository {
	return &KategoriRepository{DB: db}
}

func (r *KategoriRepository) FindAll() ([]entity.Kategori, error) {
	var out []entity.Kategori
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *KategoriRepository) FindByID(id uint) (*entity.Kategori, error) {
	var k entity.Kategori
	if err := r.DB.First(&k, id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *KategoriRepository) Create(k *entity.Kategori) error {
	return r.DB.Create(k).Error
}

func (r *KategoriRepository) Update(k *entity.Kategori) error {
	return r.DB.Save(k).Error
}

func (r *KategoriRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Kategori{}, id).Error
}

// Jumlah menu yang masih menunjuk kategori ini.
func (r *KategoriRepository) CountMenus(kategoriID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Menu{}).Where("kategori_id = ?", kategoriID).Count(&cnt).Error
	return cnt, err
}
