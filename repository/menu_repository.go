package repository

import (
	"kantin-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Order("id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByKategori(kategoriID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("kategori_id = ?", kategoriID).Order("id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.Menu) error {
	return r.DB.Save(m).Error
}

// Hapus menu beserta baris keranjang yang menunjuknya, dalam satu transaksi.
// Orderdetails lama sengaja dibiarkan: subtotalnya snapshot historis.
func (r *MenuRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("menu_id = ?", id).Delete(&entity.Keranjang{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Menu{}, id).Error
}
