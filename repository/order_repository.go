package repository

import (
	"kantin-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

// Setelah semua detail dihitung, total order di-set sekali di sini.
func (r *OrderRepository) SetTotal(tx *gorm.DB, orderID uint, total int64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_harga", total).Error
}

func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetDetails(orderID uint) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&details).Error
	return details, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Hapus order beserta detailnya dalam satu transaksi.
func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderDetail{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}
