package entity

import "time"

// Order adalah pesanan final. TotalHarga dihitung dari subtotal detailnya
// saat checkout dan tidak pernah diubah lagi setelahnya.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"order_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Status     string    `gorm:"size:50;default:pending" json:"status"`
	TotalHarga int64     `gorm:"not null" json:"total_harga"`
	Pembayaran string    `gorm:"size:50" json:"pembayaran"`
	CreatedAt  time.Time `json:"create_at"`
}

func (Order) TableName() string { return "orders" }
