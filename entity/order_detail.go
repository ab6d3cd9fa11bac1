package entity

// OrderDetail adalah satu baris pesanan. Subtotal dibekukan saat order
// dibuat (jumlah x harga menu waktu itu) dan menjadi catatan harga historis.
type OrderDetail struct {
	ID       uint  `gorm:"primaryKey" json:"detail_id"`
	OrderID  uint  `gorm:"not null;index" json:"order_id"`
	MenuID   uint  `gorm:"not null" json:"menu_id"`
	Jumlah   int   `gorm:"not null" json:"jumlah"`
	Subtotal int64 `gorm:"not null" json:"subtotal"`
}

func (OrderDetail) TableName() string { return "orderdetails" }
