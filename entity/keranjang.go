package entity

// Keranjang adalah baris belanjaan user sebelum checkout. Satu baris per
// (user_id, menu_id); menambah menu yang sama menaikkan jumlah, bukan
// membuat baris baru. Subtotal dihitung ulang dari harga menu saat ini
// setiap kali jumlah berubah.
type Keranjang struct {
	ID       uint  `gorm:"primaryKey" json:"keranjang_id"`
	OrderID  *uint `json:"order_id,omitempty"`
	MenuID   uint  `gorm:"not null;uniqueIndex:idx_keranjang_user_menu" json:"menu_id"`
	UserID   uint  `gorm:"not null;uniqueIndex:idx_keranjang_user_menu" json:"user_id"`
	Jumlah   int   `gorm:"not null" json:"jumlah"`
	Subtotal int64 `gorm:"not null" json:"subtotal"`
}

func (Keranjang) TableName() string { return "keranjang" }
