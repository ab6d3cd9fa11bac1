package entity

import "time"

type Menu struct {
	ID         uint      `gorm:"primaryKey" json:"menu_id"`
	KategoriID uint      `gorm:"not null;index" json:"kategori_id"`
	NamaMenu   string    `gorm:"size:255;not null" json:"nama_menu"`
	Deskripsi  string    `gorm:"type:text" json:"deskripsi,omitempty"`
	Harga      int64     `gorm:"not null" json:"harga"`
	Image      string    `gorm:"size:255" json:"image,omitempty"`
	Status     string    `gorm:"size:20;default:tersedia" json:"status"`
	CreatedAt  time.Time `json:"create_at"`
}

func (Menu) TableName() string { return "menu" }
