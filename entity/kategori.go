package entity

// Kategori mengelompokkan menu (Makanan, Minuman, ...).
type Kategori struct {
	ID           uint   `gorm:"primaryKey" json:"kategori_id"`
	NamaKategori string `gorm:"size:100;not null" json:"nama_kategori"`
	Icon         string `gorm:"size:255" json:"icon,omitempty"`
}

func (Kategori) TableName() string { return "kategori" }
