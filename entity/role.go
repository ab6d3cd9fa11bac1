package entity

// Role adalah bundel izin untuk user. IsProtected menandai role yang
// penggunanya tidak boleh dihapus lewat API (admin).
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"role_id"`
	RoleName    string `gorm:"size:50;not null" json:"role_name"`
	Permissions string `gorm:"type:text" json:"permissions,omitempty"`
	IsProtected bool   `gorm:"default:false" json:"is_protected"`
}

func (Role) TableName() string { return "roles" }
