package entity

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"user_id"`
	RoleID      uint      `gorm:"not null;index" json:"role_id"`
	NamaLengkap string    `gorm:"size:255;not null" json:"nama_lengkap"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"create_at"`
}

func (User) TableName() string { return "users" }
