package services

import (
	"errors"
	"strings"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/gorm"
)

type UserService struct {
	DB       *gorm.DB
	Repo     *repository.UserRepository
	RoleRepo *repository.RoleRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository, roleRepo *repository.RoleRepository) *UserService {
	return &UserService{DB: db, Repo: repo, RoleRepo: roleRepo}
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Repo.FindAll()
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	u, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("User tidak ditemukan")
		}
		return nil, err
	}
	return u, nil
}

type UserUpdateIn struct {
	NamaLengkap string `json:"nama_lengkap"`
	Email       string `json:"email"`
	RoleID      uint   `json:"role_id"`
	IsActive    *bool  `json:"is_active"`
}

func (s *UserService) Update(id uint, in *UserUpdateIn) (*entity.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.NamaLengkap != "" {
		updates["nama_lengkap"] = strings.TrimSpace(in.NamaLengkap)
	}
	if in.Email != "" {
		email := strings.TrimSpace(in.Email)
		if !strings.Contains(email, "@") {
			return nil, ValidationError("Email tidak valid")
		}
		count, err := s.Repo.CountByEmail(email)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			existing, err := s.Repo.FindByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing.ID != id {
				return nil, ConflictError("Email sudah terdaftar")
			}
		}
		updates["email"] = email
	}
	if in.RoleID != 0 {
		if _, err := s.RoleRepo.FindByID(in.RoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, BadReferenceError("Role tidak ditemukan")
			}
			return nil, err
		}
		updates["role_id"] = in.RoleID
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete menolak menghapus user dengan role terlindung. Pengecekan nama
// "admin" dipertahankan sebagai fallback untuk baris role lama yang dibuat
// sebelum flag is_protected ada.
func (s *UserService) Delete(id uint) error {
	u, err := s.Get(id)
	if err != nil {
		return err
	}

	role, err := s.RoleRepo.FindByID(u.RoleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if role != nil {
		if role.IsProtected || strings.EqualFold(role.RoleName, "admin") {
			return ConflictError("User admin tidak dapat dihapus")
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// Keranjang user ikut dibersihkan; order historisnya dibiarkan.
		if err := tx.Where("user_id = ?", id).Delete(&entity.Keranjang{}).Error; err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
}
