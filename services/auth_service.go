package services

import (
	"errors"
	"strings"
	"time"

	"kantin-backend/entity"
	"kantin-backend/repository"
	"kantin-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	RoleRepo  *repository.RoleRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, roleRepo *repository.RoleRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: userRepo, RoleRepo: roleRepo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterIn struct {
	NamaLengkap string `json:"nama_lengkap"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Register membuat user baru dengan role pelanggan. Password disimpan
// sebagai hash bcrypt, tidak pernah plaintext.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	if in.NamaLengkap == "" {
		return nil, fieldRequired("nama_lengkap")
	}
	if in.Email == "" {
		return nil, fieldRequired("email")
	}
	if in.Password == "" {
		return nil, fieldRequired("password")
	}

	email := strings.TrimSpace(in.Email)
	if !strings.Contains(email, "@") {
		return nil, ValidationError("Email tidak valid")
	}
	if len(in.Password) < 6 {
		return nil, ValidationError("Password minimal 6 karakter")
	}

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ConflictError("Email sudah terdaftar")
	}

	role, err := s.RoleRepo.FindByName("pelanggan")
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		RoleID:      role.ID,
		NamaLengkap: strings.TrimSpace(in.NamaLengkap),
		Email:       email,
		Password:    string(hash),
		IsActive:    true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type LoginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login memverifikasi kredensial dan menerbitkan JWT. Email tak terdaftar
// dan password salah sengaja dibalas pesan yang sama.
func (s *AuthService) Login(in *LoginIn) (string, *entity.User, *entity.Role, error) {
	if in.Email == "" {
		return "", nil, nil, fieldRequired("email")
	}
	if in.Password == "" {
		return "", nil, nil, fieldRequired("password")
	}

	user, err := s.UserRepo.FindByEmail(strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil, ValidationError("Email atau password salah")
		}
		return "", nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, nil, ValidationError("Email atau password salah")
	}
	if !user.IsActive {
		return "", nil, nil, ValidationError("Akun tidak aktif")
	}

	role, err := s.RoleRepo.FindByID(user.RoleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, nil, err
	}

	roleName := ""
	if role != nil {
		roleName = role.RoleName
	}
	token, err := utils.GenerateToken(user.ID, roleName, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, nil, err
	}
	return token, user, role, nil
}
