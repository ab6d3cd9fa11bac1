package services

import (
	"errors"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/gorm"
)

type KategoriService struct {
	Repo *repository.KategoriRepository
}

func NewKategoriService(repo *repository.KategoriRepository) *KategoriService {
	return &KategoriService{Repo: repo}
}

type KategoriIn struct {
	NamaKategori string `json:"nama_kategori"`
	Icon         string `json:"icon"`
}

func (s *KategoriService) List() ([]entity.Kategori, error) {
	return s.Repo.FindAll()
}

func (s *KategoriService) Get(id uint) (*entity.Kategori, error) {
	k, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Kategori tidak ditemukan")
		}
		return nil, err
	}
	return k, nil
}

func (s *KategoriService) Create(in *KategoriIn) (*entity.Kategori, error) {
	if in.NamaKategori == "" {
		return nil, fieldRequired("nama_kategori")
	}
	k := &entity.Kategori{NamaKategori: in.NamaKategori, Icon: in.Icon}
	if err := s.Repo.Create(k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *KategoriService) Update(id uint, in *KategoriIn) (*entity.Kategori, error) {
	k, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Kategori tidak ditemukan")
		}
		return nil, err
	}
	if in.NamaKategori != "" {
		k.NamaKategori = in.NamaKategori
	}
	if in.Icon != "" {
		k.Icon = in.Icon
	}
	if err := s.Repo.Update(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Kategori yang masih punya menu tidak boleh dihapus.
func (s *KategoriService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Kategori tidak ditemukan")
		}
		return err
	}
	cnt, err := s.Repo.CountMenus(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ConflictError("Kategori masih dipakai menu")
	}
	return s.Repo.Delete(id)
}
