package services

import (
	"errors"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB           *gorm.DB
	Repo         *repository.MenuRepository
	KategoriRepo *repository.KategoriRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, kategoriRepo *repository.KategoriRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo, KategoriRepo: kategoriRepo}
}

// Harga pointer supaya 0 (gratis) bisa dibedakan dari field yang tidak dikirim.
type MenuIn struct {
	NamaMenu   string `json:"nama_menu"`
	KategoriID uint   `json:"kategori_id"`
	Deskripsi  string `json:"deskripsi"`
	Harga      *int64 `json:"harga"`
	Image      string `json:"image"`
	Status     string `json:"status"`
}

func (s *MenuService) List() ([]entity.Menu, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Menu tidak ditemukan")
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) ListByKategori(kategoriID uint) ([]entity.Menu, error) {
	if _, err := s.KategoriRepo.FindByID(kategoriID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Kategori tidak ditemukan")
		}
		return nil, err
	}
	return s.Repo.FindByKategori(kategoriID)
}

func (s *MenuService) Create(in *MenuIn) (*entity.Menu, error) {
	if in.NamaMenu == "" {
		return nil, fieldRequired("nama_menu")
	}
	if in.KategoriID == 0 {
		return nil, fieldRequired("kategori_id")
	}
	if in.Harga == nil {
		return nil, fieldRequired("harga")
	}
	if *in.Harga < 0 {
		return nil, ValidationError("Harga tidak boleh negatif")
	}

	if _, err := s.KategoriRepo.FindByID(in.KategoriID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BadReferenceError("Kategori tidak ditemukan")
		}
		return nil, err
	}

	status := entity.NormalizeMenuStatus(in.Status)
	if !entity.ValidMenuStatus(status) {
		return nil, ValidationError("Status menu tidak dikenal: " + in.Status)
	}

	m := &entity.Menu{
		NamaMenu:   in.NamaMenu,
		KategoriID: in.KategoriID,
		Deskripsi:  in.Deskripsi,
		Harga:      *in.Harga,
		Image:      in.Image,
		Status:     status,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update parsial: hanya field yang dikirim yang diubah.
func (s *MenuService) Update(id uint, in *MenuIn) (*entity.Menu, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Menu tidak ditemukan")
		}
		return nil, err
	}

	if in.KategoriID != 0 && in.KategoriID != m.KategoriID {
		if _, err := s.KategoriRepo.FindByID(in.KategoriID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, BadReferenceError("Kategori tidak ditemukan")
			}
			return nil, err
		}
		m.KategoriID = in.KategoriID
	}
	if in.NamaMenu != "" {
		m.NamaMenu = in.NamaMenu
	}
	if in.Deskripsi != "" {
		m.Deskripsi = in.Deskripsi
	}
	if in.Image != "" {
		m.Image = in.Image
	}
	if in.Harga != nil {
		if *in.Harga < 0 {
			return nil, ValidationError("Harga tidak boleh negatif")
		}
		m.Harga = *in.Harga
	}
	if in.Status != "" {
		status := entity.NormalizeMenuStatus(in.Status)
		if !entity.ValidMenuStatus(status) {
			return nil, ValidationError("Status menu tidak dikenal: " + in.Status)
		}
		m.Status = status
	}

	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Hapus menu. Baris keranjang yang menunjuknya ikut terhapus; orderdetails
// lama tetap tinggal karena subtotalnya snapshot historis.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Menu tidak ditemukan")
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}
