package services

import (
	"errors"
	"fmt"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/gorm"
)

// OrderPublisher menerima order yang baru berhasil dibuat (untuk feed
// dashboard admin). Boleh nil.
type OrderPublisher interface {
	PublishOrder(o *entity.Order)
}

type OrderService struct {
	DB            *gorm.DB
	Repo          *repository.OrderRepository
	UserRepo      *repository.UserRepository
	MenuRepo      *repository.MenuRepository
	KeranjangRepo *repository.KeranjangRepository
	Publisher     OrderPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	menuRepo *repository.MenuRepository,
	keranjangRepo *repository.KeranjangRepository,
) *OrderService {
	return &OrderService{
		DB:            db,
		Repo:          repo,
		UserRepo:      userRepo,
		MenuRepo:      menuRepo,
		KeranjangRepo: keranjangRepo,
	}
}

// ----- DTO -----

type OrderItemIn struct {
	MenuID uint `json:"menu_id"`
	Jumlah int  `json:"jumlah"`
}

type CreateOrderReq struct {
	UserID     uint          `json:"user_id"`
	Items      []OrderItemIn `json:"items"`
	Pembayaran string        `json:"pembayaran"`
}

// OrderOut adalah order plus detail dan ringkasan user-nya. Entity sengaja
// tidak menyimpan back-reference, jadi komposisi dilakukan di sini.
type OrderOut struct {
	entity.Order
	User    *entity.User         `json:"user,omitempty"`
	Details []entity.OrderDetail `json:"order_details"`
}

// Create menjalankan checkout: validasi field wajib (urutan tetap),
// resolve user, buat order pending bertotal 0, satu detail per item dengan
// subtotal beku, set total, lalu kosongkan keranjang user. Semuanya dalam
// satu transaksi; menu yang tidak ada membatalkan seluruhnya.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if req.UserID == 0 {
		return nil, fieldRequired("user_id")
	}
	if len(req.Items) == 0 {
		return nil, fieldRequired("items")
	}
	if req.Pembayaran == "" {
		return nil, fieldRequired("pembayaran")
	}
	for _, it := range req.Items {
		if it.Jumlah < 1 {
			return nil, ValidationError("Jumlah harus lebih dari 0")
		}
	}

	if _, err := s.UserRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BadReferenceError("User tidak ditemukan")
		}
		return nil, err
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{
			UserID:     req.UserID,
			Status:     entity.OrderPending,
			TotalHarga: 0,
			Pembayaran: req.Pembayaran,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		var total int64
		for _, it := range req.Items {
			var m entity.Menu
			if err := tx.First(&m, it.MenuID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return BadReferenceError(fmt.Sprintf("Menu dengan ID %d tidak ditemukan", it.MenuID))
				}
				return err
			}

			subtotal := m.Harga * int64(it.Jumlah)
			total += subtotal

			detail := entity.OrderDetail{
				OrderID:  order.ID,
				MenuID:   m.ID,
				Jumlah:   it.Jumlah,
				Subtotal: subtotal,
			}
			if err := s.Repo.CreateDetail(tx, &detail); err != nil {
				return err
			}
		}

		if err := s.Repo.SetTotal(tx, order.ID, total); err != nil {
			return err
		}
		order.TotalHarga = total

		// Keranjang user dikosongkan seluruhnya, apa pun isinya.
		return s.KeranjangRepo.ClearByUser(tx, req.UserID)
	})
	if err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		s.Publisher.PublishOrder(&order)
	}
	return &order, nil
}

func (s *OrderService) List() ([]OrderOut, error) {
	orders, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	return s.compose(orders)
}

func (s *OrderService) Detail(orderID uint) (*OrderOut, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Order tidak ditemukan")
		}
		return nil, err
	}
	out, err := s.compose([]entity.Order{*o})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *OrderService) Details(orderID uint) ([]entity.OrderDetail, error) {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Order tidak ditemukan")
		}
		return nil, err
	}
	return s.Repo.GetDetails(orderID)
}

// Riwayat order satu user, terbaru dulu.
func (s *OrderService) History(userID uint) ([]OrderOut, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("User tidak ditemukan")
		}
		return nil, err
	}
	orders, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.compose(orders)
}

// Transisi status administratif. Hanya anggota himpunan status yang diterima.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if status == "" {
		return nil, fieldRequired("status")
	}
	if !entity.ValidOrderStatus(status) {
		return nil, ValidationError("Status order tidak dikenal: " + status)
	}
	affected, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, NotFoundError("Order tidak ditemukan")
	}
	return s.Repo.FindByID(orderID)
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("Order tidak ditemukan")
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, orderID)
	})
}

func (s *OrderService) compose(orders []entity.Order) ([]OrderOut, error) {
	out := make([]OrderOut, 0, len(orders))
	for _, o := range orders {
		details, err := s.Repo.GetDetails(o.ID)
		if err != nil {
			return nil, err
		}
		user, err := s.UserRepo.FindByID(o.UserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out = append(out, OrderOut{Order: o, User: user, Details: details})
	}
	return out, nil
}
