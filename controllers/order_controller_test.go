package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kantin-backend/entity"
	"kantin-backend/repository"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.Kategori{}, &entity.Menu{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Keranjang{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		repository.NewMenuRepository(db),
		repository.NewKeranjangRepository(db),
	)
	ctl := NewOrderController(svc)

	r := gin.New()
	r.POST("/api/orders", ctl.Create)
	r.GET("/api/orders/:id", ctl.Detail)
	return r, db
}

func seedCheckoutData(t *testing.T, db *gorm.DB) (entity.User, entity.Menu) {
	t.Helper()
	role := entity.Role{RoleName: "pelanggan"}
	db.Create(&role)
	user := entity.User{RoleID: role.ID, NamaLengkap: "Budi", Email: "budi@kantin.id", Password: "x", IsActive: true}
	db.Create(&user)
	kat := entity.Kategori{NamaKategori: "Makanan"}
	db.Create(&kat)
	menu := entity.Menu{KategoriID: kat.ID, NamaMenu: "Nasi Gudeg", Harga: 25000, Status: entity.MenuTersedia}
	db.Create(&menu)
	return user, menu
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, db := setupOrderRouter(t)
	user, menu := seedCheckoutData(t, db)

	body, _ := json.Marshal(gin.H{
		"user_id":    user.ID,
		"items":      []gin.H{{"menu_id": menu.ID, "jumlah": 2}},
		"pembayaran": "tunai",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Success    bool  `json:"success"`
		TotalHarga int64 `json:"total_harga"`
		Order      struct {
			Status string `json:"status"`
		} `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success || out.TotalHarga != 50000 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	if out.Order.Status != entity.OrderPending {
		t.Fatalf("expected pending, got %q", out.Order.Status)
	}

	var detailCount int64
	db.Model(&entity.OrderDetail{}).Count(&detailCount)
	if detailCount != 1 {
		t.Fatalf("expected 1 detail row, got %d", detailCount)
	}
}

func TestCreateOrderEndpointUnknownMenuIs400(t *testing.T) {
	r, db := setupOrderRouter(t)
	user, _ := seedCheckoutData(t, db)

	body, _ := json.Marshal(gin.H{
		"user_id":    user.ID,
		"items":      []gin.H{{"menu_id": 999, "jumlah": 1}},
		"pembayaran": "tunai",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error != "Menu dengan ID 999 tidak ditemukan" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}

	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("expected no order rows after failed checkout, got %d", orderCount)
	}
}

func TestOrderDetailEndpointUnknownIs404(t *testing.T) {
	r, _ := setupOrderRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
