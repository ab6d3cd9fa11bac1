package services

import (
	"errors"
	"testing"

	"kantin-backend/entity"
	"kantin-backend/repository"

	"gorm.io/gorm"
)

func newKategoriService(db *gorm.DB) *KategoriService {
	return NewKategoriService(repository.NewKategoriRepository(db))
}

func TestCreateKategoriRequiresName(t *testing.T) {
	db := setupDB(t)
	svc := newKategoriService(db)

	_, err := svc.Create(&KategoriIn{})
	if err == nil || err.Error() != "Field nama_kategori wajib diisi" {
		t.Fatalf("expected nama_kategori error, got %v", err)
	}

	k, err := svc.Create(&KategoriIn{NamaKategori: "Makanan", Icon: "🍛"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if k.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestDeleteKategoriRefusedWhileReferenced(t *testing.T) {
	db := setupDB(t)
	kat := createKategori(t, db, "Makanan")
	createMenu(t, db, kat.ID, "Soto Ayam", 20000)

	svc := newKategoriService(db)
	err := svc.Delete(kat.ID)
	var ce ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError while menus reference it, got %v", err)
	}

	// Setelah menunya hilang, hapus kategori boleh.
	db.Where("kategori_id = ?", kat.ID).Delete(&entity.Menu{})
	if err := svc.Delete(kat.ID); err != nil {
		t.Fatalf("Delete after menus removed: %v", err)
	}

	var count int64
	db.Model(&entity.Kategori{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected kategori gone, got %d", count)
	}
}

func TestGetUnknownKategoriIsNotFound(t *testing.T) {
	db := setupDB(t)
	svc := newKategoriService(db)

	_, err := svc.Get(7)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateKategoriPartial(t *testing.T) {
	db := setupDB(t)
	kat := createKategori(t, db, "Makanan")

	svc := newKategoriService(db)
	updated, err := svc.Update(kat.ID, &KategoriIn{Icon: "🥘"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.NamaKategori != "Makanan" {
		t.Fatalf("name must stay when not sent, got %q", updated.NamaKategori)
	}
	if updated.Icon != "🥘" {
		t.Fatalf("expected icon updated, got %q", updated.Icon)
	}
}
