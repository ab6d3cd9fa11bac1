package services

import (
	"errors"
	"testing"

	"kantin-backend/entity"
)

func TestAddMergesDuplicateItem(t *testing.T) {
	db := setupDB(t)
	role := createRole(t, db, "pelanggan", false)
	user := createUser(t, db, role.ID, "budi@kantin.id")
	kat := createKategori(t, db, "Minuman")
	menu := createMenu(t, db, kat.ID, "Jus Jeruk", 12000)

	svc := newKeranjangService(db)
	if _, err := svc.Add(&AddKeranjangIn{UserID: user.ID, MenuID: menu.ID, Jumlah: 2}); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	row, err := svc.Add(&AddKeranjangIn{UserID: user.ID, MenuID: menu.ID, Jumlah: 3})
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}

	if row.Jumlah != 5 {
		t.Fatalf("expected merged jumlah 5, got %d", row.Jumlah)
	}
	if row.Subtotal != 5*12000 {
		t.Fatalf("expected subtotal %d, got %d", 5*12000, row.Subtotal)
	}

	var count int64
	db.Model(&entity.Keranjang{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single row per (user, menu), got %d", count)
	}
}

func TestAddRejectsNonPositiveJumlah(t *testing.T) {
	db := setupDB(t)
	svc := newKeranjangService(db)

	if _, err := svc.Add(&AddKeranjangIn{UserID: 1, MenuID: 1, Jumlah: 0}); err == nil {
		t.Fatal("expected error for jumlah 0")
	}
	_, err := svc.Add(&AddKeranjangIn{UserID: 1, MenuID: 1, Jumlah: -2})
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative jumlah, got %v", err)
	}
}

func TestAddUnknownMenu(t *testing.T) {
	db := setupDB(t)
	role := createRole(t, db, "pelanggan", false)
	user := createUser(t, db, role.ID, "budi@kantin.id")

	svc := newKeranjangService(db)
	_, err := svc.Add(&AddKeranjangIn{UserID: user.ID, MenuID: 77, Jumlah: 1})
	if err == nil || err.Error() != "Menu tidak ditemukan" {
		t.Fatalf("expected menu not found, got %v", err)
	}
}

func TestUpdateJumlahRecomputesSubtotalFromCurrentPrice(t *testing.T) {
	db := setupDB(t)
	role := createRole(t, db, "pelanggan", false)
	user := createUser(t, db, role.ID, "budi@kantin.id")
	kat := createKategori(t, db, "Minuman")
	menu := createMenu(t, db, kat.ID, "Jus Jeruk", 12000)

	svc := newKeranjangService(db)
	row, err := svc.Add(&AddKeranjangIn{UserID: user.ID, MenuID: menu.ID, Jumlah: 2})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Harga berubah; subtotal keranjang mengikuti harga saat ini.
	db.Model(&entity.Menu{}).Where("id = ?", menu.ID).Update("harga", 15000)

	updated, err := svc.UpdateJumlah(row.ID, 3)
	if err != nil {
		t.Fatalf("UpdateJumlah: %v", err)
	}
	if updated.Jumlah != 3 || updated.Subtotal != 3*15000 {
		t.Fatalf("unexpected row after update: %+v", updated)
	}
}

func TestClearRemovesAllRowsForUser(t *testing.T) {
	db := setupDB(t)
	role := createRole(t, db, "pelanggan", false)
	user := createUser(t, db, role.ID, "budi@kantin.id")
	other := createUser(t, db, role.ID, "sari@kantin.id")
	kat := createKategori(t, db, "Minuman")
	jus := createMenu(t, db, kat.ID, "Jus Jeruk", 12000)
	teh := createMenu(t, db, kat.ID, "Es Teh Manis", 8000)

	svc := newKeranjangService(db)
	svc.Add(&AddKeranjangIn{UserID: user.ID, MenuID: jus.ID, Jumlah: 1})
	svc.Add(&AddKeranjangIn{UserID: user.ID, MenuID: teh.ID, Jumlah: 1})
	svc.Add(&AddKeranjangIn{UserID: other.ID, MenuID: jus.ID, Jumlah: 1})

	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	rows, _ := svc.List(user.ID)
	if len(rows) != 0 {
		t.Fatalf("expected empty keranjang, got %d rows", len(rows))
	}
	otherRows, _ := svc.List(other.ID)
	if len(otherRows) != 1 {
		t.Fatalf("clear must not touch other users, got %d rows", len(otherRows))
	}
}
