package services

import (
	"errors"
	"testing"
	"time"

	"kantin-backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewRoleRepository(db),
		"test-secret",
		time.Hour,
	)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := setupDB(t)
	createRole(t, db, "pelanggan", false)

	svc := newAuthService(db)
	user, err := svc.Register(&RegisterIn{
		NamaLengkap: "Budi Santoso",
		Email:       "budi@kantin.id",
		Password:    "rahasia123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if user.Password == "rahasia123" {
		t.Fatal("password must not be stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsActive {
		t.Fatal("new user should be active")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	createRole(t, db, "pelanggan", false)

	svc := newAuthService(db)
	in := &RegisterIn{NamaLengkap: "Budi", Email: "budi@kantin.id", Password: "rahasia123"}
	if _, err := svc.Register(in); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(in)
	var ce ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err.Error() != "Email sudah terdaftar" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupDB(t)
	createRole(t, db, "pelanggan", false)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterIn{Email: "a@b.c", Password: "rahasia123"})
	if err == nil || err.Error() != "Field nama_lengkap wajib diisi" {
		t.Fatalf("expected nama_lengkap error, got %v", err)
	}

	_, err = svc.Register(&RegisterIn{NamaLengkap: "Budi", Email: "bukan-email", Password: "rahasia123"})
	if err == nil || err.Error() != "Email tidak valid" {
		t.Fatalf("expected invalid email error, got %v", err)
	}

	_, err = svc.Register(&RegisterIn{NamaLengkap: "Budi", Email: "a@b.c", Password: "lima5"})
	if err == nil || err.Error() != "Password minimal 6 karakter" {
		t.Fatalf("expected short password error, got %v", err)
	}

	if _, err := svc.Register(&RegisterIn{NamaLengkap: "Budi", Email: "a@b.c", Password: "enam66"}); err != nil {
		t.Fatalf("6-char password should pass, got %v", err)
	}
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	db := setupDB(t)
	createRole(t, db, "pelanggan", false)
	svc := newAuthService(db)

	if _, err := svc.Register(&RegisterIn{NamaLengkap: "Budi", Email: "budi@kantin.id", Password: "rahasia123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, role, err := svc.Login(&LoginIn{Email: "budi@kantin.id", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "budi@kantin.id" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if role == nil || role.RoleName != "pelanggan" {
		t.Fatalf("unexpected role: %+v", role)
	}
}

func TestLoginRejectsBadCredentialsWithSameMessage(t *testing.T) {
	db := setupDB(t)
	createRole(t, db, "pelanggan", false)
	svc := newAuthService(db)

	if _, err := svc.Register(&RegisterIn{NamaLengkap: "Budi", Email: "budi@kantin.id", Password: "rahasia123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, _, errUnknown := svc.Login(&LoginIn{Email: "tidakada@kantin.id", Password: "rahasia123"})
	_, _, _, errWrongPw := svc.Login(&LoginIn{Email: "budi@kantin.id", Password: "salah123"})

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("expected both logins to fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("messages must not leak which field was wrong: %q vs %q", errUnknown, errWrongPw)
	}
	if errUnknown.Error() != "Email atau password salah" {
		t.Fatalf("unexpected message: %q", errUnknown.Error())
	}
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	db := setupDB(t)
	createRole(t, db, "pelanggan", false)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterIn{NamaLengkap: "Budi", Email: "budi@kantin.id", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	db.Model(user).Update("is_active", false)

	_, _, _, err = svc.Login(&LoginIn{Email: "budi@kantin.id", Password: "rahasia123"})
	if err == nil || err.Error() != "Akun tidak aktif" {
		t.Fatalf("expected inactive account error, got %v", err)
	}
}
