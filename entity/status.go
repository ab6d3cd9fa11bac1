package entity

// Status menu. Nilai lama "aktif"/"nonaktif" dari skema sebelumnya
// dinormalisasi ke himpunan ini saat tulis.
const (
	MenuTersedia = "tersedia"
	MenuHabis    = "habis"
)

// Status order. Order baru selalu mulai dari pending.
const (
	OrderPending    = "pending"
	OrderDiproses   = "diproses"
	OrderSelesai    = "selesai"
	OrderDibatalkan = "dibatalkan"
)

// NormalizeMenuStatus memetakan nilai status lama ke nilai kanonis.
// String kosong berarti default tersedia.
func NormalizeMenuStatus(s string) string {
	switch s {
	case "", "aktif", MenuTersedia:
		return MenuTersedia
	case "nonaktif", MenuHabis:
		return MenuHabis
	}
	return s
}

func ValidMenuStatus(s string) bool {
	return s == MenuTersedia || s == MenuHabis
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderDiproses, OrderSelesai, OrderDibatalkan:
		return true
	}
	return false
}
