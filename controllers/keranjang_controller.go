package controllers

import (
	"net/http"
	"strconv"

	"kantin-backend/pkg/resp"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
)

type KeranjangController struct{ Svc *services.KeranjangService }

func NewKeranjangController(s *services.KeranjangService) *KeranjangController {
	return &KeranjangController{Svc: s}
}

// List menangani GET /api/keranjang/:id.
//
// Parameter :id di rute keranjang punya dua arti, mengikuti kontrak API
// lama: user id untuk List dan Clear, keranjang id untuk UpdateJumlah dan
// Remove. Gin hanya mengizinkan satu nama parameter per posisi path, jadi
// keduanya berbagi nama ":id".
func (ctl *KeranjangController) List(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))
	rows, err := ctl.Svc.List(uint(userID))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "keranjang": rows})
}

// POST /api/keranjang
func (ctl *KeranjangController) Add(c *gin.Context) {
	var in services.AddKeranjangIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row, err := ctl.Svc.Add(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "keranjang": row})
}

// UpdateJumlah menangani PUT /api/keranjang/:id. :id adalah keranjang id.
func (ctl *KeranjangController) UpdateJumlah(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Jumlah int `json:"jumlah"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	row, err := ctl.Svc.UpdateJumlah(uint(id), body.Jumlah)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "keranjang": row})
}

// Remove menangani DELETE /api/keranjang/:id. :id adalah keranjang id.
func (ctl *KeranjangController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Remove(uint(id)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item keranjang dihapus"})
}

// Clear menangani DELETE /api/keranjang/:id/clear. :id adalah user id,
// lihat catatan di List.
func (ctl *KeranjangController) Clear(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Clear(uint(userID)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Keranjang dikosongkan"})
}
