package controllers

import (
	"net/http"
	"strconv"

	"kantin-backend/pkg/resp"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
)

type KategoriController struct{ Svc *services.KategoriService }

func NewKategoriController(s *services.KategoriService) *KategoriController {
	return &KategoriController{Svc: s}
}

// GET /api/kategori
func (ctl *KategoriController) List(c *gin.Context) {
	kategoris, err := ctl.Svc.List()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kategoris": kategoris})
}

// GET /api/kategori/:id
func (ctl *KategoriController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	kategori, err := ctl.Svc.Get(uint(id))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kategori": kategori})
}

// POST /api/kategori
func (ctl *KategoriController) Create(c *gin.Context) {
	var in services.KategoriIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	kategori, err := ctl.Svc.Create(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "kategori": kategori})
}

// PUT /api/kategori/:id
func (ctl *KategoriController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.KategoriIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	kategori, err := ctl.Svc.Update(uint(id), &in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "kategori": kategori})
}

// DELETE /api/kategori/:id
func (ctl *KategoriController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Kategori berhasil dihapus"})
}
