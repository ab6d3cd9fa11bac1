package controllers

import (
	"net/http"
	"strconv"

	"kantin-backend/pkg/resp"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /api/menu
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Svc.List()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// GET /api/menu/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := ctl.Svc.Get(uint(id))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// GET /api/menu/kategori/:id
func (ctl *MenuController) ListByKategori(c *gin.Context) {
	kategoriID, _ := strconv.Atoi(c.Param("id"))
	menus, err := ctl.Svc.ListByKategori(uint(kategoriID))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// POST /api/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var in services.MenuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Svc.Create(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menu": menu})
}

// PUT /api/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.MenuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Svc.Update(uint(id), &in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menu": menu})
}

// DELETE /api/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu berhasil dihapus"})
}
