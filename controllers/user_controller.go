package controllers

import (
	"net/http"
	"strconv"

	"kantin-backend/pkg/resp"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc     *services.UserService
	RoleSvc *services.RoleService
}

func NewUserController(svc *services.UserService, roleSvc *services.RoleService) *UserController {
	return &UserController{Svc: svc, RoleSvc: roleSvc}
}

// GET /api/users
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Svc.List()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /api/users/:id
func (ctl *UserController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	user, err := ctl.Svc.Get(uint(id))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PUT /api/users/:id
func (ctl *UserController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.UserUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.Svc.Update(uint(id), &in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// DELETE /api/users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User berhasil dihapus"})
}

// GET /api/roles
func (ctl *UserController) Roles(c *gin.Context) {
	roles, err := ctl.RoleSvc.List()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}
