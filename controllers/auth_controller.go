package controllers

import (
	"net/http"

	"kantin-backend/pkg/resp"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /api/register
func (ctl *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Svc.Register(&in)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registrasi berhasil",
		"user":    user,
	})
}

// POST /api/login
func (ctl *AuthController) Login(c *gin.Context) {
	var in services.LoginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, role, err := ctl.Svc.Login(&in)
	if err != nil {
		handleError(c, err)
		return
	}

	roleName := ""
	if role != nil {
		roleName = role.RoleName
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"user_id":      user.ID,
			"nama_lengkap": user.NamaLengkap,
			"email":        user.Email,
			"role_name":    roleName,
		},
	})
}
