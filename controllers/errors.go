package controllers

import (
	"errors"

	"kantin-backend/pkg/resp"
	"kantin-backend/services"

	"github.com/gin-gonic/gin"
)

// handleError memetakan error service ke status HTTP: validasi, konflik,
// dan referensi payload yang tidak ada -> 400; resource utama endpoint
// tidak ditemukan -> 404; sisanya -> 500 generik.
func handleError(c *gin.Context, err error) {
	var (
		ve services.ValidationError
		nf services.NotFoundError
		ce services.ConflictError
		br services.BadReferenceError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ce), errors.As(err, &br):
		resp.BadRequest(c, err.Error())
	case errors.As(err, &nf):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
