package resp

import (
	"net/http"

	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Err maps a service error onto the matching JSON error response.
func Err(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		NotFound(c, err.Error())
	case apperr.BadRequest:
		BadRequest(c, err.Error())
	case apperr.Forbidden:
		Forbidden(c, err.Error())
	case apperr.Conflict:
		Conflict(c, err.Error())
	default:
		ServerError(c, err)
	}
}
