package utils

import "github.com/gin-gonic/gin"

// CurrentUserID อ่าน user id ที่ AuthMiddleware ใส่ไว้; 0 = ไม่ได้ล็อกอิน
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
