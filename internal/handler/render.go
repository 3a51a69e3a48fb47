package handler

import (
	"photo-wall-server/internal/middleware"
	"photo-wall-server/internal/web"

	"github.com/gin-gonic/gin"
)

// pageData 组装模板公共字段：CSRF Token 与一次性提示消息。
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"CSRFToken": middleware.EnsureCSRFToken(c),
		"HasFlash":  false,
		"Flash":     "",
	}

	if msg, ok := web.PopFlash(c); ok {
		data["HasFlash"] = true
		data["Flash"] = msg
	}

	for k, v := range extra {
		data[k] = v
	}
	return data
}
