package middleware

import "github.com/gin-gonic/gin"

// StaticCache 为上传的静态资源添加 Cache-Control 头。
// 存储名基于 uuid 从不复用，可以放心长缓存。
func StaticCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Next()
	}
}
