package middleware

import (
	"net/http"
	"photo-wall-server/internal/consts"
	"photo-wall-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuth 校验会话 Cookie。
// 未登录或会话失效时重定向到登录页，而不是返回 401，
// 这是一个表单页面应用而非 JSON API。
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(token)
		if err != nil {
			// 过期或被篡改的会话一律清除后重新登录
			c.SetCookie(consts.SessionCookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// SessionUserID 从上下文取出当前登录用户 ID。
func SessionUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("id")
	if !exists {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok
}
