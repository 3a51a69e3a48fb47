package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"photo-wall-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// CSRFProtect 基于双提交 Cookie 的 CSRF 防护。
//
// 安全方法只负责下发 Token Cookie；
// 状态变更方法要求表单字段与 Cookie 中的 Token 一致。
// Token Cookie 不设 HttpOnly 以外的限制，页面渲染时将其写入表单隐藏字段。
func CSRFProtect() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if _, err := c.Cookie(consts.CSRFCookieName); err != nil {
				c.SetCookie(consts.CSRFCookieName, newCSRFToken(), 0, "/", "", false, false)
			}
			c.Next()
			return
		}

		cookieToken, err := c.Cookie(consts.CSRFCookieName)
		if err != nil || cookieToken == "" {
			c.String(http.StatusForbidden, "CSRF 校验失败")
			c.Abort()
			return
		}

		formToken := c.PostForm(consts.CSRFFormField)
		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(formToken)) != 1 {
			c.String(http.StatusForbidden, "CSRF 校验失败")
			c.Abort()
			return
		}

		c.Next()
	}
}

// EnsureCSRFToken 确保响应携带 Token Cookie，返回当前 Token 供模板渲染。
func EnsureCSRFToken(c *gin.Context) string {
	if token, err := c.Cookie(consts.CSRFCookieName); err == nil && token != "" {
		return token
	}
	token := newCSRFToken()
	c.SetCookie(consts.CSRFCookieName, token, 0, "/", "", false, false)
	return token
}

func newCSRFToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
