package web

import (
	"net/url"
	"photo-wall-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// 一次性提示消息：写入短时 Cookie，下一次页面渲染时取出并清除。
// 允许空字符串消息（注册冲突时的历史行为就是闪现一条空消息）。

const flashMaxAge = 60 // 秒，只需要存活到下一次页面加载

// SetFlash 写入一条提示消息。
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(consts.FlashCookieName, url.QueryEscape(message), flashMaxAge, "/", "", false, true)
}

// PopFlash 取出并清除提示消息。
// 返回值: (消息内容, 是否存在)。
func PopFlash(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(consts.FlashCookieName)
	if err != nil {
		return "", false
	}
	c.SetCookie(consts.FlashCookieName, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return "", false
	}
	return message, true
}
