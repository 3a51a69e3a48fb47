package handler

import (
	"errors"
	"net/http"
	"photo-wall-server/internal/config"
	"photo-wall-server/internal/consts"
	"photo-wall-server/internal/service"
	"photo-wall-server/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// ShowLogin 渲染登录表单。
func ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, nil))
}

// Login 校验用户名密码，成功后签发会话 Cookie 并跳转画廊。
// 失败时重新渲染登录表单，不提示具体原因。
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := service.AuthenticateUser(username, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", pageData(c, nil))
		return
	}

	cfg := config.Get()
	hours := cfg.Session.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	duration := time.Hour * time.Duration(hours)

	token, err := utils.GenerateSessionToken(user.ID, user.Username, duration)
	if err != nil {
		c.String(http.StatusInternalServerError, "登录失败，请稍后重试")
		return
	}

	c.SetCookie(consts.SessionCookieName, token, int(duration.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// ShowRegister 渲染注册表单。
func ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, nil))
}

// Register 创建新用户并停留在注册页（不自动登录）。
// 用户名已存在时闪现一条空消息，沿用历史行为。
func Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	msg, err := service.RegisterUser(username, password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{
				"HasFlash": true,
				"Flash":    "",
			}))
			return
		}
		c.String(http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}
	if msg != "" {
		c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{
			"HasFlash": true,
			"Flash":    msg,
		}))
		return
	}

	c.HTML(http.StatusOK, "register.html", pageData(c, nil))
}

// Logout 无条件清除会话并跳转画廊（画廊会再跳转到登录页）。
func Logout(c *gin.Context) {
	c.SetCookie(consts.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
