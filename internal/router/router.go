package router

import (
	"photo-wall-server/internal/handler"
	"photo-wall-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 注册全部路由。
func InitRouter(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	// CSRF 按路由挂载而非全局：上传路由的体积上限必须先于
	// 一切表单解析生效，而 CSRF 校验本身就要读表单字段
	csrf := middleware.CSRFProtect()

	// 认证限流：登录与注册共用同一个实例，保持行为一致
	authLimiter := middleware.AuthRateLimit()

	sessionAuth := middleware.SessionAuth()

	// 画廊与上传
	r.GET("/", csrf, sessionAuth, handler.Gallery)
	r.POST("/", middleware.UploadBodyLimit(), csrf, sessionAuth, handler.Upload)

	// 静态资源跳转，无需登录
	r.GET("/display/:filename", csrf, handler.Display)

	// 认证
	r.GET("/login", csrf, handler.ShowLogin)
	r.POST("/login", csrf, authLimiter, handler.Login)
	r.GET("/register", csrf, handler.ShowRegister)
	r.POST("/register", csrf, authLimiter, handler.Register)
	r.GET("/logout", csrf, handler.Logout)

	// 点赞与删除
	// /like 的 GET 注册沿用历史入口，状态变更仍建议走 POST
	r.GET("/like/:photo_id", csrf, sessionAuth, handler.Like)
	r.POST("/like/:photo_id", csrf, sessionAuth, handler.Like)
	r.POST("/dislike/:photo_id", csrf, sessionAuth, handler.Dislike)
	r.POST("/delete/:photo_id", csrf, sessionAuth, handler.Delete)
}
