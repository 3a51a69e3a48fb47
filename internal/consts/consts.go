package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "Photo Wall Server"

	// ApplicationVersion 后端版本号
	ApplicationVersion = "1.2.0"

	// SessionCookieName 会话 Cookie 名称
	SessionCookieName = "photo_wall_session"

	// CSRFCookieName CSRF Token Cookie 名称
	CSRFCookieName = "photo_wall_csrf"

	// CSRFFormField 表单中携带 CSRF Token 的字段名
	CSRFFormField = "csrf_token"

	// FlashCookieName 一次性提示消息 Cookie 名称
	FlashCookieName = "photo_wall_flash"

	// UploadFormField 上传表单的文件字段名
	UploadFormField = "files[]"
)
