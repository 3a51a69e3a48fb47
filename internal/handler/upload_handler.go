package handler

import (
	"net/http"
	"photo-wall-server/internal/consts"
	"photo-wall-server/internal/middleware"
	"photo-wall-server/internal/service"
	"photo-wall-server/internal/web"

	"github.com/gin-gonic/gin"
)

// Upload 处理批量上传，表单字段 files[] 可携带零或多个文件。
//
// 批次在第一个校验失败的文件处整体中止：
// 之前已保存的文件保留，之后的文件不再处理。
// 这是沿用的兼容行为，部分成功不会在响应中体现。
func Upload(c *gin.Context) {
	uid, ok := middleware.SessionUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		web.SetFlash(c, "请选择文件")
		c.Redirect(http.StatusFound, "/")
		return
	}

	files := form.File[consts.UploadFormField]
	if len(files) == 0 {
		web.SetFlash(c, "请选择文件")
		c.Redirect(http.StatusFound, "/")
		return
	}

	for _, file := range files {
		valid, ext, err := service.ValidateUploadFile(file)
		if !valid {
			// 中止整个批次
			web.SetFlash(c, err.Error())
			c.Redirect(http.StatusFound, "/")
			return
		}

		if _, err := service.SavePhoto(file, ext, uid); err != nil {
			c.String(http.StatusInternalServerError, "上传失败，请稍后重试")
			return
		}
	}

	c.Redirect(http.StatusFound, "/")
}
