package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"photo-wall-server/internal/config"

	"github.com/gin-gonic/gin"
)

// 与 gin 的 MaxMultipartMemory 默认值一致
const multipartMemory = 32 << 20

// UploadBodyLimit 限制上传请求体大小，上限来自配置。
//
// 必须注册在任何读取表单的中间件之前（包括 CSRF 校验），
// 表单解析在这里受限完成，后续取表单只会命中缓存。
func UploadBodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxUploadSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 1000
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.String(http.StatusRequestEntityTooLarge, fmt.Sprintf("上传大小不能超过 %dMB", maxSizeMB))
			c.Abort()
			return
		}

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		// 分块传输没有 Content-Length，只有在受限读取下解析
		// 才能把超限请求体转换成 413 而不是吞掉整个 body
		if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.String(http.StatusRequestEntityTooLarge, fmt.Sprintf("上传大小不能超过 %dMB", maxSizeMB))
				c.Abort()
				return
			}
			// 非 multipart 或格式问题交给后续流程处理
		}

		c.Next()
	}
}
