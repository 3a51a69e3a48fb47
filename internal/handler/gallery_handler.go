package handler

import (
	"net/http"
	"path/filepath"
	"photo-wall-server/internal/config"
	"photo-wall-server/internal/middleware"
	"photo-wall-server/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type galleryItem struct {
	ID         uint
	Filename   string
	StoredName string
	Uploader   string
	LikeCount  int64
	LikedByMe  bool
	Mine       bool
	IsVideo    bool
}

// Gallery 渲染画廊：全部照片、上传者、点赞信息（无分页）。
func Gallery(c *gin.Context) {
	uid, ok := middleware.SessionUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	photos, err := service.ListGallery(uid)
	if err != nil {
		c.String(http.StatusInternalServerError, "获取照片列表失败")
		return
	}

	items := make([]galleryItem, 0, len(photos))
	for _, p := range photos {
		items = append(items, galleryItem{
			ID:         p.ID,
			Filename:   p.Filename,
			StoredName: p.StoredName,
			Uploader:   p.Uploader,
			LikeCount:  p.LikeCount,
			LikedByMe:  p.LikedByMe,
			Mine:       p.UserID == uid,
			IsVideo:    strings.EqualFold(filepath.Ext(p.StoredName), ".mp4"),
		})
	}

	c.HTML(http.StatusOK, "gallery.html", pageData(c, gin.H{
		"Username":  c.GetString("username"),
		"Photos":    items,
		"URLPrefix": config.Get().Upload.URLPrefix,
	}))
}
