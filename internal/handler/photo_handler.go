package handler

import (
	"errors"
	"net/http"
	"photo-wall-server/internal/config"
	"photo-wall-server/internal/middleware"
	"photo-wall-server/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Display 无条件 301 到静态服务路径，不检查文件是否存在。
// 文件缺失时由静态文件服务返回 404。
func Display(c *gin.Context) {
	filename := c.Param("filename")
	c.Redirect(http.StatusMovedPermanently, config.Get().Upload.URLPrefix+filename)
}

// Like 为当前用户点赞指定照片，重复点赞为空操作。
func Like(c *gin.Context) {
	uid, ok := middleware.SessionUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	photoID, ok := parsePhotoID(c)
	if ok {
		if err := service.LikePhoto(uid, photoID); err != nil {
			c.String(http.StatusInternalServerError, "操作失败，请稍后重试")
			return
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// Dislike 取消当前用户对指定照片的点赞，未点赞时为空操作。
func Dislike(c *gin.Context) {
	uid, ok := middleware.SessionUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	photoID, ok := parsePhotoID(c)
	if ok {
		if err := service.DislikePhoto(uid, photoID); err != nil {
			c.String(http.StatusInternalServerError, "操作失败，请稍后重试")
			return
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete 删除照片，仅上传者可删；照片不存在或无权限时静默跳转。
func Delete(c *gin.Context) {
	uid, ok := middleware.SessionUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	photoID, ok := parsePhotoID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	photo, err := service.GetPhotoByID(photoID)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.String(http.StatusInternalServerError, "操作失败，请稍后重试")
		return
	}

	if err := service.DeletePhoto(photo, uid); err != nil {
		if errors.Is(err, service.ErrNotPhotoOwner) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.String(http.StatusInternalServerError, "删除失败，请稍后重试")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func parsePhotoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("photo_id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
