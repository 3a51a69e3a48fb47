package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"photo-wall-server/internal/config"
	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"
	"photo-wall-server/internal/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPhotoNotFound 照片不存在
var ErrPhotoNotFound = errors.New("照片不存在")

// ErrNotPhotoOwner 非上传者本人
var ErrNotPhotoOwner = errors.New("只有上传者才能删除照片")

// ValidateUploadFile 校验上传文件的扩展名与大小。
// 返回:
//   - bool: 是否合法
//   - string: 文件扩展名 (小写, 如 .jpg)
//   - error: 拒绝原因
func ValidateUploadFile(file *multipart.FileHeader) (bool, string, error) {
	cfg := config.Get()

	maxSizeMB := cfg.Upload.MaxUploadSizeMB
	if maxSizeMB > 0 && file.Size > int64(maxSizeMB)*1024*1024 {
		return false, "", fmt.Errorf("文件大小不能超过 %dMB", maxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return false, "", errors.New("无法识别文件类型")
	}

	if !cfg.Upload.AllowedExtensionSet()[ext] {
		return false, ext, fmt.Errorf("不支持的文件类型: %s", ext)
	}

	return true, ext, nil
}

// SavePhoto 保存单个上传文件并建立照片记录。
// 文件写入在前，数据库插入失败时删除已写入的文件回滚。
func SavePhoto(file *multipart.FileHeader, ext string, uid uint) (*model.Photo, error) {
	cfg := config.Get()
	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/photos"
	}

	if err := os.MkdirAll(uploadRoot, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, errors.New("系统错误: 无法创建存储目录")
	}

	// 落盘文件名由 uuid 生成，用户提交的名字只做展示，
	// 同名并发上传不会互相覆盖
	storedName := uuid.New().String() + ext
	dst, err := utils.SecureJoin(uploadRoot, storedName)
	if err != nil {
		log.Printf("SecureJoin error: %v\n", err)
		return nil, errors.New("系统错误: 非法存储路径")
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.New("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		log.Printf("File create error: %v\n", err)
		return nil, errors.New("系统错误: 无法创建文件")
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		log.Printf("File save error: %v\n", err)
		return nil, errors.New("文件保存失败")
	}

	photo := model.Photo{
		Filename:   utils.SanitizeFilename(file.Filename),
		StoredName: storedName,
		Size:       file.Size,
		UploadedAt: time.Now().Unix(),
		UserID:     uid,
	}

	if err := db.DB.Create(&photo).Error; err != nil {
		_ = os.Remove(dst) // 回滚文件
		log.Printf("Save photo DB error: %v\n", err)
		return nil, errors.New("系统错误: 数据库记录失败")
	}

	return &photo, nil
}

// GalleryPhoto 画廊列表中的一项
type GalleryPhoto struct {
	model.Photo
	Uploader  string `json:"uploader"`
	LikeCount int64  `json:"like_count"`
	LikedByMe bool   `json:"liked_by_me"`
}

// ListGallery 列出全部照片（无分页），附带上传者与点赞信息。
// 点赞数用一条分组聚合查出，不逐照片查询。
func ListGallery(viewerID uint) ([]GalleryPhoto, error) {
	var photos []model.Photo
	if err := db.DB.Preload("User").Order("uploaded_at desc, id desc").Find(&photos).Error; err != nil {
		log.Printf("List gallery error: %v\n", err)
		return nil, errors.New("获取照片列表失败")
	}

	var likedIDs []uint
	if err := db.DB.Model(&model.Like{}).Where("user_id = ?", viewerID).
		Pluck("photo_id", &likedIDs).Error; err != nil {
		log.Printf("List liked error: %v\n", err)
		return nil, errors.New("获取点赞信息失败")
	}
	likedSet := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}

	type likeCountRow struct {
		PhotoID uint
		Count   int64
	}
	var countRows []likeCountRow
	if err := db.DB.Model(&model.Like{}).
		Select("photo_id, count(*) as count").
		Group("photo_id").
		Scan(&countRows).Error; err != nil {
		log.Printf("Count likes error: %v\n", err)
		return nil, errors.New("获取点赞信息失败")
	}
	countByPhoto := make(map[uint]int64, len(countRows))
	for _, row := range countRows {
		countByPhoto[row.PhotoID] = row.Count
	}

	list := make([]GalleryPhoto, 0, len(photos))
	for _, p := range photos {
		list = append(list, GalleryPhoto{
			Photo:     p,
			Uploader:  p.User.Username,
			LikeCount: countByPhoto[p.ID],
			LikedByMe: likedSet[p.ID],
		})
	}
	return list, nil
}

// GetPhotoByID 按 ID 查找照片，不存在时返回 ErrPhotoNotFound。
func GetPhotoByID(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := db.DB.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		log.Printf("Get photo error: %v\n", err)
		return nil, errors.New("系统错误: 查询照片失败")
	}
	return &photo, nil
}

// DeletePhoto 删除照片：校验归属，删除物理文件，
// 然后在同一事务中清理点赞记录与照片记录。
func DeletePhoto(photo *model.Photo, uid uint) error {
	if photo.UserID != uid {
		return ErrNotPhotoOwner
	}

	cfg := config.Get()
	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/photos"
	}

	if path, err := utils.SecureJoin(uploadRoot, photo.StoredName); err == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			// 文件删除失败不阻塞记录清理，留给运维处理孤儿文件
			log.Printf("Remove photo file error: %v, path: %s\n", err, path)
		}
	} else {
		log.Printf("SecureJoin error on delete: %v\n", err)
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// 显式级联删除点赞，外键约束只是兜底
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Photo{}, photo.ID).Error
	})
	if err != nil {
		log.Printf("Delete photo DB error: %v\n", err)
		return errors.New("系统错误: 删除照片失败")
	}

	invalidateLikeCount(photo.ID)
	return nil
}
