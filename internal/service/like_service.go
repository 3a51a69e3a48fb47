package service

import (
	"context"
	"errors"
	"log"
	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"
	"strconv"
	"time"
)

const likeCountCacheTTL = 5 * time.Minute

// LikePhoto 为 (用户, 照片) 创建点赞记录，已点赞时为幂等空操作。
// 照片不存在时同样按空操作处理，不向调用方报错。
func LikePhoto(uid, photoID uint) error {
	var photoCount int64
	if err := db.DB.Model(&model.Photo{}).Where("id = ?", photoID).Count(&photoCount).Error; err != nil {
		log.Printf("Like photo lookup error (photo=%d): %v\n", photoID, err)
		return errors.New("系统错误: 点赞失败")
	}
	if photoCount == 0 {
		return nil
	}

	var existing model.Like
	err := db.DB.Where("user_id = ? AND photo_id = ?", uid, photoID).First(&existing).Error
	if err == nil {
		return nil
	}

	like := model.Like{UserID: uid, PhotoID: photoID}
	if err := db.DB.Create(&like).Error; err != nil {
		// 并发重复点赞触发唯一索引、或照片已删除触发外键，都视为空操作
		log.Printf("Like create error (uid=%d photo=%d): %v\n", uid, photoID, err)
		return nil
	}

	invalidateLikeCount(photoID)
	return nil
}

// DislikePhoto 删除 (用户, 照片) 的点赞记录，不存在时为幂等空操作。
func DislikePhoto(uid, photoID uint) error {
	result := db.DB.Where("user_id = ? AND photo_id = ?", uid, photoID).Delete(&model.Like{})
	if result.Error != nil {
		log.Printf("Dislike delete error (uid=%d photo=%d): %v\n", uid, photoID, result.Error)
		return errors.New("系统错误: 取消点赞失败")
	}

	if result.RowsAffected > 0 {
		invalidateLikeCount(photoID)
	}
	return nil
}

// CountLikes 统计照片的点赞数，启用 Redis 时优先读缓存。
// Redis 不可用时静默降级为直查数据库。
func CountLikes(photoID uint) (int64, error) {
	key := likeCountKey(photoID)

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if cached, err := redisClient.Get(ctx, key).Result(); err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		}
	}

	var count int64
	if err := db.DB.Model(&model.Like{}).Where("photo_id = ?", photoID).Count(&count).Error; err != nil {
		log.Printf("Count likes error (photo=%d): %v\n", photoID, err)
		return 0, errors.New("系统错误: 统计点赞失败")
	}

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Set(ctx, key, strconv.FormatInt(count, 10), likeCountCacheTTL).Err()
	}

	return count, nil
}

// HasLiked 查询用户是否已点赞某照片。
func HasLiked(uid, photoID uint) (bool, error) {
	var count int64
	if err := db.DB.Model(&model.Like{}).
		Where("user_id = ? AND photo_id = ?", uid, photoID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func likeCountKey(photoID uint) string {
	return RedisKey("likes", strconv.FormatUint(uint64(photoID), 10))
}

// invalidateLikeCount 点赞状态变化后清除计数缓存。
func invalidateLikeCount(photoID uint) {
	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, likeCountKey(photoID)).Err()
	}
}
