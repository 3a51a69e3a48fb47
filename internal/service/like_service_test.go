package service

import (
	"testing"

	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"
)

// 测试内容：验证重复点赞同一 (用户, 照片) 只产生一条记录。
func TestLikePhoto_Idempotent(t *testing.T) {
	setupTestDB(t)
	alice := mustCreateUser(t, "alice", "pw1")
	p := mustCreatePhoto(t, alice.ID, "cat.png", "s1.png")

	if err := LikePhoto(alice.ID, p.ID); err != nil {
		t.Fatalf("第一次 LikePhoto: %v", err)
	}
	if err := LikePhoto(alice.ID, p.ID); err != nil {
		t.Fatalf("第二次 LikePhoto: %v", err)
	}

	var count int64
	_ = db.DB.Model(&model.Like{}).Where("user_id = ? AND photo_id = ?", alice.ID, p.ID).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望恰好 1 条点赞记录，实际为 %d", count)
	}
}

// 测试内容：验证取消不存在的点赞是无错误的空操作。
func TestDislikePhoto_NoopWhenAbsent(t *testing.T) {
	setupTestDB(t)
	alice := mustCreateUser(t, "alice", "pw1")
	p := mustCreatePhoto(t, alice.ID, "cat.png", "s1.png")

	if err := DislikePhoto(alice.ID, p.ID); err != nil {
		t.Fatalf("期望空操作无错误: %v", err)
	}

	var count int64
	_ = db.DB.Model(&model.Like{}).Count(&count).Error
	if count != 0 {
		t.Fatalf("期望 0 条点赞记录，实际为 %d", count)
	}
}

// 测试内容：验证点赞后取消点赞，计数回到 0。
func TestLikeDislike_CountRoundTrip(t *testing.T) {
	setupTestDB(t)
	alice := mustCreateUser(t, "alice", "pw1")
	p := mustCreatePhoto(t, alice.ID, "cat.png", "s1.png")

	if err := LikePhoto(alice.ID, p.ID); err != nil {
		t.Fatalf("LikePhoto: %v", err)
	}
	count, err := CountLikes(p.ID)
	if err != nil || count != 1 {
		t.Fatalf("期望点赞数 1，实际为 %d err=%v", count, err)
	}

	if err := DislikePhoto(alice.ID, p.ID); err != nil {
		t.Fatalf("DislikePhoto: %v", err)
	}
	count, err = CountLikes(p.ID)
	if err != nil || count != 0 {
		t.Fatalf("期望点赞数 0，实际为 %d err=%v", count, err)
	}
}

// 测试内容：验证 HasLiked 的真假两种情况。
func TestHasLiked(t *testing.T) {
	setupTestDB(t)
	alice := mustCreateUser(t, "alice", "pw1")
	p := mustCreatePhoto(t, alice.ID, "cat.png", "s1.png")

	liked, err := HasLiked(alice.ID, p.ID)
	if err != nil || liked {
		t.Fatalf("期望未点赞，实际为 liked=%v err=%v", liked, err)
	}

	_ = LikePhoto(alice.ID, p.ID)
	liked, err = HasLiked(alice.ID, p.ID)
	if err != nil || !liked {
		t.Fatalf("期望已点赞，实际为 liked=%v err=%v", liked, err)
	}
}
