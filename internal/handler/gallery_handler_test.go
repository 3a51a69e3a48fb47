package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"
)

func mustCreatePhoto(t *testing.T, filename, storedName string, uid uint) model.Photo {
	t.Helper()
	p := model.Photo{
		Filename:   filename,
		StoredName: storedName,
		Size:       1024,
		UploadedAt: time.Now().Unix(),
		UserID:     uid,
	}
	if err := db.DB.Create(&p).Error; err != nil {
		t.Fatalf("创建照片失败: %v", err)
	}
	return p
}

// 测试内容：验证画廊展示全部照片及其上传者与点赞数。
func TestGallery_ListsPhotos(t *testing.T) {
	setupTest(t)
	alice := mustCreateUser(t, "alice", "pw1")
	bob := mustCreateUser(t, "bob", "pw2")
	p := mustCreatePhoto(t, "cat.png", "aaaa.png", alice.ID)
	mustCreatePhoto(t, "dog.png", "bbbb.png", bob.ID)
	if err := db.DB.Create(&model.Like{UserID: bob.ID, PhotoID: p.ID}).Error; err != nil {
		t.Fatalf("创建点赞失败: %v", err)
	}
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, alice))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"cat.png", "dog.png", "alice", "bob"} {
		if !strings.Contains(body, want) {
			t.Fatalf("页面缺少 %q", want)
		}
	}
}

// 测试内容：验证视频文件在画廊中以 video 标签渲染。
func TestGallery_RendersVideoTag(t *testing.T) {
	setupTest(t)
	alice := mustCreateUser(t, "alice", "pw1")
	mustCreatePhoto(t, "clip.mp4", "cccc.mp4", alice.ID)
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, alice))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<video") {
		t.Fatalf("期望视频以 video 标签渲染")
	}
}

// 测试内容：验证无会话访问画廊被重定向到登录页。
func TestGallery_RequiresSession(t *testing.T) {
	setupTest(t)
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("期望 302，实际为 %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("期望重定向 /login，实际为 %q", loc)
	}
}
