package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"
	"photo-wall-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testutils.SetupConfig(t)
	return testutils.SetupDB(t)
}

func mustCreateUser(t *testing.T, username, password string) model.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := model.User{Username: username, Password: string(hashed)}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func mustCreatePhoto(t *testing.T, uid uint, filename, storedName string) model.Photo {
	t.Helper()
	p := model.Photo{Filename: filename, StoredName: storedName, Size: 1, UploadedAt: 1, UserID: uid}
	if err := db.DB.Create(&p).Error; err != nil {
		t.Fatalf("创建照片失败: %v", err)
	}
	return p
}

func mustFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("files[]", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入分段失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest("POST", "http://example/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File["files[]"]
	if len(fhs) != 1 {
		t.Fatalf("期望 1 file header，实际为 %d", len(fhs))
	}
	return fhs[0]
}
