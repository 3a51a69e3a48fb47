package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"photo-wall-server/internal/consts"
	"photo-wall-server/internal/db"
	"photo-wall-server/internal/middleware"
	"photo-wall-server/internal/model"
	"photo-wall-server/internal/testutils"
	"photo-wall-server/internal/utils"
	"photo-wall-server/internal/web"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutils.SetupConfig(t)
	return testutils.SetupDB(t)
}

// newTestRouter 注册与生产一致的业务路由，但不启用 CSRF 与限流，
// 这两者在 middleware 包中单独测试。
func newTestRouter() *gin.Engine {
	r := gin.New()
	web.LoadTemplates(r)

	sessionAuth := middleware.SessionAuth()
	r.GET("/", sessionAuth, Gallery)
	r.POST("/", sessionAuth, middleware.UploadBodyLimit(), Upload)
	r.GET("/display/:filename", Display)
	r.GET("/login", ShowLogin)
	r.POST("/login", Login)
	r.GET("/register", ShowRegister)
	r.POST("/register", Register)
	r.GET("/logout", Logout)
	r.GET("/like/:photo_id", sessionAuth, Like)
	r.POST("/like/:photo_id", sessionAuth, Like)
	r.POST("/dislike/:photo_id", sessionAuth, Dislike)
	r.POST("/delete/:photo_id", sessionAuth, Delete)
	return r
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

func sessionCookie(t *testing.T, u model.User) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken(u.ID, u.Username, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	return &http.Cookie{Name: consts.SessionCookieName, Value: token}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type uploadFile struct {
	name    string
	content []byte
}

// multipartUpload 构造携带若干文件的上传请求，文件顺序与切片一致。
func multipartUpload(t *testing.T, files []uploadFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile(consts.UploadFormField, f.name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(f.content); err != nil {
			t.Fatalf("写入分段失败: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
