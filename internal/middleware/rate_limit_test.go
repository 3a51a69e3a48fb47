package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"photo-wall-server/internal/config"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证超过突发额度后请求被限流。
func TestAuthRateLimit_BlocksAfterBurst(t *testing.T) {
	setupTest(t)

	cfg := config.Get()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, AuthRPS: 1, AuthBurst: 2}
	config.SetForTest(cfg)

	r := gin.New()
	r.POST("/login", AuthRateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	var lastCode int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		lastCode = w.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Fatalf("期望 429，实际为 %d", lastCode)
	}
}

// 测试内容：验证限流关闭时请求不受限制。
func TestAuthRateLimit_DisabledPassesThrough(t *testing.T) {
	setupTest(t)

	cfg := config.Get()
	cfg.RateLimit = config.RateLimitConfig{Enabled: false}
	config.SetForTest(cfg)

	r := gin.New()
	r.POST("/login", AuthRateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("期望 200，实际为 %d", w.Code)
		}
	}
}
