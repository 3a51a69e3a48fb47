package middleware

import (
	"testing"

	"photo-wall-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutils.SetupConfig(t)
}
