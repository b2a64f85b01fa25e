package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"bizdesk/internal/handlers"
	"bizdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestJWTSecret signs the tokens issued by NewCollaborator.
const TestJWTSecret = "test-secret"

// NewCollaborator serves the collaborator router over db. The server is
// closed when the test ends.
func NewCollaborator(t *testing.T, db *gorm.DB) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	tokens := middleware.NewTokenIssuer(TestJWTSecret, time.Hour)
	srv := httptest.NewServer(handlers.NewRouter(db, tokens))
	t.Cleanup(srv.Close)
	return srv
}
