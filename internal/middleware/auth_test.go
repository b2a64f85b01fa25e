package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	account := &models.Account{Base: models.Base{ID: 42}, Username: "alice", Role: models.RoleAdmin}

	token, err := issuer.Issue(account)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if claims.Subject != "42" || claims.Username != "alice" || claims.Role != models.RoleAdmin {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestTokenIssuerRejects(t *testing.T) {
	account := &models.Account{Base: models.Base{ID: 1}, Username: "bob", Role: models.RoleUser}
	issuer := NewTokenIssuer("secret", time.Hour)

	expired := NewTokenIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _ := expired.Issue(account)
	foreign, _ := NewTokenIssuer("other", time.Hour).Issue(account)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", stale},
		{"wrong_key", foreign},
		{"garbage", "abc.def.ghi"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.Parse(tt.token); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := NewTokenIssuer("secret", time.Hour)

	r := gin.New()
	r.GET("/admin", AuthMiddleware(issuer), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account": AccountID(c)})
	})

	tests := []struct {
		name string
		role models.Role
		want int
	}{
		{"admin", models.RoleAdmin, http.StatusOK},
		{"user", models.RoleUser, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := issuer.Issue(&models.Account{Base: models.Base{ID: 7}, Username: "x", Role: tt.role})
			if err != nil {
				t.Fatal(err)
			}
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}
