package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/config"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/database"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const testJWTSecret = "handler-test-secret"

// newTestServer spins up the full engine against a throwaway sqlite file.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
		JWT: config.JWTConfig{
			Secret:      testJWTSecret,
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{BcryptCost: 4}, // keep tests fast
		App:      config.AppConfig{AuditPageSize: 50},
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return router.SetupRouter(cfg, db), db
}

type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if ct := w.Header().Get("Content-Type"); w.Body.Len() > 0 && bytes.Contains([]byte(ct), []byte("application/json")) {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}

	w, env := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}

	token, _ := env.Data["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in %v", email, env.Data)
	}
	return token
}

// addExpense inserts one entry through the API.
func addExpense(t *testing.T, r *gin.Engine, token, amount, category, kind, date string) {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/expense", token, gin.H{
		"amount":   json.Number(amount),
		"category": category,
		"type":     kind,
		"date":     date,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add expense %s %s: status %d body %s", category, amount, w.Code, w.Body.String())
	}
}

// items pulls data.items as a slice of objects.
func items(t *testing.T, env envelope) []map[string]interface{} {
	t.Helper()

	raw, ok := env.Data["items"].([]interface{})
	if !ok {
		t.Fatalf("no items in %v", env.Data)
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for i, it := range raw {
		m, ok := it.(map[string]interface{})
		if !ok {
			t.Fatalf("item %d is %T, want object", i, it)
		}
		out = append(out, m)
	}
	return out
}
