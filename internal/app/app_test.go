package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"contacts_backend/internal/config"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/storage"
	"contacts_backend/pkg/apperrors"
	"contacts_backend/test/helpers/memstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, env string) *gin.Engine {
	t.Helper()
	return newTestRouterWithUsers(t, env, memstore.NewUserRepository())
}

func newTestRouterWithUsers(t *testing.T, env string, users repositories.UserRepository) *gin.Engine {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	cfg.Server.Env = env
	cfg.JWT.Secret = "test-secret"
	cfg.Email.Enabled = false

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	return BuildRouter(cfg, nil, Dependencies{
		UserRepo:    users,
		ContactRepo: memstore.NewContactRepository(),
		Storage:     store,
	})
}

func serve(r *gin.Engine, method, path string) (int, map[string]interface{}) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(t, "test")
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	r.GET("/panic-validation", func(c *gin.Context) { panic("Validation error: bad input") })

	code, body := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "kaboom", body["message"])

	code, body = serve(r, http.MethodGet, "/panic-validation")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation error: bad input", body["message"])
}

// brokenLookupRepo fails FindByID once the flag is set, as a dropped connection would.
type brokenLookupRepo struct {
	*memstore.UserRepository
	broken bool
}

func (r *brokenLookupRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	if r.broken {
		return nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	}
	return r.UserRepository.FindByID(db, id)
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	creds, err := json.Marshal(map[string]string{"email": "store@example.com", "password": "secret"})
	require.NoError(t, err)

	for _, path := range []string{"/api/users/signup", "/api/users/login"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(creds))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Less(t, w.Code, 300, w.Body.String())
		if path == "/api/users/login" {
			var res struct {
				Data struct {
					Token string `json:"token"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.NotEmpty(t, res.Data.Token)
			return res.Data.Token
		}
	}
	return ""
}

func serveAuthorized(r *gin.Engine, method, path, token string) (int, map[string]interface{}) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestStoreFailure_ShowsErrorText(t *testing.T) {
	users := &brokenLookupRepo{UserRepository: memstore.NewUserRepository()}
	r := newTestRouterWithUsers(t, "development", users)
	token := loginToken(t, r)

	users.broken = true
	code, body := serveAuthorized(r, http.MethodGet, "/api/contacts", token)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "dial tcp 127.0.0.1:5432: connect: connection refused", body["message"])

	code, body = serveAuthorized(r, http.MethodGet, "/api/users/current", token)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body["message"], "connection refused")
}

func TestStoreFailure_LoggedOnce(t *testing.T) {
	users := &brokenLookupRepo{UserRepository: memstore.NewUserRepository()}
	r := newTestRouterWithUsers(t, "test", users)
	token := loginToken(t, r)

	var buf bytes.Buffer
	logger.InitWithWriter("test", &buf)
	t.Cleanup(func() { logger.Init("test") })

	users.broken = true
	code, _ := serveAuthorized(r, http.MethodGet, "/api/contacts", token)
	require.Equal(t, http.StatusInternalServerError, code)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `"msg":"Server error"`), out)
	assert.Equal(t, 1, strings.Count(out, "connection refused"), out)
}

func TestStoreFailure_HidesErrorTextInProduction(t *testing.T) {
	users := &brokenLookupRepo{UserRepository: memstore.NewUserRepository()}
	r := newTestRouterWithUsers(t, "production", users)
	t.Cleanup(func() {
		gin.SetMode(gin.TestMode)
		apperrors.SetDebug(true)
	})
	token := loginToken(t, r)

	users.broken = true
	code, body := serveAuthorized(r, http.MethodGet, "/api/contacts", token)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestRecovery_HidesDetailsInProduction(t *testing.T) {
	r := newTestRouter(t, "production")
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })

	code, body := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestRouter_Basics(t *testing.T) {
	r := newTestRouter(t, "test")

	code, body := serve(r, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, body = serve(r, http.MethodGet, "/does/not/exist")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not found", body["message"])

	code, _ = serve(r, http.MethodGet, "/api/contacts")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = serve(r, http.MethodOptions, "/api/contacts")
	assert.Equal(t, http.StatusNoContent, code)
}
