package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"contacts_backend/internal/app"
	"contacts_backend/internal/auth"
	"contacts_backend/internal/config"
	"contacts_backend/internal/storage"
	"contacts_backend/test/helpers/memstore"

	"golang.org/x/crypto/bcrypt"
)

// TestServer - реальный роутер поверх in-memory репозиториев
type TestServer struct {
	Server   *httptest.Server
	Users    *memstore.UserRepository
	Contacts *memstore.ContactRepository
	Mailer   *app.MockEmailProvider
	// StorageDir - временная папка, куда пишутся аватары
	StorageDir string
}

// Option меняет конфиг до сборки роутера
type Option func(cfg *config.Config)

// WithVerification включает подтверждение email
func WithVerification() Option {
	return func(cfg *config.Config) {
		cfg.Email.Enabled = true
	}
}

// WithUploadLimit ограничивает размер аватара maxSize байтами
func WithUploadLimit(maxSize int64) Option {
	return func(cfg *config.Config) {
		cfg.Upload.MaxSize = maxSize
	}
}

// NewTestServer создает тестовый сервер; он закрывается вместе с t.
func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Не удалось загрузить конфиг: %v", err)
	}
	cfg.Server.Env = "test"
	cfg.Server.BaseURL = "http://contacts.test"
	cfg.JWT.Secret = "my_super_secret_key_for_tests_12345"
	cfg.Email.Enabled = false
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = ""
	for _, opt := range opts {
		opt(cfg)
	}

	store, err := storage.NewLocalStorage(storage.Config{BasePath: cfg.Storage.BasePath})
	if err != nil {
		t.Fatalf("Не удалось создать хранилище: %v", err)
	}

	ts := &TestServer{
		Users:      memstore.NewUserRepository(),
		Contacts:   memstore.NewContactRepository(),
		Mailer:     &app.MockEmailProvider{},
		StorageDir: cfg.Storage.BasePath,
	}

	deps := app.Dependencies{
		UserRepo:       ts.Users,
		ContactRepo:    ts.Contacts,
		Storage:        store,
		AvatarDir:      filepath.Join(store.BasePath(), "avatars"),
		PasswordHasher: auth.NewBcryptHasher(bcrypt.MinCost),
	}
	if cfg.Email.Enabled {
		deps.Mailer = ts.Mailer
	}

	ts.Server = httptest.NewServer(app.BuildRouter(cfg, nil, deps))
	t.Cleanup(ts.Server.Close)
	return ts
}

// SendRequest отправляет JSON запрос; пустой token означает запрос без авторизации
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = bytes.NewBufferString(b)
		default:
			jsonBody, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
			}
			reqBody = bytes.NewBuffer(jsonBody)
		}
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// SendFile отправляет multipart запрос с одним файлом
func (ts *TestServer) SendFile(t *testing.T, method, path, token, field, filename, contentType string, data []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Ошибка создания multipart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("Ошибка записи multipart: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBodyBytes)
}
