package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Signup регистрирует пользователя через API
func Signup(t *testing.T, ts *TestServer, email, password string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/signup", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+body)
}

// Login логинит пользователя и возвращает токен
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+body)

	var loginResponse struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse), "Не удалось распарсить JSON")
	require.NotEmpty(t, loginResponse.Data.Token, "Токен не должен быть пустым")
	return loginResponse.Data.Token
}

// LoginConcurrently запускает n логинов одновременно и возвращает все выданные токены.
// Горутины только шлют HTTP, проверки идут в горутине теста.
func LoginConcurrently(t *testing.T, ts *TestServer, email, password string, n int) []string {
	t.Helper()

	creds, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	tokens := make([]string, n)
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			tokens[i], errs[i] = postLogin(ts, creds)
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "логин #%d", i)
	}
	return tokens
}

func postLogin(ts *TestServer, creds []byte) (string, error) {
	res, err := ts.Server.Client().Post(ts.Server.URL+"/api/users/login", "application/json", bytes.NewReader(creds))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var loginResponse struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&loginResponse); err != nil {
		return "", err
	}
	if loginResponse.Data.Token == "" {
		return "", fmt.Errorf("empty token")
	}
	return loginResponse.Data.Token, nil
}

// SignupAndLogin создает пользователя и логинит его
func SignupAndLogin(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()
	Signup(t, ts, email, password)
	return Login(t, ts, email, password)
}

// CreateContact создает контакт и возвращает его id
func CreateContact(t *testing.T, ts *TestServer, token, name, email, phone string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/contacts", token, map[string]string{
		"name":  name,
		"email": email,
		"phone": phone,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание контакта. Ответ: "+body)

	var contact struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &contact))
	require.NotEmpty(t, contact.ID)
	return contact.ID
}
