package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplateVerification = "verification"

	VerificationSubject = "Verify your email"
)

const verificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <p>Hello, {{.Email}}!</p>
  <p>Please confirm your email address to finish signing up.</p>
  <p><a target="_blank" href="{{.Link}}">Click to verify your email</a></p>
</body>
</html>`

// VerificationData - данные письма подтверждения
type VerificationData struct {
	Email string
	Link  string
}

// TemplateManager хранит разобранные html шаблоны писем
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер со встроенными шаблонами
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	// встроенный шаблон - константа, ошибка парсинга - баг в коде
	if err := tm.AddTemplate(TemplateVerification, verificationTemplate); err != nil {
		panic(err)
	}
	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data interface{}) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// VerificationLink строит публичную ссылку подтверждения
func VerificationLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/api/users/verify/" + token
}

// RenderVerification рендерит тело письма подтверждения для address
func (tm *TemplateManager) RenderVerification(baseURL, address, token string) (string, error) {
	return tm.Render(TemplateVerification, VerificationData{
		Email: address,
		Link:  VerificationLink(baseURL, token),
	})
}
