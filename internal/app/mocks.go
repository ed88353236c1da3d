package app

import "sync"

// MockEmailProvider используется для тестов и локальной разработки.
// Письма не отправляются, а сохраняются.
type MockEmailProvider struct {
	mu   sync.Mutex
	sent []SentEmail
}

type SentEmail struct {
	To      string
	Subject string
	HTML    string
}

func (m *MockEmailProvider) Send(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, HTML: html})
	return nil
}

// Sent возвращает копию сохраненных писем
func (m *MockEmailProvider) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

// Last возвращает последнее письмо, если оно есть
func (m *MockEmailProvider) Last() (SentEmail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return SentEmail{}, false
	}
	return m.sent[len(m.sent)-1], true
}
