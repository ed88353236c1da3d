package email

import (
	"contacts_backend/internal/logger"
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет HTML письмо одному получателю
	Send(to, subject, html string) error
}

// AsyncProvider отправляет каждое письмо в горутине. Ошибки логируются, но не возвращаются.
type AsyncProvider struct {
	next Provider
}

func NewAsyncProvider(next Provider) *AsyncProvider {
	return &AsyncProvider{next: next}
}

func (p *AsyncProvider) Send(to, subject, html string) error {
	go func() {
		if err := p.next.Send(to, subject, html); err != nil {
			logger.Error("Failed to send email", "to", to, "subject", subject, "error", err)
			return
		}
		logger.Debug("Email sent", "to", to, "subject", subject)
	}()
	return nil
}
