package email

import "time"

// DefaultTimeout используется, когда Timeout не задан
const DefaultTimeout = 30 * time.Second

// SMTPConfig - параметры SMTP сервера для писем подтверждения
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// Timeout ограничивает одну отправку целиком
	Timeout   time.Duration
}

func (c *SMTPConfig) sendTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
