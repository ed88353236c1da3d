package email

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVerification(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.RenderVerification("http://localhost:3000/", "a@example.com", "tok-123")
	require.NoError(t, err)
	assert.Contains(t, html, `href="http://localhost:3000/api/users/verify/tok-123"`)
	assert.Contains(t, html, "a@example.com")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := NewTemplateManager().Render("nope", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	_, err := NewSMTPProvider(&SMTPConfig{Port: 587, FromEmail: "noreply@example.com"})
	assert.Error(t, err)

	_, err = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 0, FromEmail: "noreply@example.com"})
	assert.Error(t, err)

	_, err = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587})
	assert.Error(t, err)

	p, err := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com", FromName: "Contacts"})
	require.NoError(t, err)

	msg := p.buildMessage("a@example.com", "Hi", "<p>x</p>")
	assert.Equal(t, []string{"a@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hi"}, msg.GetHeader("Subject"))
}

func TestSMTPProvider_SendTimesOut(t *testing.T) {
	// Сервер принимает соединение и молчит, greeting так и не приходит
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	var conns []net.Conn
	var mu sync.Mutex
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})

	addr := ln.Addr().(*net.TCPAddr)
	p, err := NewSMTPProvider(&SMTPConfig{
		Host:      "127.0.0.1",
		Port:      addr.Port,
		FromEmail: "noreply@example.com",
		Timeout:   100 * time.Millisecond,
	})
	require.NoError(t, err)

	start := time.Now()
	err = p.Send("a@example.com", "Hi", "<p>x</p>")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSMTPConfig_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, (&SMTPConfig{}).sendTimeout())
	assert.Equal(t, time.Second, (&SMTPConfig{Timeout: time.Second}).sendTimeout())
}

type recordingProvider struct {
	mu   sync.Mutex
	sent []string
	err  error
	done chan struct{}
}

func (r *recordingProvider) Send(to, subject, html string) error {
	r.mu.Lock()
	r.sent = append(r.sent, to)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func TestAsyncProvider_DoesNotReturnDeliveryErrors(t *testing.T) {
	next := &recordingProvider{err: errors.New("smtp down"), done: make(chan struct{}, 1)}
	p := NewAsyncProvider(next)

	require.NoError(t, p.Send("a@example.com", "s", "<p/>"))

	select {
	case <-next.done:
	case <-time.After(2 * time.Second):
		t.Fatal("message was never handed to the provider")
	}

	next.mu.Lock()
	defer next.mu.Unlock()
	assert.Equal(t, []string{"a@example.com"}, next.sent)
}
