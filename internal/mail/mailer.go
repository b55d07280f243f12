package mail

//go:generate mockgen -destination=../mocks/mock_mail_sender.go -package=mocks github.com/RafalauriSantos/totask-server/internal/mail Sender

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type Sender interface {
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer delivers password-reset links over SMTP.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("To", to)
	msg.SetHeader("From", m.Username)
	msg.SetHeader("Subject", "Redefinir Senha - To Task")
	msg.SetBody("text/html", resetBody(resetURL))

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

func resetBody(resetURL string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Redefinir Senha</h2>
	<p>Você solicitou a redefinição de senha para sua conta no To Task.</p>
	<p>Clique no link abaixo para redefinir sua senha:</p>
	<a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #3b82f6; color: white; text-decoration: none; border-radius: 6px; margin: 16px 0;">Redefinir Senha</a>
	<p>Este link expira em 1 hora.</p>
	<p>Se você não solicitou esta redefinição, ignore este email.</p>
</div>`, resetURL)
}

// LogMailer is the development fallback used when SMTP credentials are not
// configured: the reset link shows up in the server log instead.
type LogMailer struct {
	Log *slog.Logger
}

func (m *LogMailer) SendPasswordReset(to, resetURL string) error {
	m.Log.Info("password reset link (dev mode)",
		slog.String("to", to),
		slog.String("link", resetURL),
	)

	return nil
}
