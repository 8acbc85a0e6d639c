// Package mailer implementa la entrega de códigos OTP por correo SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Consola-api/internal/application/auth"
	"github.com/jhoicas/Consola-api/pkg/config"
)

var _ auth.Mailer = (*GomailMailer)(nil)

const otpTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .otp-code { font-size: 24px; font-weight: bold; color: #3498db; margin: 20px 0; text-align: center; letter-spacing: 6px; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Tu código de acceso</h2>
    </div>

    <div class="content">
        <p>Hola,</p>
        <p>Este es tu código de un solo uso:</p>

        <div class="otp-code">{{.Code}}</div>

        <p>El código expira en {{.ExpiryMinutes}} minutos. No lo compartas con nadie.</p>
    </div>

    <div class="footer">
        <p>Si no solicitaste este código, puedes ignorar este correo.</p>
        <p>© {{.Year}} {{.AppName}}</p>
    </div>
</body>
</html>`

// GomailMailer envía los códigos OTP por SMTP usando gomail.
type GomailMailer struct {
	cfg     config.SMTPConfig
	appName string
	tmpl    *template.Template
}

// NewGomailMailer construye el mailer. El template se parsea una sola vez.
func NewGomailMailer(cfg config.SMTPConfig, appName string) (*GomailMailer, error) {
	tmpl, err := template.New("otp").Parse(otpTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse otp template: %w", err)
	}
	return &GomailMailer{cfg: cfg, appName: appName, tmpl: tmpl}, nil
}

// SendOTP entrega el código al email del usuario.
func (m *GomailMailer) SendOTP(toEmail, code string, expiry time.Duration) error {
	var body bytes.Buffer
	err := m.tmpl.Execute(&body, map[string]any{
		"Subject":       "Tu código de acceso",
		"Code":          code,
		"ExpiryMinutes": int(expiry.Minutes()),
		"Year":          time.Now().Year(),
		"AppName":       m.appName,
	})
	if err != nil {
		return fmt.Errorf("render otp template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail))
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Tu código de acceso")
	msg.SetBody("text/html", body.String())

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo OTP: %w", err)
	}
	return nil
}
