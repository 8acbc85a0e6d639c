package auth

import "time"

// Mailer es el colaborador externo que entrega el código OTP fuera de banda.
// La capa de aplicación no conoce SMTP; ver infrastructure/mailer.
type Mailer interface {
	SendOTP(toEmail, code string, expiry time.Duration) error
}
