package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/rumahpeduli/cms-api/config"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		from:     cfg.SMTP.From,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

const otpMailTemplate = `Halo {{ .FirstName | title }},

Kode masuk Anda: {{ .Code }}

Kode berlaku selama {{ .TTLMinutes }} menit dan hanya dapat dipakai satu kali.
Abaikan email ini jika Anda tidak meminta kode.

Salam,
Tim {{ .AppName }}`

// OTPMailData feeds the passcode email template.
type OTPMailData struct {
	FirstName  string
	Code       string
	TTLMinutes int
	AppName    string
}

// RenderOTPMail renders the passcode email body.
func RenderOTPMail(data OTPMailData) (string, error) {
	tmpl, err := template.New("otp").Funcs(sprig.FuncMap()).Parse(otpMailTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
