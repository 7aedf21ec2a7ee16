package notifications

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"time"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MailServiceImpl implements domain.MailService over SMTP. Dispatch is
// best effort: callers run it in the background and only log failures.
type MailServiceImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	timeout  time.Duration
	tokenSvc domain.TokenService
}

// NewMailService creates a new SMTP mail service
func NewMailService(host string, port int, username, password, from, fromName string, timeout time.Duration, tokenSvc domain.TokenService) domain.MailService {
	return &MailServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		timeout:  timeout,
		tokenSvc: tokenSvc,
	}
}

// SendConfirmation implements domain.MailService
func (m *MailServiceImpl) SendConfirmation(email, username, baseURL string) error {
	token, err := m.tokenSvc.GenerateActionToken(email)
	if err != nil {
		return fmt.Errorf("failed to create confirmation token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", baseURL, token)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nPlease confirm your email address by opening the link below:\r\n\r\n%s\r\n\r\nThe link is valid for 7 days.\r\n",
		username, link,
	)
	return m.send(email, "Confirm your email", body)
}

// SendPasswordReset implements domain.MailService
func (m *MailServiceImpl) SendPasswordReset(email, baseURL string) error {
	token, err := m.tokenSvc.GenerateActionToken(email)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/reset-password/confirm?token=%s", baseURL, token)
	body := fmt.Sprintf(
		"A password reset was requested for this address.\r\n\r\nOpen the link below to choose a new password:\r\n\r\n%s\r\n\r\nThe link is valid for 7 days. If you did not request a reset, ignore this message.\r\n",
		link,
	)
	return m.send(email, "Reset your password", body)
}

func (m *MailServiceImpl) send(recipient, subject, body string) error {
	msg := m.buildMessage(recipient, subject, body)
	address := fmt.Sprintf("%s:%d", m.host, m.port)

	// Port 465 = implicit TLS, otherwise STARTTLS
	if m.port == 465 {
		return m.sendImplicitTLS(address, recipient, msg)
	}
	return m.sendSTARTTLS(address, recipient, msg)
}

func (m *MailServiceImpl) sendImplicitTLS(address, recipient string, msg []byte) error {
	tlsConfig := &tls.Config{ServerName: m.host}
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: m.timeout}, "tcp", address, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	return m.sendViaClient(client, recipient, msg)
}

func (m *MailServiceImpl) sendSTARTTLS(address, recipient string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", address, m.timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{ServerName: m.host}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	return m.sendViaClient(client, recipient, msg)
}

func (m *MailServiceImpl) sendViaClient(client *smtp.Client, recipient string, msg []byte) error {
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

func (m *MailServiceImpl) buildMessage(recipient, subject, body string) []byte {
	encodedSubject := mime.QEncoding.Encode("utf-8", subject)
	encodedSenderName := mime.QEncoding.Encode("utf-8", m.fromName)
	date := time.Now().Format(time.RFC1123Z)

	return fmt.Appendf(nil,
		"Date: %s\r\n"+
			"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"utf-8\"\r\n"+
			"\r\n"+
			"%s",
		date, recipient, encodedSenderName, m.from, encodedSubject, body,
	)
}
