package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"pondpatrol-web/config"
	"pondpatrol-web/internal/domain"
)

// EmailService forwards accepted inquiries to the sales inbox via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	timeout   time.Duration
	// sendMail is deliver; replaced in tests
	sendMail func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// DefaultSendTimeout bounds one SMTP conversation, dial through QUIT
const DefaultSendTimeout = 10 * time.Second

// inquiryEmailData holds the data for inquiry emails
type inquiryEmailData struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	FarmSize string
	Message  string
	Source   string
	Received string
}

func NewEmailService(cfg *config.Config) *EmailService {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		toEmail:   cfg.ContactEmailTo,
		timeout:   DefaultSendTimeout,
		sendMail:  deliver,
	}
}

var inquiryEmailTemplate = template.Must(template.New("inquiry").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Consultation Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0A2342; color: #F2B705; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #F2B705; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Consultation Request</h1>
        </div>
        <div class="content">
            <div class="field"><div class="label">Name:</div><div>{{.Name}}</div></div>
            <div class="field"><div class="label">Email:</div><div>{{.Email}}</div></div>
            <div class="field"><div class="label">Phone:</div><div>{{.Phone}}</div></div>
            <div class="field"><div class="label">Pond/Farm Size:</div><div>{{.FarmSize}}</div></div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Inquiry {{.ID}} via {{.Source}}, received {{.Received}}.</p>
            <p>Reply within 24 hours to confirm the consultation slot.</p>
        </div>
    </div>
</body>
</html>`))

// NotifyInquiry emails one accepted inquiry to the configured recipient
func (s *EmailService) NotifyInquiry(ctx context.Context, inq *domain.Inquiry) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	err := inquiryEmailTemplate.Execute(&body, inquiryEmailData{
		ID:       inq.ID,
		Name:     inq.Name,
		Email:    inq.Email,
		Phone:    inq.Phone,
		FarmSize: inq.FarmSize.Label(),
		Message:  inq.Message,
		Source:   inq.Source,
		Received: inq.CreatedAt.Format("02 Jan 2006 15:04 MST"),
	})
	if err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Consultation request: %s (%s)", headerSafe(inq.Name), inq.FarmSize.Label())

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		headerSafe(inq.Email),
		subject,
		body.String(),
	))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := net.JoinHostPort(s.host, s.port)
	if err := s.sendMail(ctx, addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// deliver is smtp.SendMail over a connection that dies with ctx
func deliver(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		return contextErr(ctx, err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return contextErr(ctx, err)
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(a); err != nil {
				return contextErr(ctx, err)
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return contextErr(ctx, err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return contextErr(ctx, err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return contextErr(ctx, err)
	}
	if _, err := w.Write(msg); err != nil {
		return contextErr(ctx, err)
	}
	if err := w.Close(); err != nil {
		return contextErr(ctx, err)
	}
	return c.Quit()
}

// contextErr prefers the context's error over the i/o timeout it caused
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// headerSafe strips CR/LF so visitor input cannot inject mail headers
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
