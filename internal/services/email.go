package services

import (
	"crypto/tls"
	"fmt"
	"html"

	"github.com/banit/househunt-backend/internal/config"
	"github.com/banit/househunt-backend/internal/models"
	"gopkg.in/gomail.v2"
)

// Mailer sends one HTML email.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.TLSConfig = &tls.Config{ServerName: s.config.SMTPHost}

	return d.DialAndSend(m)
}

func enquirySubject(e models.Enquiry) string {
	return "New enquiry: " + e.Title
}

func enquiryBody(manager models.Manager, tenant models.User, e models.Enquiry) string {
	return fmt.Sprintf(`
		<h2>New enquiry</h2>
		<p>Hello %s,</p>
		<p><strong>%s</strong> (%s, %s) sent an enquiry about house #%d:</p>
		<blockquote>%s</blockquote>
		<p>Reply to the tenant directly at the email above.</p>
	`,
		html.EscapeString(manager.Name),
		html.EscapeString(tenant.Name),
		html.EscapeString(tenant.Email),
		html.EscapeString(tenant.Phone),
		e.HouseID,
		html.EscapeString(e.Message),
	)
}

func complaintBody(manager models.Manager, tenant models.User, c models.Complaint) string {
	return fmt.Sprintf(`
		<h2>Tenant complaint</h2>
		<p>Hello %s,</p>
		<p><strong>%s</strong> (%s) filed a complaint:</p>
		<blockquote>%s</blockquote>
	`,
		html.EscapeString(manager.Name),
		html.EscapeString(tenant.Name),
		html.EscapeString(tenant.Email),
		html.EscapeString(c.Message),
	)
}
