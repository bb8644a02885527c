package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/threesixtycreation/mockup-funnel/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from, adminEmail, appURL string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		AdminEmail: adminEmail,
		AppURL:     appURL,
	}
}

// SendAdminAlert tells staff a new mockup request arrived.
func (s *EmailSender) SendAdminAlert(lead *entity.Lead) error {
	body, err := renderTemplate("admin_alert.html", adminAlertData{
		FirstName:    lead.FirstName,
		BusinessName: lead.BusinessName,
		Location:     lead.Location,
		Email:        lead.Email,
		Phone:        orDefault(lead.Phone, "Not provided"),
		Extras:       orDefault(lead.Extras, "None"),
		Trade:        lead.Trade,
		DashboardURL: s.AppURL + "/dashboard",
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New mockup request: %s", lead.BusinessName)
	return s.send(s.AdminEmail, subject, "text/html", body)
}

// SendCustomerConfirmation acknowledges the submission to the customer.
func (s *EmailSender) SendCustomerConfirmation(lead *entity.Lead) error {
	body, err := renderTemplate("confirmation.html", confirmationData{
		FirstName:    lead.FirstName,
		BusinessName: lead.BusinessName,
		Location:     lead.Location,
		Extras:       lead.Extras,
	})
	if err != nil {
		return err
	}

	return s.send(lead.Email, "We've received your mockup request!", "text/html", body)
}

// SendMockupReady links the customer to their viewing page.
func (s *EmailSender) SendMockupReady(lead *entity.Lead) error {
	body, err := renderTemplate("mockup_ready.html", mockupReadyData{
		FirstName:    lead.FirstName,
		BusinessName: lead.BusinessName,
		MockupURL:    fmt.Sprintf("%s/mockup/%s", s.AppURL, lead.ID),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s website mockup is ready!", lead.BusinessName)
	return s.send(lead.Email, subject, "text/html", body)
}

// SendInterestResponse summarises the customer's yes/no answer for staff.
func (s *EmailSender) SendInterestResponse(lead *entity.Lead, interested bool) error {
	var subject, body string
	if interested {
		subject = fmt.Sprintf("%s wants to go ahead!", lead.BusinessName)
		body = fmt.Sprintf(`Great news! %s from %s is interested in making their website a reality.

Contact details:
- Name: %s
- Business: %s
- Email: %s
- Phone: %s
- Location: %s

Time to give them a call!`,
			lead.FirstName, lead.BusinessName,
			lead.FirstName, lead.BusinessName, lead.Email,
			orDefault(lead.Phone, "Not provided"), lead.Location)
	} else {
		subject = fmt.Sprintf("%s passed on the preview", lead.BusinessName)
		body = fmt.Sprintf(`%s from %s viewed their preview but clicked "No".

Contact details:
- Name: %s
- Business: %s
- Email: %s
- Location: %s

Maybe follow up to see if there's feedback?`,
			lead.FirstName, lead.BusinessName,
			lead.FirstName, lead.BusinessName, lead.Email, lead.Location)
	}

	return s.send(s.AdminEmail, subject, "text/plain", body)
}

func (s *EmailSender) send(to, subject, contentType, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody(contentType, body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func renderTemplate(name string, data any) (string, error) {
	tmplPath := filepath.Join("templates", name)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return body.String(), nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
