package service

import (
	"fmt"
	"strings"

	"gigbook/config"
	"gigbook/models"

	"gopkg.in/gomail.v2"
)

// EmailService sends reminder mail over SMTP
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOverdueReminder mails the user a summary of invoices that have been
// waiting more than 30 days for payment.
func (s *EmailService) SendOverdueReminder(toEmail, username string, entries []models.Entry) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("email service is not enabled, set email.enabled=true")
	}
	if len(entries) == 0 {
		return fmt.Errorf("no overdue invoices to report")
	}

	subject := fmt.Sprintf("GigBook: %d overdue invoice(s)", len(entries))
	body := s.generateOverdueBody(username, entries)

	return s.sendEmail(toEmail, subject, body)
}

// generateOverdueBody renders the overdue invoice table
func (s *EmailService) generateOverdueBody(username string, entries []models.Entry) string {
	var rows strings.Builder
	for _, e := range entries {
		sent := ""
		if e.InvoiceSentDate != nil {
			sent = e.InvoiceSentDate.Format("2006-01-02")
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%s</td><td style="text-align:right">%.2f</td><td>%s</td></tr>`,
			e.WorkDate.Format("2006-01-02"), e.ClientName, e.AmountGross, sent))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; }
        th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; font-size: 14px; color: #333; }
        th { background: #f8f9fa; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>GigBook</h1>
        </div>
        <div class="content">
            <p>Hi <strong>%s</strong>,</p>
            <p>The following invoices were sent more than 30 days ago and are still unpaid:</p>
            <table>
                <tr><th>Work date</th><th>Client</th><th>Amount</th><th>Invoice sent</th></tr>
                %s
            </table>
        </div>
        <div class="footer">
            <p>This reminder was sent automatically by GigBook</p>
        </div>
    </div>
</body>
</html>
`, username, rows.String())
}

// sendEmail delivers one message
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
