package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderNotification tells the service desk a new order came in.
func (s *EmailService) SendOrderNotification(toEmail string, order Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Order - Booth #%s - %s", order.BoothNumber, order.Item))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #2c3e50;">
    <h2>New Exhibitor Order</h2>
    <table cellpadding="6" style="border-collapse: collapse;">
        <tr><td><strong>Booth #</strong></td><td>%s</td></tr>
        <tr><td><strong>Exhibitor</strong></td><td>%s</td></tr>
        <tr><td><strong>Section</strong></td><td>%s</td></tr>
        <tr><td><strong>Item</strong></td><td>%s</td></tr>
        <tr><td><strong>Color</strong></td><td>%s</td></tr>
        <tr><td><strong>Quantity</strong></td><td>%d</td></tr>
        <tr><td><strong>Comments</strong></td><td>%s</td></tr>
        <tr><td><strong>Placed</strong></td><td>%s %s</td></tr>
    </table>
    <p style="color: #666; font-size: 12px;">This is an automated email from the Exhibitor Portal.</p>
</body>
</html>
	`, order.BoothNumber, order.ExhibitorName, order.Section, order.Item,
		order.Color, order.Quantity, order.Comments, order.Date, order.Hour)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
