package services

import (
	"errors"
	"fmt"
	"strconv"

	"cyber-shop/config"
	"cyber-shop/models"

	"gopkg.in/gomail.v2"
)

type MailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService returns an error when SMTP is not configured; callers treat
// mail as optional and keep going without it.
func NewMailService() (*MailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, errors.New("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &MailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *MailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed - CyberShop", order.OrderNo))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thanks for your order!</h2>
    <p>Order number: <strong>%s</strong></p>
    <p>Items: %d</p>
    <p>Total: %s</p>
    <p>Status: %s</p>
    <p>We'll let you know when it ships.</p>
</body>
</html>`, order.OrderNo, len(order.Items), order.TotalPrice.StringFixed(2), order.Status)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
