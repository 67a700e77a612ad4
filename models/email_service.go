package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, user, pass, from string) (*EmailService, error) {
	if host == "" || user == "" || pass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	return &EmailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail, name string, itemCount int, total decimal.Decimal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Order Confirmation - Sole Harbour Footwear")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #0f766e; }
        .order-box { background-color: #f0fdfa; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Sole Harbour Footwear</div>
        </div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Hi %s, thank you for your order!</p>

        <div class="order-box">
            <p><strong>Items:</strong> %d</p>
            <p><strong>Order Total:</strong> LKR %s</p>
        </div>

        <p>Your order has been received and is being processed. You can follow its status from the Orders page of your account.</p>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">Thank you for choosing us!<br>Sole Harbour Footwear Team</p>
        </div>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, name, itemCount, total.StringFixed(2))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
