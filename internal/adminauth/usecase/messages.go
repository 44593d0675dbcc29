package usecase

import (
	"fmt"

	"github.com/greenlegacy/greenlegacy/internal/pkg/mail"
)

func buildOTPMessage(to, code string) mail.Message {
	html := fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto;padding:24px;border:1px solid #e0e0e0;border-radius:8px">
  <h2 style="color:#2e7d32;margin-top:0">Green Legacy Admin Login</h2>
  <p>Use this code to finish signing in to the admin dashboard:</p>
  <p style="font-size:32px;letter-spacing:8px;font-weight:bold;color:#1b5e20;text-align:center;margin:24px 0">%s</p>
  <p style="color:#757575;font-size:13px">The code expires in 5 minutes. If you did not request it, you can ignore this email.</p>
</div>`, code)

	return mail.Message{
		To:       []string{to},
		Subject:  "Admin Login Verification Code",
		TextBody: fmt.Sprintf("Your Green Legacy admin login code is %s. It expires in 5 minutes.", code),
		HTMLBody: html,
	}
}
