package utils

import (
	"fluently/config"
	"fluently/services"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Fluently <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D4ED8; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #9CA3AF; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Fluently &middot; English video lessons</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendImportSummaryEmail mails the outcome of a catalog import run
func SendImportSummaryEmail(to string, summary *services.ImportSummary) error {
	body := fmt.Sprintf(`
		<p>The Vimeo catalog sync (run <code>%s</code>) has finished.</p>
		<ul>
			<li><strong>%d</strong> videos imported</li>
			<li><strong>%d</strong> videos updated</li>
			<li><strong>%d</strong> videos skipped</li>
		</ul>`,
		summary.RunID, summary.Imported, summary.Updated, summary.Skipped)

	html := getEmailTemplate("Catalog Sync Complete", body)
	return SendEmail([]string{to}, "Fluently catalog sync summary", html)
}
