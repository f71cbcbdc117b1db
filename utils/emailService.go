package utils

import (
	"campusconnect/config"
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
	msg += fmt.Sprintf("From: CampusConnect <%s>\r\n", from)
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

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3949AB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CampusConnect</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from CampusConnect. Please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your CampusConnect account is ready. Browse the course catalog,
		enroll, and start learning.</p>`, name)
	return SendEmail([]string{to}, "Welcome to CampusConnect", getEmailTemplate("Welcome aboard!", body))
}

// SendGradeEmail notifies a student that a submission was graded
func SendGradeEmail(to, name, courseTitle, assignmentTitle string, grade int) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your submission has been graded.</p>
		<div class="info-box">
			<p><strong>Course:</strong> %s</p>
			<p><strong>Assignment:</strong> %s</p>
			<p><strong>Grade:</strong> %d / 100</p>
		</div>`, name, courseTitle, assignmentTitle, grade)
	return SendEmail([]string{to}, "Your assignment has been graded", getEmailTemplate("Grade posted", body))
}

// SendCourseStatusEmail notifies a teacher about a moderation decision
func SendCourseStatusEmail(to, name, courseTitle, status string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>An administrator has reviewed your course.</p>
		<div class="info-box">
			<p><strong>Course:</strong> %s</p>
			<p><strong>Status:</strong> %s</p>
		</div>`, name, courseTitle, status)
	return SendEmail([]string{to}, fmt.Sprintf("Course %s: %s", status, courseTitle), getEmailTemplate("Course review result", body))
}
