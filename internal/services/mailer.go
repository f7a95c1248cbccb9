package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"smartscholar/internal/models"
)

// Mailer sends a single plain-text email. Sends are best-effort: callers
// log failures and never fail the operation that triggered them.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	Host     string
	Port     string
	From     string
	Password string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, msg)
}

// SendVerificationResult tells a college how its verification request was
// decided.
func SendVerificationResult(m Mailer, college *models.User, status string) error {
	subject, body := verificationEmail(college.Name, status)
	return m.Send(college.Email, subject, body)
}

// ---- email content builders ----

func approvalEmail(studentName, eventTitle string) (subject, body string) {
	return fmt.Sprintf("Your application for %s is approved", eventTitle),
		fmt.Sprintf("Hello %s,\n\nYour application for %s has been approved. Please check the event page for details.\n", studentName, eventTitle)
}

func rejectionEmail(studentName, eventTitle, reason string) (subject, body string) {
	return fmt.Sprintf("Update on your application for %s", eventTitle),
		fmt.Sprintf("Hello %s,\n\nYour application for %s was not accepted.\nReason: %s\n", studentName, eventTitle, reason)
}

func verificationEmail(collegeName, status string) (subject, body string) {
	if status == models.VerificationApproved {
		return "Your college is verified",
			fmt.Sprintf("Hello %s,\n\nYour college account has been verified. You can now publish events and accept applications.\n", collegeName)
	}
	return "Your college verification was rejected",
		fmt.Sprintf("Hello %s,\n\nYour college verification request was rejected. Please contact support for details.\n", collegeName)
}

// reminderEmail builds one consolidated message listing every scholarship
// opening soon.
func reminderEmail(entries []models.ScholarshipEntry) (subject, body string) {
	subject = "Scholarships opening soon"
	if len(entries) == 1 {
		subject = fmt.Sprintf("%s opens soon", entries[0].ScholarshipName)
	}

	var b strings.Builder
	b.WriteString("Hello,\n\nThe following scholarships are opening soon:\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("- %s (%s), opens %s\n",
			e.ScholarshipName, e.University, e.OpeningDate.Format("02 Jan 2006")))
	}
	b.WriteString("\nGood luck!\n")
	return subject, b.String()
}
