package mailer

import "log"

// consoleMailer mencetak email ke log, dipakai saat SENDGRID_API_KEY kosong.
type consoleMailer struct {
	from string
}

func newConsoleMailer(from string) *consoleMailer {
	return &consoleMailer{from: from}
}

func (m *consoleMailer) Send(msg Message) {
	log.Printf("📧 [MAIL] from=%s to=%s (%s) subject=%q\n%s", m.from, msg.ToEmail, msg.ToName, msg.Subject, msg.Text)
}
