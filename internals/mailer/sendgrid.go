package mailer

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func newSendgridMailer(apiKey, fromEmail string) *sendgridMailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail("Kampusku", fromEmail),
	}
}

func (m *sendgridMailer) Send(msg Message) {
	go func() {
		to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
		mail := sgmail.NewSingleEmail(m.from, msg.Subject, to, msg.Text, "")
		resp, err := m.client.Send(mail)
		if err != nil {
			log.Printf("[ERROR] sendgrid: %v", err)
			return
		}
		if resp.StatusCode >= 400 {
			log.Printf("[ERROR] sendgrid status=%d body=%s", resp.StatusCode, resp.Body)
		}
	}()
}
