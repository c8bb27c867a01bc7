package mailer

import (
	"kampusku_backend/internals/configs"
)

// Message adalah satu email keluar (plain text saja, cukup untuk notifikasi).
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Text    string
}

// Mailer dipanggil fire-and-forget: kegagalan kirim tidak pernah
// menggagalkan operasi data yang memicunya.
type Mailer interface {
	Send(msg Message)
}

// NewFromEnv: sendgrid kalau API key diset, kalau tidak cetak ke console (dev).
func NewFromEnv() Mailer {
	if configs.SendgridAPIKey != "" {
		return newSendgridMailer(configs.SendgridAPIKey, configs.FromEmail)
	}
	return newConsoleMailer(configs.FromEmail)
}
