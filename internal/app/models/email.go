package models

// EmailPayload is the message shape queued to RabbitMQ for the mailer worker.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
