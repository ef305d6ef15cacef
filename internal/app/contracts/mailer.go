package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
)

type MailerService interface {
	// EnqueueEmail publishes the payload to the mailer queue; the consumer
	// worker performs the SMTP send.
	EnqueueEmail(ctx context.Context, payload *models.EmailPayload) error
}
