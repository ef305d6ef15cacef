package mailer

import (
	"context"
	"fmt"
	"medicenter-service/internal/app/drivers/mailer"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// Service publishes email jobs to RabbitMQ and performs the SMTP delivery
// from the consumer worker. It satisfies contracts.MailerService.
type Service struct {
	channel *amqp091.Channel
	client  *mailer.SMTPClient
	queue   string
}

func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (*Service, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		channel: channel,
		client:  client,
		queue:   queue,
	}, nil
}

func (s *Service) EnqueueEmail(ctx context.Context, payload *models.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	return nil
}

func (s *Service) sendEmail(payload *models.EmailPayload) error {
	from := s.client.EmailSender
	msg := []byte(fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		payload.To, from, payload.Subject, payload.Body,
	))
	addr := fmt.Sprintf("%s:%d", s.client.Host, s.client.Port)
	err := smtp.SendMail(addr, s.client.Auth, from, []string{payload.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.client.Host)
	}
	return nil
}
