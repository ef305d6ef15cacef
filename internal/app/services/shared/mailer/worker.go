package mailer

import (
	"medicenter-service/internal/app/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// StartWorker consumes the mailer queue and sends each payload over SMTP.
// Returns a stop function suitable for Bootstrap.WorkerStop. Delivery
// failures are nacked without requeue so a poisoned message cannot spin the
// consumer.
func StartWorker(service *Service, log *zap.Logger) (func(), error) {
	deliveries, err := service.channel.Consume(
		service.queue,
		"",    // consumer
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}

				var payload models.EmailPayload
				if err := json.Unmarshal(delivery.Body, &payload); err != nil {
					log.Error("mailer worker cannot decode payload", zap.Error(err))
					delivery.Nack(false, false)
					continue
				}

				if err := service.sendEmail(&payload); err != nil {
					log.Error("mailer worker failed to send email",
						zap.String("to", payload.To),
						zap.Error(err),
					)
					delivery.Nack(false, false)
					continue
				}

				delivery.Ack(false)
				log.Info("mailer worker sent email", zap.String("to", payload.To))
			}
		}
	}()

	return func() { close(done) }, nil
}
