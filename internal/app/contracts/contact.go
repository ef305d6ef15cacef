package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
)

type ContactUsecase interface {
	SubmitContactMessage(ctx context.Context, request *requests.ContactMessage) error
	SubscribeNewsletter(ctx context.Context, request *requests.NewsletterSignup) error
}

type ContactRepository interface {
	CreateContactMessage(ctx context.Context, message *models.ContactMessage) (string, error)
	CreateNewsletterSignup(ctx context.Context, signup *models.NewsletterSignup) (string, error)
	FindNewsletterSignupByEmail(ctx context.Context, email string) (*models.NewsletterSignup, error)
}
