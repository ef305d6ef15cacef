package contact

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	contactUsecaseInstance contracts.ContactUsecase
	onceContactUsecase     sync.Once
)

// newsletterDedupeTTL keeps the fast-path marker around long enough to absorb
// double submits without masking the Mongo lookup.
const newsletterDedupeTTL = 24 * time.Hour

type contactUsecase struct {
	ContactRepository contracts.ContactRepository
	RedisRepository   contracts.RedisRepository
	Log               *zap.Logger
}

func NewContactUsecase(
	contactRepository contracts.ContactRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ContactUsecase {
	onceContactUsecase.Do(func() {
		instance := &contactUsecase{
			ContactRepository: contactRepository,
			RedisRepository:   redisRepository,
			Log:               logger,
		}
		contactUsecaseInstance = instance
	})
	return contactUsecaseInstance
}

func (uc *contactUsecase) SubmitContactMessage(ctx context.Context, request *requests.ContactMessage) error {
	utils.SanitizeContactMessageRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return exceptions.ErrMissingRequiredFields()
		}
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	message := &models.ContactMessage{
		Name:      request.Name,
		Email:     request.Email,
		Subject:   request.Subject,
		Message:   request.Message,
		CreatedAt: time.Now(),
	}

	id, err := uc.ContactRepository.CreateContactMessage(ctx, message)
	if err != nil {
		return err
	}

	uc.Log.Info("contact message stored", zap.String("message_id", id))
	return nil
}

// SubscribeNewsletter is idempotent per email: a repeat signup is a no-op, not
// an error.
func (uc *contactUsecase) SubscribeNewsletter(ctx context.Context, request *requests.NewsletterSignup) error {
	utils.SanitizeNewsletterSignupRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return exceptions.ErrMissingRequiredFields()
		}
		return exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	dedupeKey := constvars.NewsletterDedupePrefix + request.Email
	fresh, err := uc.RedisRepository.TrySetNX(ctx, dedupeKey, time.Now().Unix(), newsletterDedupeTTL)
	if err != nil {
		uc.Log.Warn("newsletter dedupe check failed, falling back to mongo", zap.Error(err))
	}
	if err == nil && !fresh {
		return nil
	}

	existing, err := uc.ContactRepository.FindNewsletterSignupByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	signup := &models.NewsletterSignup{
		Email:     request.Email,
		CreatedAt: time.Now(),
	}
	if _, err := uc.ContactRepository.CreateNewsletterSignup(ctx, signup); err != nil {
		return err
	}

	return nil
}
