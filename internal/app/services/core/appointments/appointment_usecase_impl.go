package appointments

import (
	"context"
	"fmt"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/hospitaldto"
	"medicenter-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentHospitalClient contracts.AppointmentHospitalClient
	MailerService             contracts.MailerService
	Log                       *zap.Logger
}

func NewAppointmentUsecase(
	appointmentHospitalClient contracts.AppointmentHospitalClient,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentHospitalClient: appointmentHospitalClient,
			MailerService:             mailerService,
			Log:                       logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]hospitaldto.Appointment, error) {
	return uc.AppointmentHospitalClient.FindAll(ctx, session.AccessToken, queryParams)
}

// CreateAppointment books the appointment upstream, queues the confirmation
// email, and returns the refreshed list so the caller can re-render without a
// second request.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) ([]hospitaldto.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	appointment, err := uc.AppointmentHospitalClient.CreateAppointment(ctx, session.AccessToken, request)
	if err != nil {
		return nil, err
	}

	uc.enqueueConfirmation(ctx, session, appointment)

	return uc.AppointmentHospitalClient.FindAll(ctx, session.AccessToken, nil)
}

// enqueueConfirmation is best effort; a full mailer queue never fails the
// booking.
func (uc *appointmentUsecase) enqueueConfirmation(ctx context.Context, session *models.Session, appointment *hospitaldto.Appointment) {
	if session.User == nil || session.User.Email == "" {
		return
	}

	payload := &models.EmailPayload{
		To:      session.User.Email,
		Subject: "Your appointment is booked",
		Body: fmt.Sprintf(
			"Your appointment with %s (%s) on %s at %s has been received. Current status: %s.",
			appointment.DoctorName, appointment.Department, appointment.Date, appointment.Time, appointment.Status,
		),
	}

	if err := uc.MailerService.EnqueueEmail(ctx, payload); err != nil {
		uc.Log.Warn("failed to enqueue appointment confirmation email",
			zap.String("to", payload.To),
			zap.Error(err),
		)
	}
}
