package vitals

import (
	"context"
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
	vitalsUsecaseInstance contracts.VitalsUsecase
	onceVitalsUsecase     sync.Once
)

type vitalsUsecase struct {
	VitalsHospitalClient contracts.VitalsHospitalClient
	Log                  *zap.Logger
}

func NewVitalsUsecase(vitalsHospitalClient contracts.VitalsHospitalClient, logger *zap.Logger) contracts.VitalsUsecase {
	onceVitalsUsecase.Do(func() {
		instance := &vitalsUsecase{
			VitalsHospitalClient: vitalsHospitalClient,
			Log:                  logger,
		}
		vitalsUsecaseInstance = instance
	})
	return vitalsUsecaseInstance
}

func (uc *vitalsUsecase) FindVitalRequests(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]hospitaldto.VitalRequest, error) {
	return uc.VitalsHospitalClient.FindVitalRequests(ctx, session.AccessToken, queryParams)
}

func (uc *vitalsUsecase) CreateVitalRequest(ctx context.Context, session *models.Session, request *requests.CreateVitalRequest) ([]hospitaldto.VitalRequest, error) {
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	if _, err := uc.VitalsHospitalClient.CreateVitalRequest(ctx, session.AccessToken, request); err != nil {
		return nil, err
	}

	return uc.VitalsHospitalClient.FindVitalRequests(ctx, session.AccessToken, nil)
}

func (uc *vitalsUsecase) CreateVitals(ctx context.Context, session *models.Session, request *requests.CreateVitals) ([]hospitaldto.VitalRequest, error) {
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	if _, err := uc.VitalsHospitalClient.CreateVitals(ctx, session.AccessToken, request); err != nil {
		return nil, err
	}

	return uc.VitalsHospitalClient.FindVitalRequests(ctx, session.AccessToken, nil)
}
