package labs

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
	labUsecaseInstance contracts.LabUsecase
	onceLabUsecase     sync.Once
)

type labUsecase struct {
	LabHospitalClient contracts.LabHospitalClient
	Log               *zap.Logger
}

func NewLabUsecase(labHospitalClient contracts.LabHospitalClient, logger *zap.Logger) contracts.LabUsecase {
	onceLabUsecase.Do(func() {
		instance := &labUsecase{
			LabHospitalClient: labHospitalClient,
			Log:               logger,
		}
		labUsecaseInstance = instance
	})
	return labUsecaseInstance
}

func (uc *labUsecase) FindTestRequests(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]hospitaldto.TestRequest, error) {
	return uc.LabHospitalClient.FindTestRequests(ctx, session.AccessToken, queryParams)
}

func (uc *labUsecase) CreateTestRequest(ctx context.Context, session *models.Session, request *requests.CreateTestRequest) ([]hospitaldto.TestRequest, error) {
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	if _, err := uc.LabHospitalClient.CreateTestRequest(ctx, session.AccessToken, request); err != nil {
		return nil, err
	}

	return uc.LabHospitalClient.FindTestRequests(ctx, session.AccessToken, nil)
}

func (uc *labUsecase) CreateLabResult(ctx context.Context, session *models.Session, request *requests.CreateLabResult) ([]hospitaldto.TestRequest, error) {
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	if _, err := uc.LabHospitalClient.CreateLabResult(ctx, session.AccessToken, request); err != nil {
		return nil, err
	}

	return uc.LabHospitalClient.FindTestRequests(ctx, session.AccessToken, nil)
}
