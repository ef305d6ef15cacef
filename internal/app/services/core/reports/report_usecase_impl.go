package reports

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
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

type reportUsecase struct {
	ReportHospitalClient contracts.ReportHospitalClient
	Log                  *zap.Logger
}

func NewReportUsecase(reportHospitalClient contracts.ReportHospitalClient, logger *zap.Logger) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		instance := &reportUsecase{
			ReportHospitalClient: reportHospitalClient,
			Log:                  logger,
		}
		reportUsecaseInstance = instance
	})
	return reportUsecaseInstance
}

func (uc *reportUsecase) CreateMedicalReport(ctx context.Context, session *models.Session, request *requests.CreateMedicalReport) (*hospitaldto.MedicalReport, error) {
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	return uc.ReportHospitalClient.CreateMedicalReport(ctx, session.AccessToken, request)
}
