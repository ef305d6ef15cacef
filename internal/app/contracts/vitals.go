package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/hospitaldto"
)

type VitalsUsecase interface {
	FindVitalRequests(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]hospitaldto.VitalRequest, error)
	CreateVitalRequest(ctx context.Context, session *models.Session, request *requests.CreateVitalRequest) ([]hospitaldto.VitalRequest, error)
	CreateVitals(ctx context.Context, session *models.Session, request *requests.CreateVitals) ([]hospitaldto.VitalRequest, error)
}

type VitalsHospitalClient interface {
	FindVitalRequests(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.VitalRequest, error)
	CreateVitalRequest(ctx context.Context, accessToken string, request *requests.CreateVitalRequest) (*hospitaldto.VitalRequest, error)
	CreateVitals(ctx context.Context, accessToken string, request *requests.CreateVitals) (*hospitaldto.Vitals, error)
}
