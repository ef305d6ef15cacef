package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/hospitaldto"
)

type LabUsecase interface {
	FindTestRequests(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]hospitaldto.TestRequest, error)
	CreateTestRequest(ctx context.Context, session *models.Session, request *requests.CreateTestRequest) ([]hospitaldto.TestRequest, error)
	CreateLabResult(ctx context.Context, session *models.Session, request *requests.CreateLabResult) ([]hospitaldto.TestRequest, error)
}

type LabHospitalClient interface {
	FindTestRequests(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.TestRequest, error)
	CreateTestRequest(ctx context.Context, accessToken string, request *requests.CreateTestRequest) (*hospitaldto.TestRequest, error)
	CreateLabResult(ctx context.Context, accessToken string, request *requests.CreateLabResult) (*hospitaldto.LabResult, error)
}
