package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/hospitaldto"
)

type StaffUsecase interface {
	FindAll(ctx context.Context, session *models.Session) ([]hospitaldto.StaffMember, error)
}

type StaffHospitalClient interface {
	FindAll(ctx context.Context, accessToken string) ([]hospitaldto.StaffMember, error)
}

type ReportUsecase interface {
	CreateMedicalReport(ctx context.Context, session *models.Session, request *requests.CreateMedicalReport) (*hospitaldto.MedicalReport, error)
}

type ReportHospitalClient interface {
	CreateMedicalReport(ctx context.Context, accessToken string, request *requests.CreateMedicalReport) (*hospitaldto.MedicalReport, error)
}
